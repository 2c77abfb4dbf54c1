package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// DefaultCoins are the coin IDs priced when none are requested.
var DefaultCoins = []string{"bitcoin", "ethereum", "litecoin", "ripple", "cardano"}

var coinNames = map[string]string{
	"bitcoin":  "Bitcoin (BTC)",
	"ethereum": "Ethereum (ETH)",
	"litecoin": "Litecoin (LTC)",
	"ripple":   "XRP (XRP)",
	"cardano":  "Cardano (ADA)",
}

// CryptoOps handles cryptocurrency quotes
type CryptoOps struct {
	*APIOps
}

// Quote is one coin's USD price
type Quote struct {
	Coin      string  `json:"coin"`
	Name      string  `json:"name"`
	PriceUSD  float64 `json:"price_usd"`
	Change24h float64 `json:"change_24h"`
}

// GetTools returns crypto tool definitions
func (c *CryptoOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "api.get_crypto_prices",
			Name:        "Get Crypto Prices",
			Description: "Get current cryptocurrency prices in USD",
			Parameters: []types.Parameter{
				{Name: "coins", Type: "string", Description: "Comma-separated coin IDs (default: " + strings.Join(DefaultCoins, ",") + ")", Required: false, Default: strings.Join(DefaultCoins, ",")},
			},
			Returns: "string",
		},
	}
}

// GetCryptoPrices reports USD prices with the 24 hour change, in the order
// the price service returns them
func (c *CryptoOps) GetCryptoPrices(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "getting crypto prices"

	coins := parseCoins(params.StringOr(p, "coins", ""))

	data, err := c.GetJSON(ctx, c.Endpoints.Crypto, map[string]string{
		"ids":                 strings.Join(coins, ","),
		"vs_currencies":       "usd",
		"include_24hr_change": "true",
	})
	if err != nil {
		return Failure(action, err)
	}

	rep := report.New("Cryptocurrency Prices (USD)")
	quotes := []Quote{}
	data.ForEach(func(key, value gjson.Result) bool {
		price := value.Get("usd")
		if !price.Exists() {
			return true
		}
		q := Quote{
			Coin:      key.String(),
			Name:      coinName(key.String()),
			PriceUSD:  price.Float(),
			Change24h: value.Get("usd_24h_change").Float(),
		}
		quotes = append(quotes, q)
		rep.Add(formatQuote(q))
		return true
	})
	if len(quotes) == 0 {
		rep.Add("No prices found.")
	}

	return Success(rep.String(), map[string]interface{}{
		"quotes": quotes,
		"count":  len(quotes),
	})
}

// parseCoins splits a comma-separated list into lowercase IDs, falling back
// to DefaultCoins when nothing is left.
func parseCoins(raw string) []string {
	var coins []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.ToLower(strings.TrimSpace(part)); id != "" {
			coins = append(coins, id)
		}
	}
	if len(coins) == 0 {
		return DefaultCoins
	}
	return coins
}

func coinName(id string) string {
	if name, ok := coinNames[id]; ok {
		return name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// formatQuote renders "Bitcoin (BTC): $67,123.45 (+1.25%)".
func formatQuote(q Quote) string {
	sign := ""
	if q.Change24h >= 0 {
		sign = "+"
	}
	price := message.NewPrinter(language.English).Sprintf("%.2f", q.PriceUSD)
	return fmt.Sprintf("%s: $%s (%s%.2f%%)", q.Name, price, sign, q.Change24h)
}
