package api

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// Provider implements lookups against public JSON APIs
type Provider struct {
	// Module instances
	weather *WeatherOps
	news    *NewsOps
	crypto  *CryptoOps
	ip      *IPOps
}

// NewProvider creates an API provider around a shared fetch client
func NewProvider(client *fetch.Client, endpoints Endpoints) *Provider {
	ops := NewAPIOps(client, endpoints)

	return &Provider{
		weather: &WeatherOps{APIOps: ops},
		news:    &NewsOps{APIOps: ops},
		crypto:  &CryptoOps{APIOps: ops},
		ip:      &IPOps{APIOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (a *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, a.weather.GetTools()...)
	tools = append(tools, a.news.GetTools()...)
	tools = append(tools, a.crypto.GetTools()...)
	tools = append(tools, a.ip.GetTools()...)

	return types.Service{
		ID:          "api",
		Name:        "API Integration Service",
		Description: "Weather, tech news, cryptocurrency prices and IP geolocation from public APIs",
		Category:    types.CategoryAPI,
		Capabilities: []string{
			"weather",
			"news",
			"crypto_prices",
			"ip_geolocation",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (a *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "api.get_weather":
		return a.weather.GetWeather(ctx, params, appCtx)
	case "api.get_news":
		return a.news.GetNews(ctx, params, appCtx)
	case "api.get_crypto_prices":
		return a.crypto.GetCryptoPrices(ctx, params, appCtx)
	case "api.get_ip_info":
		return a.ip.GetIPInfo(ctx, params, appCtx)

	default:
		return UnknownToolFailure(toolID)
	}
}
