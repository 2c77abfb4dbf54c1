package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// IPOps handles IP address geolocation
type IPOps struct {
	*APIOps
}

// GetTools returns IP lookup tool definitions
func (i *IPOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "api.get_ip_info",
			Name:        "Get IP Info",
			Description: "Get location and network information about an IP address",
			Parameters: []types.Parameter{
				{Name: "ip_address", Type: "string", Description: "IP address or host (default: the caller's public address)", Required: false},
			},
			Returns: "string",
		},
	}
}

// GetIPInfo reports geolocation and ownership of an address
func (i *IPOps) GetIPInfo(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "getting IP info"

	target := i.Endpoints.IPInfo
	if ip := strings.TrimSpace(params.StringOr(p, "ip_address", "")); ip != "" {
		target = joinURL(target, url.PathEscape(ip))
	}

	data, err := i.GetJSON(ctx, target, nil)
	if err != nil {
		return Failure(action, err)
	}
	if data.Get("status").String() != "success" {
		return Failure(action, &toolerr.ResponseError{
			Source: "IP lookup",
			Msg:    orDefault(data.Get("message").String(), "Unknown error"),
		})
	}

	query := field(data, "query")
	rep := report.New("IP Information for "+query).
		Linef("Country: %s", field(data, "country")).
		Linef("Region: %s", field(data, "regionName")).
		Linef("City: %s", field(data, "city")).
		Linef("ZIP: %s", field(data, "zip")).
		Linef("ISP: %s", field(data, "isp")).
		Linef("Organization: %s", field(data, "org")).
		Linef("Timezone: %s", field(data, "timezone")).
		Linef("Coordinates: %s, %s", field(data, "lat"), field(data, "lon"))

	return Success(rep.String(), map[string]interface{}{
		"ip":      query,
		"country": field(data, "country"),
		"city":    field(data, "city"),
	})
}
