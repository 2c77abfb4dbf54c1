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

// WeatherOps handles current weather lookups
type WeatherOps struct {
	*APIOps
}

// GetTools returns weather tool definitions
func (w *WeatherOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "api.get_weather",
			Name:        "Get Weather",
			Description: "Get current weather information for a location",
			Parameters: []types.Parameter{
				{Name: "location", Type: "string", Description: "City or place name", Required: true},
			},
			Returns: "string",
		},
	}
}

// GetWeather reports the current conditions at a location
func (w *WeatherOps) GetWeather(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "getting weather"

	location, err := params.NonEmptyString(p, "location")
	if err != nil {
		return Failure(action, err)
	}
	location = strings.TrimSpace(location)

	data, err := w.GetJSON(ctx, joinURL(w.Endpoints.Weather, url.PathEscape(location)), map[string]string{"format": "j1"})
	if err != nil {
		return Failure(action, err)
	}

	current := data.Get("current_condition.0")
	if !current.Exists() {
		return Failure(action, &toolerr.ResponseError{Source: "weather service", Msg: "no current conditions for " + location})
	}

	place := location
	area := data.Get("nearest_area.0")
	if name := area.Get("areaName.0.value").String(); name != "" {
		place = name
		if country := area.Get("country.0.value").String(); country != "" {
			place += ", " + country
		}
	}

	condition := field(current, "weatherDesc.0.value")
	rep := report.New("Weather for "+place).
		Linef("Condition: %s", condition).
		Linef("Temperature: %s°C (%s°F)", field(current, "temp_C"), field(current, "temp_F")).
		Linef("Feels like: %s°C (%s°F)", field(current, "FeelsLikeC"), field(current, "FeelsLikeF")).
		Linef("Humidity: %s%%", field(current, "humidity")).
		Linef("Wind: %s km/h %s", field(current, "windspeedKmph"), field(current, "winddir16Point"))

	return Success(rep.String(), map[string]interface{}{
		"location":  place,
		"condition": condition,
		"temp_c":    field(current, "temp_C"),
	})
}
