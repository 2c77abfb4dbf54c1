package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// Public endpoints used when none are configured
const (
	DefaultWeatherEndpoint = "https://wttr.in/"
	DefaultNewsEndpoint    = "https://hacker-news.firebaseio.com/v0/"
	DefaultCryptoEndpoint  = "https://api.coingecko.com/api/v3/simple/price"
	DefaultIPInfoEndpoint  = "http://ip-api.com/json/"

	// Unknown fills fields an upstream response leaves out.
	Unknown = "Unknown"
)

// Endpoints holds the base URLs of the upstream APIs. Empty fields take the
// defaults.
type Endpoints struct {
	Weather string
	News    string
	Crypto  string
	IPInfo  string
}

func (e Endpoints) withDefaults() Endpoints {
	e.Weather = orDefault(e.Weather, DefaultWeatherEndpoint)
	e.News = orDefault(e.News, DefaultNewsEndpoint)
	e.Crypto = orDefault(e.Crypto, DefaultCryptoEndpoint)
	e.IPInfo = orDefault(e.IPInfo, DefaultIPInfoEndpoint)
	return e
}

// APIOps provides common helpers for the API modules
type APIOps struct {
	Client    *fetch.Client
	Endpoints Endpoints
}

// NewAPIOps creates ops around a shared fetch client
func NewAPIOps(client *fetch.Client, endpoints Endpoints) *APIOps {
	if client == nil {
		client = fetch.NewClient(fetch.Options{})
	}
	return &APIOps{Client: client, Endpoints: endpoints.withDefaults()}
}

// GetJSON fetches rawURL and parses the body as JSON
func (a *APIOps) GetJSON(ctx context.Context, rawURL string, query map[string]string) (gjson.Result, error) {
	resp, err := a.Client.Get(ctx, rawURL, query)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(resp.Body) {
		return gjson.Result{}, &toolerr.ResponseError{
			Source: rawURL,
			Msg:    fmt.Sprintf("response is not valid JSON (%d bytes)", len(resp.Body)),
		}
	}
	return gjson.ParseBytes(resp.Body), nil
}

// joinURL appends an already escaped path to base.
func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Success creates successful result
func Success(text string, data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Text: text, Data: data}, nil
}

// Failure creates a failed result carrying the error report
func Failure(action string, err error) (*types.Result, error) {
	msg := report.Failure(action, err)
	return &types.Result{Success: false, Text: msg, Error: &msg, ErrorKind: report.ErrorKind(err)}, nil
}

// UnknownToolFailure returns failure for unknown tool
func UnknownToolFailure(toolID string) (*types.Result, error) {
	msg := fmt.Sprintf("unknown tool: %s", toolID)
	return &types.Result{Success: false, Text: "Error: " + msg, Error: &msg, ErrorKind: "unknown_tool"}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// field returns the text of path in r, or Unknown.
func field(r gjson.Result, path string) string {
	v := r.Get(path)
	if !v.Exists() || v.Type == gjson.Null || v.String() == "" {
		return Unknown
	}
	return v.String()
}
