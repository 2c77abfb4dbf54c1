package scraper

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/markup"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

const (
	// DefaultSearchEndpoint is the HTML-only DuckDuckGo front end.
	DefaultSearchEndpoint = "https://html.duckduckgo.com/html/"

	NoTitle   = "No title"
	NoURL     = "No URL"
	NoSnippet = "No snippet"
)

// ScraperOps provides common scraping helpers
type ScraperOps struct {
	Client         *fetch.Client
	SearchEndpoint string
}

// NewScraperOps creates ops around a shared fetch client
func NewScraperOps(client *fetch.Client, searchEndpoint string) *ScraperOps {
	if client == nil {
		client = fetch.NewClient(fetch.Options{})
	}
	if searchEndpoint == "" {
		searchEndpoint = DefaultSearchEndpoint
	}
	return &ScraperOps{Client: client, SearchEndpoint: searchEndpoint}
}

// Load fetches a page and parses it
func (s *ScraperOps) Load(ctx context.Context, rawURL string, query map[string]string) (*markup.Document, error) {
	resp, err := s.Client.Get(ctx, rawURL, query)
	if err != nil {
		return nil, err
	}
	return markup.Parse(resp.Body, resp.ContentType())
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
