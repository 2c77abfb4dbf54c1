package scraper

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// Provider implements web content extraction operations
type Provider struct {
	// Module instances
	content *ContentOps
	search  *SearchOps
}

// NewProvider creates a scraper provider around a shared fetch client
func NewProvider(client *fetch.Client, searchEndpoint string) *Provider {
	ops := NewScraperOps(client, searchEndpoint)

	return &Provider{
		content: &ContentOps{ScraperOps: ops},
		search:  &SearchOps{ScraperOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (s *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, s.content.GetTools()...)
	tools = append(tools, s.search.GetTools()...)

	return types.Service{
		ID:          "scraper",
		Name:        "Web Scraper Service",
		Description: "Fetch web pages and extract text, links and search results",
		Category:    types.CategoryScraper,
		Capabilities: []string{
			"content_extraction",
			"link_extraction",
			"web_search",
			"xpath_queries",
			"charset_detection",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (s *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Content operations
	case "scraper.extract_text":
		return s.content.ExtractText(ctx, params, appCtx)
	case "scraper.extract_links":
		return s.content.ExtractLinks(ctx, params, appCtx)

	// Search operations
	case "scraper.search_web":
		return s.search.Search(ctx, params, appCtx)

	default:
		return UnknownToolFailure(toolID)
	}
}
