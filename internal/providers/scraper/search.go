package scraper

import (
	"context"
	"net/url"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/markup"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// DefaultNumResults is used when num_results is absent or below 1.
const DefaultNumResults = 10

// resultContainers matches <div> elements carrying the "result" class token.
const resultContainers = `//div[contains(concat(' ', normalize-space(@class), ' '), ' result ')]`

// SearchOps handles web search result extraction
type SearchOps struct {
	*ScraperOps
}

// GetTools returns search tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scraper.search_web",
			Name:        "Search Web",
			Description: "Search the web using DuckDuckGo",
			Parameters: []types.Parameter{
				{Name: "query", Type: "string", Description: "Search query", Required: true},
				{Name: "num_results", Type: "number", Description: "Maximum results (default: 10)", Required: false, Default: DefaultNumResults},
			},
			Returns: "string",
		},
	}
}

// SearchResult is one ranked hit
type SearchResult struct {
	Rank    int    `json:"rank"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Search queries the search endpoint and reports the ranked results
func (s *SearchOps) Search(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "searching web"

	query, err := params.NonEmptyString(p, "query")
	if err != nil {
		return Failure(action, err)
	}
	limit := params.Int(p, "num_results", DefaultNumResults)
	if limit < 1 {
		limit = DefaultNumResults
	}

	doc, err := s.Load(ctx, s.SearchEndpoint, map[string]string{"q": query})
	if err != nil {
		return Failure(action, err)
	}

	results, err := ParseResults(doc, limit)
	if err != nil {
		return Failure(action, err)
	}

	rep := report.New("Search results for: " + query)
	for _, r := range results {
		rep.Blank().
			Linef("%d. %s", r.Rank, r.Title).
			Linef("   %s", r.URL).
			Linef("   %s", r.Snippet)
	}
	if len(results) == 0 {
		rep.Add("No search results found.")
	}

	return Success(rep.String(), map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

// ParseResults extracts up to limit results from a search result page in
// document order. Missing titles, links and snippets get placeholders.
func ParseResults(doc *markup.Document, limit int) ([]SearchResult, error) {
	containers, err := doc.Root().XPath(resultContainers)
	if err != nil {
		return nil, err
	}

	results := []SearchResult{}
	for i, container := range containers {
		if i == limit {
			break
		}

		r := SearchResult{Rank: i + 1, Title: NoTitle, URL: NoURL, Snippet: NoSnippet}
		if link, ok := container.FirstByClass("a", "result__a"); ok {
			r.Title = orDefault(link.Text(), NoTitle)
			if href, ok := link.Attr("href"); ok {
				r.URL = orDefault(unwrapRedirect(href), NoURL)
			}
		}
		if snippet, ok := container.FirstByClass("", "result__snippet"); ok {
			r.Snippet = orDefault(snippet.Text(), NoSnippet)
		}
		results = append(results, r)
	}
	return results, nil
}

// unwrapRedirect returns the target of a "/l/?uddg=<target>" redirect link,
// or href unchanged.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
