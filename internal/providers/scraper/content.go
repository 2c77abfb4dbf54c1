package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/markup"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// MaxListedLinks caps the link lines printed in an extract_links report.
const MaxListedLinks = 20

const (
	internalMarker = "🏠"
	externalMarker = "🌐"
)

// ContentOps handles page text and link extraction
type ContentOps struct {
	*ScraperOps
}

// GetTools returns content extraction tool definitions
func (c *ContentOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scraper.extract_text",
			Name:        "Extract Text",
			Description: "Extract clean text content from a webpage",
			Parameters: []types.Parameter{
				{Name: "url", Type: "string", Description: "Page URL", Required: true},
				{Name: "clean_text", Type: "boolean", Description: "Collapse whitespace (default: true)", Required: false, Default: true},
			},
			Returns: "string",
		},
		{
			ID:          "scraper.extract_links",
			Name:        "Extract Links",
			Description: "Extract all links from a webpage",
			Parameters: []types.Parameter{
				{Name: "url", Type: "string", Description: "Page URL", Required: true},
				{Name: "internal_only", Type: "boolean", Description: "Only links on the same host (default: false)", Required: false, Default: false},
			},
			Returns: "string",
		},
	}
}

// ExtractText fetches a page and reports its title and visible text
func (c *ContentOps) ExtractText(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "extracting text"

	pageURL, err := params.NonEmptyString(p, "url")
	if err != nil {
		return Failure(action, err)
	}
	clean := params.Bool(p, "clean_text", true)

	doc, err := c.Load(ctx, pageURL, nil)
	if err != nil {
		return Failure(action, err)
	}

	text := doc.VisibleText()
	if clean {
		text = markup.NormalizeWhitespace(text)
	}
	title := orDefault(doc.Title(), NoTitle)

	rep := report.Plain().
		Linef("Title: %s", title).
		Linef("URL: %s", pageURL).
		Blank().
		Add(text)

	return Success(rep.String(), map[string]interface{}{
		"title":  title,
		"url":    pageURL,
		"text":   text,
		"length": len([]rune(text)),
	})
}

// Link is one anchor found on a page
type Link struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	Internal bool   `json:"internal"`
}

// ExtractLinks fetches a page and reports its unique links
func (c *ContentOps) ExtractLinks(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "extracting links"

	pageURL, err := params.NonEmptyString(p, "url")
	if err != nil {
		return Failure(action, err)
	}
	internalOnly := params.Bool(p, "internal_only", false)

	base, err := url.Parse(pageURL)
	if err != nil {
		return Failure(action, err)
	}

	doc, err := c.Load(ctx, pageURL, nil)
	if err != nil {
		return Failure(action, err)
	}

	links := CollectLinks(doc, base, internalOnly)

	rep := report.Plain().Linef("Extracted %d unique links from %s:", len(links), pageURL)
	for i, link := range links {
		if i == MaxListedLinks {
			break
		}
		marker := externalMarker
		if link.Internal {
			marker = internalMarker
		}
		rep.Linef("%s %s: %s", marker, link.Text, link.URL)
	}
	if len(links) > MaxListedLinks {
		rep.Linef("... and %d more links", len(links)-MaxListedLinks)
	}

	return Success(rep.String(), map[string]interface{}{
		"url":   pageURL,
		"links": links,
		"count": len(links),
	})
}

// CollectLinks resolves every <a href> against base and removes duplicates,
// keeping the first occurrence in document order. Hrefs that do not parse
// are skipped. With internalOnly, links to other hosts are dropped before
// deduplication.
func CollectLinks(doc *markup.Document, base *url.URL, internalOnly bool) []Link {
	seen := make(map[string]bool)
	links := []Link{}

	for _, a := range doc.Root().FindAll("a") {
		href, ok := a.Attr("href")
		if !ok {
			continue
		}
		resolved, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			continue
		}

		internal := resolved.Host == base.Host
		if internalOnly && !internal {
			continue
		}

		key := resolved.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		links = append(links, Link{Text: a.Text(), URL: key, Internal: internal})
	}
	return links
}
