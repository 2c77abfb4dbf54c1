// Package scraper provides web content extraction operations.
//
// This package is organized into specialized modules:
//   - content: Page text and link extraction
//   - search: Search result extraction from the DuckDuckGo HTML front end
//
// Built on specialized libraries:
//   - resty (via internal/fetch): outbound GET with timeout
//   - goquery: element queries by tag and class
//   - htmlquery: XPath support for HTML
//   - chardet: Character encoding detection
//
// Every operation returns a text report. Failures never surface as Go
// errors; they become "Error ..." reports on a failed Result.
//
// Example Usage:
//
//	scraper := scraper.NewProvider(fetch.NewClient(fetch.Options{}), "")
//	result, err := scraper.Execute(ctx, "scraper.extract_text", params, appCtx)
package scraper
