// Package providers groups the toolbox service providers.
//
// Available Providers:
//   - scraper: page text, links and web search results
//   - data: JSON and CSV processing, text analysis, hashing, encodings
//   - api: weather, tech news, crypto prices and IP lookups from public APIs
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Each provider splits its tools across small ops modules (ContentOps,
// SearchOps, JSONOps, ...) that share one base struct.
package providers
