// Package mcpserver serves registry tools to Model Context Protocol clients.
//
// Tools are listed under their bare operation names (extract_text,
// hash_data, ...) with an input schema derived from their parameters.
// A call returns the operation's text report as a single text content
// block; failed operations set IsError.
//
// Transports:
//   - stdio (toolbox mcp)
//   - streamable HTTP, mounted by the HTTP server at the configured path
package mcpserver
