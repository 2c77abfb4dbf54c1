// Package main provides the entry point for the toolbox CLI.
//
// The toolbox fetches web pages and transforms text and data. Every
// operation is available over HTTP, MCP and directly from the command line.
//
// Usage:
//
//	toolbox serve
//	toolbox mcp
//	toolbox list
//	toolbox call hash_data data=hello algorithm=md5
//
// See --help for all available options.
package main

func main() {
	Execute()
}
