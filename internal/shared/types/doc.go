// Package types provides shared data structures for the toolbox service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter schema (type, default, allowed values)
//   - Context: Execution context for a single call
//   - Result: Standard operation result carrying the text report
//
// Request Types:
//   - DiscoverRequest: Intent-based service discovery
//   - ExecuteRequest: Service tool execution
//
// Example Usage:
//
//	result, err := registry.Execute(ctx, "data.hash_data", map[string]any{
//	    "data":      "abc",
//	    "algorithm": "sha256",
//	}, &types.Context{Source: "cli"})
package types
