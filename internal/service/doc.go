// Package service provides the registry that dispatches toolbox calls.
//
// Providers register a service definition with its tools. Callers resolve
// tools by full ID ("scraper.extract_text") or by bare operation name
// ("extract_text"); every transport (HTTP, MCP, CLI) goes through
// Registry.Execute so calls share call IDs, logging and metrics.
//
// Example Usage:
//
//	registry := service.NewRegistry(service.WithLogger(log), service.WithMetrics(metrics))
//	registry.Register(data.NewProvider())
//	result, err := registry.Execute(ctx, "hash_data", params, &types.Context{Source: "cli"})
package service
