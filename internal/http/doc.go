// Package http provides HTTP handlers for the toolbox REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Tools: /tools
//
// Malformed requests get 400 with {"error": ...}; unknown tools get 404.
// An operation that runs but fails still answers 200 with success=false and
// the error report in text, so clients always receive the report.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, "1.0.0")
//	router.POST("/services/execute", handlers.ExecuteService)
package http
