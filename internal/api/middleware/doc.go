// Package middleware provides Gin middleware shared by the HTTP surfaces:
// CORS for browser clients and request IDs with access logging.
package middleware
