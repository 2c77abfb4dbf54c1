// Package server wires configuration, logging, metrics, providers and the
// HTTP and MCP surfaces into one runnable server.
package server
