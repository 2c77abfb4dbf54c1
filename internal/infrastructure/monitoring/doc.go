/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the toolbox
service, tracking HTTP requests, tool calls and outbound fetches. Each
Metrics value owns a private registry.

# Features

- HTTP request metrics (latency, throughput, size)
- Tool call metrics (duration, failures by error kind)
- Outbound fetch outcomes
- Go runtime and process collectors
- Uptime gauge

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time operations
	timer := monitoring.NewTimer(metrics, "data", "hash_data")
	// ... perform operation ...
	timer.Stop(monitoring.StatusSuccess)

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
