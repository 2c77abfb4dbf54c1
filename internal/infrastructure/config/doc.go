// Package config loads toolbox configuration from defaults, an optional
// YAML or TOML file and environment variables, in increasing precedence.
//
// Environment Variables:
//   - PORT, HOST: HTTP listen address
//   - LOG_LEVEL, LOG_DEV: logging
//   - FETCH_TIMEOUT, FETCH_USER_AGENT, FETCH_MAX_BODY_BYTES: outbound fetches
//   - SEARCH_ENDPOINT: search_web endpoint
//   - MCP_ENABLED, MCP_PATH: MCP over streamable HTTP
//   - METRICS_ENABLED: /metrics endpoint
//
// Example Usage:
//
//	cfg, err := config.LoadFile("toolbox.yaml")
//	if err == nil {
//		err = cfg.Validate()
//	}
package config
