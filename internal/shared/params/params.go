// Package params extracts typed tool parameters from loosely typed call
// arguments (JSON bodies, MCP arguments, CLI key=value pairs).
package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

// String extracts a required string parameter.
// Numbers and booleans are accepted and formatted.
func String(params map[string]any, key string) (string, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return "", &toolerr.MissingParamError{Name: key}
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("%s must be string", key)
	}
}

// NonEmptyString extracts a required string that must not be blank.
func NonEmptyString(params map[string]any, key string) (string, error) {
	s, err := String(params, key)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", &toolerr.MissingParamError{Name: key}
	}
	return s, nil
}

// StringOr extracts an optional string with default.
func StringOr(params map[string]any, key, defaultVal string) string {
	s, err := String(params, key)
	if err != nil || s == "" {
		return defaultVal
	}
	return s
}

// Bool extracts bool from params with default.
// String values such as "true" or "0" are parsed.
func Bool(params map[string]any, key string, defaultVal bool) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return defaultVal
		}
		return b
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return defaultVal
	}
}

// Int extracts int from params with default.
func Int(params map[string]any, key string, defaultVal int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return defaultVal
		}
		return n
	default:
		return defaultVal
	}
}
