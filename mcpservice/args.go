package mcpservice

import (
	"fmt"
	"math"
)

// Argument extraction helpers for tools and prompts that work with untyped
// argument maps. The numeric helpers accept the float64 values produced by
// JSON decoding as well as Go integer values from hand-built maps.

// StringArg returns the named string argument.
func StringArg(args map[string]any, param string) (string, error) {
	if s, ok := args[param].(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("Missing required parameter '%s'", param)
}

// StringArgOr returns the named string argument or def when absent or not a
// string.
func StringArgOr(args map[string]any, param, def string) string {
	if s, ok := args[param].(string); ok {
		return s
	}
	return def
}

// NumberArg returns the named numeric argument as a float64.
func NumberArg(args map[string]any, param string) (float64, error) {
	if f, ok := toFloat(args[param]); ok {
		return f, nil
	}
	return 0, fmt.Errorf("Missing or invalid number parameter '%s'", param)
}

// NumberArgOr returns the named numeric argument or def.
func NumberArgOr(args map[string]any, param string, def float64) float64 {
	if f, ok := toFloat(args[param]); ok {
		return f
	}
	return def
}

// IntArg returns the named integer argument. A float value with a fractional
// part is rejected.
func IntArg(args map[string]any, param string) (int64, error) {
	if n, ok := toInt(args[param]); ok {
		return n, nil
	}
	return 0, fmt.Errorf("Missing or invalid integer parameter '%s'", param)
}

// IntArgOr returns the named integer argument or def.
func IntArgOr(args map[string]any, param string, def int64) int64 {
	if n, ok := toInt(args[param]); ok {
		return n
	}
	return def
}

// BoolArg returns the named boolean argument.
func BoolArg(args map[string]any, param string) (bool, error) {
	if b, ok := args[param].(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("Missing or invalid boolean parameter '%s'", param)
}

// BoolArgOr returns the named boolean argument or def.
func BoolArgOr(args map[string]any, param string, def bool) bool {
	if b, ok := args[param].(bool); ok {
		return b
	}
	return def
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
