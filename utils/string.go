package utils

import (
	"strconv"
	"strings"
)

// AnyToString converts a log argument to text without pulling in fmt,
// so the browser build stays small.
func AnyToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case error:
		if val != nil {
			return val.Error()
		}
		return "<nil>"
	case []string:
		return "[" + strings.Join(val, ", ") + "]"
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case interface{ String() string }:
		return val.String()
	default:
		if val == nil {
			return "<nil>"
		}
		return "<?>"
	}
}

// JoinArgs renders log arguments separated by a single space.
func JoinArgs(args ...any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, AnyToString(a))
	}
	return strings.Join(parts, " ")
}
