package common

import (
	"fmt"
	"strings"
	"time"
)

// ParticipantFromArgs extracts the primary participant from request
// arguments, for metrics and audit logging.
//
// Priority order:
//  1. Explicit "participant" argument
//  2. First entry of the "participants" list
//  3. Empty string when neither is present
func ParticipantFromArgs(args map[string]interface{}) string {
	if v, ok := args["participant"].(string); ok && v != "" {
		return v
	}
	if list := ListFromArgs(args, "participants"); len(list) > 0 {
		return list[0]
	}
	return ""
}

// ListFromArgs parses a comma-separated list from the named argument. Whitespace around entries is trimmed and empty
// entries are dropped. Returns nil when the argument is absent or empty.
func ListFromArgs(args map[string]interface{}, key string) []string {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// TimeFromArgs parses an RFC 3339 time from the named argument.
func TimeFromArgs(args map[string]interface{}, key string) (time.Time, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", key)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format (expected RFC 3339): %v", key, err)
	}
	return t, nil
}

// IntFromArgs returns the named integer argument, falling back to def
// when the argument is absent or not positive. JSON numbers arrive as
// float64 in MCP tool arguments.
func IntFromArgs(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(float64); ok && v > 0 {
		return int(v)
	}
	return def
}
