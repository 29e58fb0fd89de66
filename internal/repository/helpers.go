package repository

import (
	"encoding/json"
	"time"
)

// marshalList serializes a string slice for a TEXT column. A nil slice
// stores as "[]" so columns never hold SQL NULL.
func marshalList(vals []string) string {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalList parses a TEXT column back into a string slice. Malformed
// content reads as empty rather than failing the row.
func unmarshalList(s string) []string {
	var vals []string
	if err := json.Unmarshal([]byte(s), &vals); err != nil || vals == nil {
		return []string{}
	}
	return vals
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime parses an RFC3339 column, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
