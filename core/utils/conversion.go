package utils

import (
	"strconv"
	"strings"
)

// ToInt parses an integer cell value, returning 0 when the cell is empty or
// not a number. CSV files in the wild carry stray whitespace and the odd
// non-numeric placeholder, neither of which should abort a run.
func ToInt(val string) int {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0
	}
	return i
}

// ToBool interprets a truthiness cell value case-insensitively.
// "yes", "true" and "1" are true; anything else is false.
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

// ToList splits a pipe-separated cell value into trimmed, non-empty entries.
func ToList(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	parts := strings.Split(val, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
