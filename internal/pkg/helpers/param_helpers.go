package helpers

import (
	"strconv"
	"strings"
	"unicode"
)

// LeadingInt reads the integer at the start of s the way path and query ids
// are read: surrounding space is ignored and trailing garbage is dropped, so
// "12abc" is 12. When s does not start with a number it is returned as is and
// the procedure parameter rejects it.
func LeadingInt(s string) any {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(trimmed) && (trimmed[end] == '-' || trimmed[end] == '+') {
		end++
	}
	digits := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digits {
		return s
	}

	n, err := strconv.ParseInt(trimmed[:end], 10, 64)
	if err != nil {
		return s
	}
	return n
}

// OptionalLeadingInt is LeadingInt for optional query values; empty is NULL
func OptionalLeadingInt(s string) any {
	if s == "" {
		return nil
	}
	return LeadingInt(s)
}
