package helpers

// StringOr returns s, or def when s is empty
func StringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
