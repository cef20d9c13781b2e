package piilog

// KeyPattern is exported for testing
func KeyPattern(fields []string, separator string, boundary bool) string {
	return keyPattern(fields, separator, boundary).String()
}

// ParseTemplate is exported for testing. It returns the number of segments.
func ParseTemplate(format string) (int, error) {
	tmpl, err := parseTemplate(format)
	return len(tmpl), err
}
