package normalize

import "strings"

// NormalizeID trims and collapses whitespace in a caller-supplied row id.
// Returns nil if the input is nil or the result is empty.
func NormalizeID(v *string) *string {
	if v == nil {
		return nil
	}
	s := CollapseSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptStr returns nil for blank strings.
func OptStr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
