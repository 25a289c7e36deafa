package normalize

import "strings"

// CollapseSpace trims the input and collapses every whitespace run, including
// non-breaking spaces, into a single ASCII space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
