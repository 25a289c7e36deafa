package resolve

import (
	"regexp"
	"strings"
)

// Longer names come first so "Thursday" is not consumed as "Thu" + "rsday".
var weekdayToken = regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|tues|thurs|thur|mon|tue|wed|thu|fri|sat|sun)\b,?\s*`)

// StripWeekdays removes English weekday names and abbreviations, each with an
// optional trailing comma and spaces, then trims the result. When no weekday
// is present the input is returned untouched and changed is false.
func StripWeekdays(s string) (cleaned string, changed bool) {
	if !weekdayToken.MatchString(s) {
		return s, false
	}
	return strings.TrimSpace(weekdayToken.ReplaceAllString(s, "")), true
}
