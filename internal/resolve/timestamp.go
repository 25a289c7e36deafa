package resolve

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	wallClockLayout = "2006-01-02T15:04:05"
	offsetLayout    = "-07:00"
)

// Timestamp is a resolved instant. When Zoned is false the source carried no
// offset and Time holds wall-clock fields only (its location is meaningless).
type Timestamp struct {
	Time  time.Time
	Zoned bool
}

func zonedTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Zoned: true}
}

func naiveTimestamp(t time.Time) Timestamp {
	y, m, d := t.Date()
	return Timestamp{Time: time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// String renders YYYY-MM-DDTHH:MM:SS[.ffffff][±HH:MM]. Microseconds appear
// only when non-zero and the offset only when the timestamp is zoned.
func (ts Timestamp) String() string {
	var b strings.Builder
	b.WriteString(ts.Time.Format(wallClockLayout))
	if us := ts.Time.Nanosecond() / 1000; us != 0 {
		fmt.Fprintf(&b, ".%06d", us)
	}
	if ts.Zoned {
		b.WriteString(ts.Time.Format(offsetLayout))
	}
	return b.String()
}

// UTC returns the instant in UTC. Naive timestamps are read as UTC wall
// clock; callers that know the source zone should convert before this.
func (ts Timestamp) UTC() time.Time {
	if ts.Zoned {
		return ts.Time.UTC()
	}
	return ts.Time
}

// MarshalText implements encoding.TextMarshaler using String.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// explicitZone matches a time of day (or compact hhmmss) followed by Z, a
// numeric offset, or UTC/GMT at the end of the string. A trailing year is
// allowed for ctime-like strings.
var explicitZone = regexp.MustCompile(`(?i)(?:\d:\d{2}(?::\d{2}(?:[.,]\d+)?)?|\d{6}(?:[.,]\d+)?)\s*(?:[ap]\.?m\.?\s*)?(?:z|[+-]\d{2}(?::?\d{2})?|(?:utc|gmt)(?:\s*[+-]\d{1,2}(?::?\d{2})?)?)(?:\s+\d{4})?\s*$`)

// hasExplicitZone reports whether s names its own offset. Zone abbreviations
// other than UTC and GMT are not trusted: parsers fabricate zero offsets for
// names they do not know.
func hasExplicitZone(s string) bool {
	return explicitZone.MatchString(s)
}

// fromParsed wraps a parser result, keeping the offset only when the input
// asserted one.
func fromParsed(t time.Time, input string) Timestamp {
	if hasExplicitZone(input) {
		return zonedTimestamp(t)
	}
	return naiveTimestamp(t)
}
