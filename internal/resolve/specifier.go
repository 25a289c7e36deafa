package resolve

import (
	"regexp"
	"strings"
	"time"

	"github.com/gyeh/datenorm/internal/normalize"
)

// ZoneKind describes the zone slot of a Specifier's layout.
type ZoneKind int

const (
	ZoneNone   ZoneKind = iota // no zone in the layout
	ZoneUTC                    // literal Z suffix
	ZoneOffset                 // numeric offset (-0700, -07:00, Z07:00)
	ZoneAbbrev                 // abbreviation such as GMT or EST
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneNone:
		return "none"
	case ZoneUTC:
		return "utc"
	case ZoneOffset:
		return "offset"
	case ZoneAbbrev:
		return "abbrev"
	default:
		return "unknown"
	}
}

// Locale rewrites locale tokens into the English forms Go layouts accept.
// Digits are always folded to ASCII first.
type Locale struct {
	Name     string
	replacer *strings.Replacer
}

// NewLocale builds a Locale from old/new pairs. Earlier pairs win when two
// tokens start at the same position, so list whole words before fragments.
func NewLocale(name string, oldnew ...string) *Locale {
	return &Locale{Name: name, replacer: strings.NewReplacer(oldnew...)}
}

func (l *Locale) rewrite(s string) string {
	s = normalize.CollapseSpace(normalize.FoldDigits(s))
	if l.replacer == nil {
		return s
	}
	return l.replacer.Replace(s)
}

// Specifier is one strict format in the catalog.
type Specifier struct {
	Name    string
	Layout  string // Go reference layout
	Zone    ZoneKind
	Ordinal bool    // strip st/nd/rd/th after day numbers before matching
	Locale  *Locale // nil for English/ASCII input
}

var ordinalSuffix = regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)\b`)

func (s Specifier) prepare(in string) string {
	if s.Locale != nil {
		in = s.Locale.rewrite(in)
	}
	if s.Ordinal {
		in = ordinalSuffix.ReplaceAllString(in, "$1")
	}
	return in
}

// Match parses in against the layout. The whole string must be consumed.
func (s Specifier) Match(in string) (Timestamp, bool) {
	t, err := time.Parse(s.Layout, s.prepare(in))
	if err != nil {
		return Timestamp{}, false
	}
	switch s.Zone {
	case ZoneUTC, ZoneOffset:
		return zonedTimestamp(t), true
	case ZoneAbbrev:
		if name, _ := t.Zone(); name == "UTC" || name == "GMT" {
			return zonedTimestamp(t), true
		}
	}
	return naiveTimestamp(t), true
}
