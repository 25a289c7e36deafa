package resolve

import (
	"fmt"
	"strings"
	"time"
)

// Catalog is an ordered, immutable set of strict formats: the standard
// (interchange) group is always tried before the custom group, and within a
// group earlier entries win.
type Catalog struct {
	standard []Specifier
	custom   []Specifier
}

var (
	arabic = NewLocale("ar",
		"يناير", "January",
		"فبراير", "February",
		"مارس", "March",
		"أبريل", "April",
		"إبريل", "April",
		"مايو", "May",
		"يونيو", "June",
		"يوليو", "July",
		"أغسطس", "August",
		"سبتمبر", "September",
		"أكتوبر", "October",
		"نوفمبر", "November",
		"ديسمبر", "December",
		"ص", "AM",
		"م", "PM",
	)
	japanese = NewLocale("ja",
		"午前", "AM",
		"午後", "PM",
	)
)

var standardFormats = []Specifier{
	{Name: "iso8601_utc", Layout: "2006-01-02T15:04:05Z", Zone: ZoneUTC},
	{Name: "iso8601_offset", Layout: "2006-01-02T15:04:05Z07:00", Zone: ZoneOffset},
	{Name: "iso8601_offset_compact", Layout: "2006-01-02T15:04:05-0700", Zone: ZoneOffset},
	{Name: "rfc822_zone", Layout: "2 Jan 2006 15:04:05 MST", Zone: ZoneAbbrev},
	{Name: "rfc822_offset", Layout: "2 Jan 2006 15:04:05 -0700", Zone: ZoneOffset},
	{Name: "rfc822_long_month_offset", Layout: "2 January 2006 15:04:05 -0700", Zone: ZoneOffset},
	{Name: "iso8601_utc_fraction", Layout: "2006-01-02T15:04:05.999999Z", Zone: ZoneUTC},
}

var customFormats = []Specifier{
	{Name: "long_date", Layout: "January 2, 2006 3:04 PM"},
	{Name: "short_date_2_digit", Layout: "1/2/06 3:04 PM"},
	{Name: "short_date_hyphens", Layout: "2-Jan-06 3:04 PM"},
	{Name: "mixed_date", Layout: "2-1-2006 3:04 PM"},
	{Name: "date_only", Layout: "2006-1-2"},
	{Name: "date_only_slashes", Layout: "1/2/2006"},
	{Name: "abbreviated_year", Layout: "Jan 2, '06"},
	{Name: "long_month_name", Layout: "2-January-2006"},
	{Name: "uppercase_month_abbr", Layout: "2/Jan/2006"},
	{Name: "compact_format", Layout: "20060102T150405Z", Zone: ZoneUTC},
	{Name: "time_with_long_date", Layout: "3:04 PM, January 2, 2006"},
	{Name: "time_with_short_date", Layout: "3:04 PM, 1/2/06"},
	{Name: "time_with_short_format", Layout: "3:04 PM, 2-Jan-06"},
	{Name: "ordinal_day", Layout: "January 2, 2006", Ordinal: true},
	{Name: "short_format_timezone", Layout: "2-Jan-2006 3:04 PM MST", Zone: ZoneAbbrev},
	{Name: "short_format_offset", Layout: "2/1/06 3:04 PM -0700", Zone: ZoneOffset},
	{Name: "dots_separators", Layout: "2.1.06 3:04 PM"},
	{Name: "non_latin", Layout: "2006年1月2日 15:04:05", Locale: japanese},
	{Name: "arabic_numerals", Layout: "2 January، 2006 3:04 PM", Locale: arabic},
	{Name: "non_standard_separators", Layout: "2006年1月2日 3:04 PM", Locale: japanese},
	{Name: "slashes_datetime", Layout: "2006/1/2 15:04:05"},
	{Name: "short_date_abbrev_zone", Layout: "1/2/06 15:04:05 MST", Zone: ZoneAbbrev},
	{Name: "short_format_iso_time", Layout: "2-Jan-06T15:04:05Z07:00", Zone: ZoneOffset},
	{Name: "short_numeric_iso_time", Layout: "1-2-06T15:04:05Z07:00", Zone: ZoneOffset},
	{Name: "abbreviated_year_time_zone", Layout: "Jan 2, '06 3:04 PM MST", Zone: ZoneAbbrev},
	{Name: "short_date_hyphens_zone", Layout: "2-Jan-06 3:04 PM MST", Zone: ZoneAbbrev},
}

var defaultCatalog = MustCatalog(standardFormats, customFormats)

// DefaultCatalog returns the compiled-in catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

// NewCatalog validates every specifier and returns the catalog. Names must be
// unique across both groups, each layout must parse its own rendering of the
// reference time, and the zone kind must agree with the layout.
func NewCatalog(standard, custom []Specifier) (*Catalog, error) {
	seen := make(map[string]bool)
	for _, group := range [][]Specifier{standard, custom} {
		for _, spec := range group {
			if spec.Name == "" {
				return nil, fmt.Errorf("specifier with layout %q has no name", spec.Layout)
			}
			if seen[spec.Name] {
				return nil, fmt.Errorf("duplicate specifier name %q", spec.Name)
			}
			seen[spec.Name] = true
			if err := validateSpecifier(spec); err != nil {
				return nil, fmt.Errorf("specifier %q: %w", spec.Name, err)
			}
		}
	}
	return &Catalog{
		standard: append([]Specifier(nil), standard...),
		custom:   append([]Specifier(nil), custom...),
	}, nil
}

// MustCatalog is NewCatalog for package-level tables; it panics on error.
func MustCatalog(standard, custom []Specifier) *Catalog {
	c, err := NewCatalog(standard, custom)
	if err != nil {
		panic(err)
	}
	return c
}

var referenceTime = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.FixedZone("MST", -7*3600))

func validateSpecifier(spec Specifier) error {
	if spec.Layout == "" {
		return fmt.Errorf("empty layout")
	}
	rendered := referenceTime.Format(spec.Layout)
	if _, err := time.Parse(spec.Layout, rendered); err != nil {
		return fmt.Errorf("layout does not round-trip: %w", err)
	}

	hasOffset := strings.Contains(spec.Layout, "-07") || strings.Contains(spec.Layout, "Z07")
	hasAbbrev := strings.Contains(spec.Layout, "MST")
	switch spec.Zone {
	case ZoneNone:
		if hasOffset || hasAbbrev {
			return fmt.Errorf("layout has a zone but zone kind is %s", spec.Zone)
		}
	case ZoneUTC:
		if hasOffset || hasAbbrev || !strings.HasSuffix(spec.Layout, "Z") {
			return fmt.Errorf("zone kind %s needs a literal Z suffix", spec.Zone)
		}
	case ZoneOffset:
		if !hasOffset {
			return fmt.Errorf("zone kind %s needs an offset in the layout", spec.Zone)
		}
	case ZoneAbbrev:
		if !hasAbbrev {
			return fmt.Errorf("zone kind %s needs MST in the layout", spec.Zone)
		}
	default:
		return fmt.Errorf("unknown zone kind %d", spec.Zone)
	}
	return nil
}

// Standard returns a copy of the standard group.
func (c *Catalog) Standard() []Specifier { return append([]Specifier(nil), c.standard...) }

// Custom returns a copy of the custom group.
func (c *Catalog) Custom() []Specifier { return append([]Specifier(nil), c.custom...) }

// Len returns the number of specifiers in both groups.
func (c *Catalog) Len() int { return len(c.standard) + len(c.custom) }

// Match returns the first specifier that parses the whole of s.
func (c *Catalog) Match(s string) (Specifier, Timestamp, bool) {
	for _, group := range [][]Specifier{c.standard, c.custom} {
		for _, spec := range group {
			if ts, ok := spec.Match(s); ok {
				return spec, ts, true
			}
		}
	}
	return Specifier{}, Timestamp{}, false
}
