package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_MatchesSamples(t *testing.T) {
	tests := []struct {
		in        string
		want      string
		specifier string
	}{
		{"2024-01-01T12:00:00Z", "2024-01-01T12:00:00+00:00", "iso8601_utc"},
		{"2024-01-01T12:00:00+00:00", "2024-01-01T12:00:00+00:00", "iso8601_offset"},
		{"2024-01-01T12:00:00.123456Z", "2024-01-01T12:00:00.123456+00:00", "iso8601_utc"},
		{"2024-01-01T12:00:00.123Z", "2024-01-01T12:00:00.123000+00:00", "iso8601_utc"},
		{"01 Jan 2024 12:00:00 GMT", "2024-01-01T12:00:00+00:00", "rfc822_zone"},
		{"01 Jan 2024 12:00:00 +0000", "2024-01-01T12:00:00+00:00", "rfc822_offset"},
		{"04 June 2013 15:00:00 +0900", "2013-06-04T15:00:00+09:00", "rfc822_long_month_offset"},
		{"2 Dec 2017 1:00:00 GMT", "2017-12-02T01:00:00+00:00", "rfc822_zone"},
		{"January 1, 2024 12:00 PM", "2024-01-01T12:00:00", "long_date"},
		{"01/01/24 12:00 PM", "2024-01-01T12:00:00", "short_date_2_digit"},
		{"01-Jan-24 12:00 PM", "2024-01-01T12:00:00", "short_date_hyphens"},
		{"01-01-2024 12:00 PM", "2024-01-01T12:00:00", "mixed_date"},
		{"2024-01-01", "2024-01-01T00:00:00", "date_only"},
		{"01/01/2024", "2024-01-01T00:00:00", "date_only_slashes"},
		{"Jan 1, '24", "2024-01-01T00:00:00", "abbreviated_year"},
		{"01-January-2024", "2024-01-01T00:00:00", "long_month_name"},
		{"01/JAN/2024", "2024-01-01T00:00:00", "uppercase_month_abbr"},
		{"20240101T120000Z", "2024-01-01T12:00:00+00:00", "compact_format"},
		{"12:00 PM, January 1, 2024", "2024-01-01T12:00:00", "time_with_long_date"},
		{"12:00 PM, 01/01/24", "2024-01-01T12:00:00", "time_with_short_date"},
		{"12:00 PM, 01-Jan-24", "2024-01-01T12:00:00", "time_with_short_format"},
		{"January 1st, 2024", "2024-01-01T00:00:00", "ordinal_day"},
		{"March 22nd, 2023", "2023-03-22T00:00:00", "ordinal_day"},
		{"01-Jan-2024 12:00 PM EST", "2024-01-01T12:00:00", "short_format_timezone"},
		{"01/01/24 12:00 PM -0500", "2024-01-01T12:00:00-05:00", "short_format_offset"},
		{"01.01.24 12:00 PM", "2024-01-01T12:00:00", "dots_separators"},
		{"2024年1月1日 12:00:00", "2024-01-01T12:00:00", "non_latin"},
		{"２０２４年１月１日 12:00:00", "2024-01-01T12:00:00", "non_latin"},
		{"١ يناير، ٢٠٢٤ ١٢:٠٠ م", "2024-01-01T12:00:00", "arabic_numerals"},
		{"2024年01月01日 12:00 PM", "2024-01-01T12:00:00", "non_standard_separators"},
		{"2024/01/01 12:00:00", "2024-01-01T12:00:00", "slashes_datetime"},
		{"01/01/24 12:00:00 GMT", "2024-01-01T12:00:00+00:00", "short_date_abbrev_zone"},
		{"01-Jan-24T12:00:00Z", "2024-01-01T12:00:00+00:00", "short_format_iso_time"},
		{"01-01-24T12:00:00+00:00", "2024-01-01T12:00:00+00:00", "short_numeric_iso_time"},
		{"Jan 1, '24 12:00 PM PDT", "2024-01-01T12:00:00", "abbreviated_year_time_zone"},
		{"01-Jan-24 12:00 PM PDT", "2024-01-01T12:00:00", "short_date_hyphens_zone"},
	}
	c := DefaultCatalog()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			spec, ts, ok := c.Match(tt.in)
			require.True(t, ok, "no specifier matched")
			require.Equal(t, tt.specifier, spec.Name)
			require.Equal(t, tt.want, ts.String())
		})
	}
}

func TestCatalog_RejectsTrailingContent(t *testing.T) {
	c := DefaultCatalog()
	for _, s := range []string{
		"2024-01-01garbage",
		"2024-01-01T12:00:00Zjunk",
		"01/01/2024 and more",
		"January 1, 2024 12:00 PM!",
	} {
		_, _, ok := c.Match(s)
		require.False(t, ok, s)
	}
}

func TestCatalog_StandardBeforeCustom(t *testing.T) {
	// Both entries accept "2024-03-04"; only their month/day order differs.
	c, err := NewCatalog(
		[]Specifier{{Name: "ymd", Layout: "2006-01-02"}},
		[]Specifier{{Name: "ydm", Layout: "2006-02-01"}},
	)
	require.NoError(t, err)

	spec, ts, ok := c.Match("2024-03-04")
	require.True(t, ok)
	require.Equal(t, "ymd", spec.Name)
	require.Equal(t, "2024-03-04T00:00:00", ts.String())
}

func TestCatalog_FirstMatchWithinGroup(t *testing.T) {
	c, err := NewCatalog(nil, []Specifier{
		{Name: "dmy", Layout: "02/01/2006"},
		{Name: "mdy", Layout: "01/02/2006"},
	})
	require.NoError(t, err)

	spec, ts, ok := c.Match("03/04/2024")
	require.True(t, ok)
	require.Equal(t, "dmy", spec.Name)
	require.Equal(t, "2024-04-03T00:00:00", ts.String())
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec Specifier
	}{
		{"missing name", Specifier{Layout: "2006-01-02"}},
		{"empty layout", Specifier{Name: "empty"}},
		{"offset without zone kind", Specifier{Name: "a", Layout: "2006-01-02 -0700"}},
		{"abbrev without zone kind", Specifier{Name: "b", Layout: "2006-01-02 MST"}},
		{"offset kind without offset", Specifier{Name: "c", Layout: "2006-01-02", Zone: ZoneOffset}},
		{"utc kind without literal Z", Specifier{Name: "d", Layout: "2006-01-02", Zone: ZoneUTC}},
		{"abbrev kind without MST", Specifier{Name: "e", Layout: "2006-01-02", Zone: ZoneAbbrev}},
		{"unknown zone kind", Specifier{Name: "f", Layout: "2006-01-02", Zone: ZoneKind(42)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog([]Specifier{tt.spec}, nil)
			require.Error(t, err)
		})
	}

	t.Run("duplicate across groups", func(t *testing.T) {
		_, err := NewCatalog(
			[]Specifier{{Name: "dup", Layout: "2006-01-02"}},
			[]Specifier{{Name: "dup", Layout: "01/02/2006"}},
		)
		require.ErrorContains(t, err, "duplicate")
	})

	t.Run("must panics", func(t *testing.T) {
		require.Panics(t, func() {
			MustCatalog([]Specifier{{Name: "x"}}, nil)
		})
	})
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := DefaultCatalog()
	std := c.Standard()
	std[0].Layout = "mutated"
	require.NotEqual(t, "mutated", c.Standard()[0].Layout)
	require.Equal(t, len(c.Standard())+len(c.Custom()), c.Len())
}
