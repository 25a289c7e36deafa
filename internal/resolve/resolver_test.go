package resolve

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var failing = ParserFunc(func(s string) (time.Time, error) {
	return time.Time{}, errors.New("stub: no parse")
})

// tableOnly disables both library parsers so the catalog and the two-digit
// heuristic are observable on their own.
func tableOnly(opts ...Option) *Resolver {
	return New(append([]Option{WithFreeForm(failing), WithPermissive(failing)}, opts...)...)
}

func strPtr(s string) *string { return &s }

func TestResolve_StageOrder(t *testing.T) {
	fixed := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	stubbed := ParserFunc(func(string) (time.Time, error) { return fixed, nil })

	t.Run("free-form wins over catalog", func(t *testing.T) {
		r := New(WithFreeForm(stubbed), WithPermissive(failing))
		res, err := r.Resolve("2024-01-01", false)
		require.NoError(t, err)
		require.Equal(t, StageFreeForm, res.Stage)
		require.Equal(t, "2001-02-03T04:05:06", res.Timestamp.String())
	})

	t.Run("catalog names its specifier", func(t *testing.T) {
		res, err := tableOnly().Resolve("January 1, 2024 12:00 PM", false)
		require.NoError(t, err)
		require.Equal(t, StageFormatTable, res.Stage)
		require.Equal(t, "long_date", res.Specifier)
	})

	t.Run("two-digit year after catalog", func(t *testing.T) {
		res, err := tableOnly().Resolve("24-01-01", false)
		require.NoError(t, err)
		require.Equal(t, StageTwoDigitYear, res.Stage)
		require.Empty(t, res.Specifier)
		require.Equal(t, "2024-01-01T00:00:00", res.Timestamp.String())
	})

	t.Run("permissive last", func(t *testing.T) {
		r := New(WithFreeForm(failing), WithPermissive(stubbed))
		res, err := r.Resolve("yesterday-ish", false)
		require.NoError(t, err)
		require.Equal(t, StagePermissive, res.Stage)
	})

	t.Run("invalid two-digit date falls through", func(t *testing.T) {
		_, err := tableOnly().Resolve("99-13-40", false)
		require.ErrorIs(t, err, ErrPermissive)
	})
}

func TestResolve_SamplesWithoutLibraryParsers(t *testing.T) {
	r := tableOnly()
	for _, s := range Samples {
		res, err := r.Resolve(s, false)
		if strings.Contains(s, "Mer") {
			require.Error(t, err, s)
			continue
		}
		require.NoError(t, err, s)
		require.Contains(t, []Stage{StageFormatTable, StageTwoDigitYear}, res.Stage, s)
	}
}

func TestResolve_WeekdayInsensitive(t *testing.T) {
	r := tableOnly()
	for _, s := range Samples {
		base, _ := StripWeekdays(s)
		want := r.ToRFC3339(&base, false)
		got := r.ToRFC3339(strPtr("Tuesday, "+base), false)
		require.Equal(t, want, got, s)
	}
}

func TestResolve_ZoneFromInput(t *testing.T) {
	parsed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("", 0))
	stub := ParserFunc(func(string) (time.Time, error) { return parsed, nil })
	r := New(WithFreeForm(stub))

	res, err := r.Resolve("2024-01-01 12:00:00 EST", false)
	require.NoError(t, err)
	require.False(t, res.Timestamp.Zoned)
	require.Equal(t, "2024-01-01T12:00:00", res.Timestamp.String())

	res, err = r.Resolve("2024-01-01 12:00:00 UTC", false)
	require.NoError(t, err)
	require.True(t, res.Timestamp.Zoned)
	require.Equal(t, "2024-01-01T12:00:00+00:00", res.Timestamp.String())
}

func TestResolve_ParserPanicIsContained(t *testing.T) {
	boom := ParserFunc(func(string) (time.Time, error) { panic("boom") })
	r := New(WithFreeForm(boom), WithPermissive(boom))

	res, err := r.Resolve("2024-01-01", false)
	require.NoError(t, err)
	require.Equal(t, StageFormatTable, res.Stage)

	_, err = r.Resolve("noise", false)
	require.ErrorIs(t, err, ErrPermissive)
	require.ErrorContains(t, err, "parser panic")
}

func TestToRFC3339(t *testing.T) {
	r := tableOnly()

	t.Run("nil input", func(t *testing.T) {
		require.Nil(t, r.ToRFC3339(nil, false))
		require.Nil(t, r.ToRFC3339(nil, true))
	})

	t.Run("resolved", func(t *testing.T) {
		got := r.ToRFC3339(strPtr("Tues, 04 June 2013 15:00:00 +0900"), false)
		require.NotNil(t, got)
		require.Equal(t, "2013-06-04T15:00:00+09:00", *got)
	})

	t.Run("unresolved", func(t *testing.T) {
		require.Nil(t, r.ToRFC3339(strPtr("x9q!zz"), false))
	})

	t.Run("unresolved debug embeds input", func(t *testing.T) {
		got := r.ToRFC3339(strPtr("Fri, x9q!zz"), true)
		require.NotNil(t, got)
		require.Equal(t, "Could not parse the date: Fri, x9q!zz", *got)
	})
}

func TestResolve_DebugDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	r := tableOnly(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := r.Resolve("Monday, 2024-01-01", false)
	require.NoError(t, err)
	require.Zero(t, buf.Len(), "no diagnostics without debug")

	_, err = r.Resolve("Monday, 2024-01-01", true)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "removed days of week")
	require.Contains(t, out, `"stage":"free_form"`)
	require.NotContains(t, out, `"stage":"format_table"`)
}

func TestStageError(t *testing.T) {
	err := stageError(StageFreeForm, ErrFreeForm, "abc", errors.New("cause"))
	require.ErrorIs(t, err, ErrFreeForm)
	require.NotErrorIs(t, err, ErrPermissive)
	require.Equal(t, `free_form: free-form parse failed: "abc": cause`, err.Error())
}

func TestResolve_EndToEnd(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01T12:00:00Z", "2024-01-01T12:00:00+00:00"},
		{"Tues, 04 June 2013 15:00:00 +0900", "2013-06-04T15:00:00+09:00"},
		{"January 1, 2024 12:00 PM", "2024-01-01T12:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ToRFC3339(&tt.in, false)
			require.NotNil(t, got)
			require.Equal(t, tt.want, *got)
		})
	}
}

func TestResolve_DefaultParsers(t *testing.T) {
	r := New()

	t.Run("two-digit year lands in the 2000s", func(t *testing.T) {
		res, err := r.Resolve("24-01-01", false)
		require.NoError(t, err)
		require.Equal(t, StageTwoDigitYear, res.Stage)
		require.Equal(t, 2024, res.Timestamp.Time.Year())
		require.Equal(t, "2024-01-01T00:00:00", res.Timestamp.String())
	})

	t.Run("impossible two-digit date", func(t *testing.T) {
		require.Nil(t, r.ToRFC3339(strPtr("99-13-40"), false))
	})

	t.Run("noise", func(t *testing.T) {
		require.Nil(t, r.ToRFC3339(strPtr("x9q!zz"), false))
		got := r.ToRFC3339(strPtr("x9q!zz"), true)
		require.NotNil(t, got)
		require.Equal(t, UnresolvedMessage("x9q!zz"), *got)
	})

	t.Run("trailing word", func(t *testing.T) {
		require.Nil(t, r.ToRFC3339(strPtr("2024-01-01garbage"), false))
	})

	t.Run("epoch seconds", func(t *testing.T) {
		require.Nil(t, r.ToRFC3339(strPtr("1234567890"), false))
	})

	t.Run("weekday insensitive", func(t *testing.T) {
		for _, base := range []string{
			"2024-01-01T12:00:00Z",
			"04 June 2013 15:00:00 +0900",
			"January 1, 2024 12:00 PM",
			"24-01-01",
		} {
			want := r.ToRFC3339(strPtr(base), false)
			require.NotNil(t, want, base)
			got := r.ToRFC3339(strPtr("Wednesday, "+base), false)
			require.Equal(t, want, got, base)
		}
	})
}
