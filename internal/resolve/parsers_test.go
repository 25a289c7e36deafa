package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScreen(t *testing.T) {
	for _, s := range Samples {
		require.NoError(t, screen(s), s)
	}

	rejected := map[string]error{
		"1234567890":        errBareNumber,
		"1704067200000":     errBareNumber,
		"2024-01-01garbage": errGlued,
		"garbage2024-01-01": errGlued,
		"12:00 PMX, 01ZZ":   errGlued,
	}
	for in, want := range rejected {
		require.ErrorIs(t, screen(in), want, in)
	}

	for _, ok := range []string{"20240101", "20240101120000", "January 1st, 2024", "12:00pm", "2024-01-01T12:00:00Z"} {
		require.NoError(t, screen(ok), ok)
	}
}

func TestFreeForm(t *testing.T) {
	p := FreeForm()

	got, err := p.Parse("2024-01-01T12:00:00Z")
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))

	_, err = p.Parse("2024-01-01garbage")
	require.ErrorIs(t, err, errGlued)

	_, err = p.Parse("1234567890")
	require.ErrorIs(t, err, errBareNumber)
}

func TestPermissive(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	p := NewPermissive([]string{"en"}, func() time.Time { return now })

	t.Run("relative to now", func(t *testing.T) {
		got, err := p.Parse("3 days ago")
		require.NoError(t, err)
		require.Equal(t, "2024-01-07", got.UTC().Format("2006-01-02"))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := p.Parse("x9q!zz")
		require.Error(t, err)
	})

	t.Run("epoch seconds", func(t *testing.T) {
		_, err := p.Parse("1234567890")
		require.Error(t, err)
	})
}
