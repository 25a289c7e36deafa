package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandYear(t *testing.T) {
	tests := []struct {
		yy, want int
	}{
		{0, 2000},
		{24, 2024},
		{68, 2068},
		{69, 1969},
		{99, 1999},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ExpandYear(tt.yy), "yy=%d", tt.yy)
	}
}

func TestParseTwoDigitYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "24-01-01", want: "2024-01-01T00:00:00"},
		{in: "99-12-31", want: "1999-12-31T00:00:00"},
		{in: "68-02-29", want: "2068-02-29T00:00:00"},
		{in: "24-02-29", want: "2024-02-29T00:00:00"},
		{in: "99-13-40", err: ErrInvalidCalendarDate},
		{in: "23-02-29", err: ErrInvalidCalendarDate},
		{in: "24-00-10", err: ErrInvalidCalendarDate},
		{in: "24-04-31", err: ErrInvalidCalendarDate},
		{in: "01-01-24T12:00:00+00:00", err: ErrInvalidCalendarDate},
		{in: "2024-01-01", err: ErrNotApplicable},
		{in: "1-01-01", err: ErrNotApplicable},
		{in: "Jan 1, '24", err: ErrNotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := parseTwoDigitYear(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				var se *StageError
				require.True(t, errors.As(err, &se))
				require.Equal(t, StageTwoDigitYear, se.Stage)
				return
			}
			require.NoError(t, err)
			require.False(t, ts.Zoned)
			require.Equal(t, tt.want, ts.String())
		})
	}
}
