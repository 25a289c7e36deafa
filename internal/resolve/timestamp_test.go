package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampString(t *testing.T) {
	tokyo := time.FixedZone("", 9*3600)
	tests := []struct {
		name string
		ts   Timestamp
		want string
	}{
		{"naive", naiveTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, tokyo)), "2024-01-01T12:00:00"},
		{"utc", zonedTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)), "2024-01-01T12:00:00+00:00"},
		{"offset", zonedTimestamp(time.Date(2013, 6, 4, 15, 0, 0, 0, tokyo)), "2013-06-04T15:00:00+09:00"},
		{"micros", zonedTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 123456789, time.UTC)), "2024-01-01T12:00:00.123456+00:00"},
		{"millis padded", naiveTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 123000000, time.UTC)), "2024-01-01T12:00:00.123000"},
		{"negative offset", zonedTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("", -5*3600))), "2024-01-01T12:00:00-05:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ts.String())
		})
	}
}

func TestTimestampUTC(t *testing.T) {
	zoned := zonedTimestamp(time.Date(2013, 6, 4, 15, 0, 0, 0, time.FixedZone("", 9*3600)))
	require.Equal(t, time.Date(2013, 6, 4, 6, 0, 0, 0, time.UTC), zoned.UTC())

	naive := naiveTimestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600)))
	require.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), naive.UTC())
}

func TestHasExplicitZone(t *testing.T) {
	zoned := []string{
		"2024-01-01T12:00:00Z",
		"2024-01-01T12:00:00.123456Z",
		"2024-01-01T12:00:00+00:00",
		"04 June 2013 15:00:00 +0900",
		"01/01/24 12:00 PM -0500",
		"01 Jan 2024 12:00:00 GMT",
		"20240101T120000Z",
		"Mon Jan 2 15:04:05 UTC 2006",
	}
	for _, s := range zoned {
		require.True(t, hasExplicitZone(s), s)
	}
	naive := []string{
		"2024-01-01",
		"01-01-2024",
		"January 1, 2024 12:00 PM",
		"01-Jan-2024 12:00 PM EST",
		"2024年1月1日 12:00:00",
		"20240101",
	}
	for _, s := range naive {
		require.False(t, hasExplicitZone(s), s)
	}
}
