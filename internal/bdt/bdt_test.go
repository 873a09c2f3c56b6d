package bdt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecomposeUTC(t *testing.T) {
	loc := time.UTC
	s := time.Date(2025, time.March, 15, 13, 24, 37, 0, loc).Unix()
	b := Decompose(s, loc)

	require.Equal(t, 2025, b.Year)
	require.Equal(t, 25, b.YearOfCentury)
	require.Equal(t, 74, b.DayOfYear)
	require.Equal(t, 13, b.Hour)
	require.Equal(t, 24, b.Minute)
	require.Equal(t, 37, b.Second)
	require.Equal(t, int(time.Saturday), b.Weekday)
	require.False(t, b.DST)
}

func TestIsDSTNorthernHemisphere(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	winter := time.Date(2025, time.January, 15, 12, 0, 0, 0, loc)
	summer := time.Date(2025, time.July, 15, 12, 0, 0, 0, loc)

	require.False(t, isDST(winter))
	require.True(t, isDST(summer))
}

func TestIsDSTSouthernHemisphere(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	janSummer := time.Date(2025, time.January, 15, 12, 0, 0, 0, loc)
	julyWinter := time.Date(2025, time.July, 15, 12, 0, 0, 0, loc)

	require.True(t, isDST(janSummer))
	require.False(t, isDST(julyWinter))
}

func TestDecomposeWithDSTZoneFlagsTransitionDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US spring-forward in 2025 is March 9th: DST begins at 02:00 local,
	// so the transition day itself starts in standard time and ends in DST.
	transitionDay := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC).Unix()
	b := DecomposeWithDSTZone(transitionDay, time.UTC, loc)

	require.False(t, b.DSTAtStartOfDay)
	require.True(t, b.DSTAtEndOfDay)
}
