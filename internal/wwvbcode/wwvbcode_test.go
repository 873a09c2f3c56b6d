package wwvbcode

import (
	"testing"

	"github.com/ersatz-timecode/ersatz/internal/bdt"
	"github.com/ersatz-timecode/ersatz/internal/classifier"
	"github.com/stretchr/testify/require"
)

func TestDUT1BitsAreFixedAtZero(t *testing.T) {
	var b bdt.BrokenDownTime
	require.True(t, Bit36(b))
	require.False(t, Bit37(b))
	require.True(t, Bit38(b))
	require.False(t, Bit40(b))
	require.False(t, Bit41(b))
	require.False(t, Bit42(b))
	require.False(t, Bit43(b))
}

func TestLeapYearBit(t *testing.T) {
	require.True(t, Bit55(bdt.BrokenDownTime{Year: 2024}))
	require.False(t, Bit55(bdt.BrokenDownTime{Year: 2023}))
	require.False(t, Bit55(bdt.BrokenDownTime{Year: 1900}))
	require.True(t, Bit55(bdt.BrokenDownTime{Year: 2000}))
}

func TestLeapSecondAnnouncementBitAlwaysFalse(t *testing.T) {
	require.False(t, Bit56(bdt.BrokenDownTime{}))
}

func TestDSTBitsReadPrecomputedFields(t *testing.T) {
	b := bdt.BrokenDownTime{DSTAtEndOfDay: true, DSTAtStartOfDay: false}
	require.True(t, Bit57(b))
	require.False(t, Bit58(b))
}

func TestTableMarksFrameBoundaries(t *testing.T) {
	for _, s := range []int{0, 9, 19, 29, 39, 49, 59, 60} {
		require.Equal(t, classifier.Marker, Table[s].Kind, "second %d", s)
	}
}

func TestTableMarksConstantZeros(t *testing.T) {
	for _, s := range []int{4, 10, 11, 14, 20, 21, 24, 34, 35, 44, 54} {
		require.Equal(t, classifier.ConstZero, Table[s].Kind, "second %d", s)
	}
}

func TestBoundarySamplesInvertsSenseFromJJY(t *testing.T) {
	// WWVB holds low amplitude for the marker's *entire* majority share of
	// the second, unlike JJY which holds high for the minority share.
	require.Greater(t, Lengths.Marker, Lengths.One)
	require.Greater(t, Lengths.One, Lengths.Zero)
}

func TestBoundarySamplesForYearBit(t *testing.T) {
	b := bdt.BrokenDownTime{YearOfCentury: 81, Second: 45}
	got := classifier.BoundarySamples(&Table, b, Lengths)
	require.Equal(t, Lengths.One, got)
}
