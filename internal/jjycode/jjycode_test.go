package jjycode

import (
	"testing"

	"github.com/ersatz-timecode/ersatz/internal/bdt"
	"github.com/ersatz-timecode/ersatz/internal/classifier"
	"github.com/stretchr/testify/require"
)

func decodeMinute(t bdt.BrokenDownTime) int {
	v := 0
	if Bit01(t) {
		v += 40
	}
	if Bit02(t) {
		v += 20
	}
	if Bit03(t) {
		v += 10
	}
	if Bit05(t) {
		v += 8
	}
	if Bit06(t) {
		v += 4
	}
	if Bit07(t) {
		v += 2
	}
	if Bit08(t) {
		v += 1
	}
	return v
}

func decodeHour(t bdt.BrokenDownTime) int {
	v := 0
	if Bit12(t) {
		v += 20
	}
	if Bit13(t) {
		v += 10
	}
	if Bit15(t) {
		v += 8
	}
	if Bit16(t) {
		v += 4
	}
	if Bit17(t) {
		v += 2
	}
	if Bit18(t) {
		v += 1
	}
	return v
}

func decodeDayOfYear(t bdt.BrokenDownTime) int {
	v := 0
	if Bit22(t) {
		v += 200
	}
	if Bit23(t) {
		v += 100
	}
	if Bit25(t) {
		v += 80
	}
	if Bit26(t) {
		v += 40
	}
	if Bit27(t) {
		v += 20
	}
	if Bit28(t) {
		v += 10
	}
	if Bit30(t) {
		v += 8
	}
	if Bit31(t) {
		v += 4
	}
	if Bit32(t) {
		v += 2
	}
	if Bit33(t) {
		v += 1
	}
	return v
}

func decodeYearOfCentury(t bdt.BrokenDownTime) int {
	v := 0
	if Bit41(t) {
		v += 80
	}
	if Bit42(t) {
		v += 40
	}
	if Bit43(t) {
		v += 20
	}
	if Bit44(t) {
		v += 10
	}
	if Bit45(t) {
		v += 8
	}
	if Bit46(t) {
		v += 4
	}
	if Bit47(t) {
		v += 2
	}
	if Bit48(t) {
		v += 1
	}
	return v
}

func TestBCDFieldsRoundTrip(t *testing.T) {
	b := bdt.BrokenDownTime{Minute: 37, Hour: 21, DayOfYear: 243, YearOfCentury: 79, Weekday: 5}
	require.Equal(t, 37, decodeMinute(b))
	require.Equal(t, 21, decodeHour(b))
	require.Equal(t, 243, decodeDayOfYear(b))
	require.Equal(t, 79, decodeYearOfCentury(b))
}

func TestParityBitsAreEvenParity(t *testing.T) {
	b := bdt.BrokenDownTime{Minute: 14, Hour: 9}
	minuteOnes := 0
	for _, bit := range []bool{Bit01(b), Bit02(b), Bit03(b), Bit05(b), Bit06(b), Bit07(b), Bit08(b)} {
		if bit {
			minuteOnes++
		}
	}
	require.Equal(t, minuteOnes%2 == 1, Bit37(b))

	hourOnes := 0
	for _, bit := range []bool{Bit12(b), Bit13(b), Bit15(b), Bit16(b), Bit17(b), Bit18(b)} {
		if bit {
			hourOnes++
		}
	}
	require.Equal(t, hourOnes%2 == 1, Bit36(b))
}

func TestLeapSecondBitsAlwaysFalse(t *testing.T) {
	b := bdt.BrokenDownTime{Minute: 59, Hour: 23}
	require.False(t, Bit53(b))
	require.False(t, Bit54(b))
}

func TestTableMarksFrameBoundaries(t *testing.T) {
	for _, s := range []int{0, 9, 19, 29, 39, 49, 59, 60} {
		require.Equal(t, classifier.Marker, Table[s].Kind, "second %d", s)
	}
}

func TestTableMarksConstantZeros(t *testing.T) {
	for _, s := range []int{4, 10, 11, 14, 20, 21, 24, 34, 35, 38, 40, 55, 56, 57, 58} {
		require.Equal(t, classifier.ConstZero, Table[s].Kind, "second %d", s)
	}
}

func TestBoundarySamplesForMinuteBit(t *testing.T) {
	// Minute 40 sets Bit01 true, so second 1 (Bit01's slot) should report
	// a one-length boundary.
	b := bdt.BrokenDownTime{Minute: 40, Second: 1}
	got := classifier.BoundarySamples(&Table, b, Lengths)
	require.Equal(t, Lengths.One, got)
}
