package classifier

import (
	"testing"

	"github.com/ersatz-timecode/ersatz/internal/bdt"
	"github.com/stretchr/testify/require"
)

func testLengths() Lengths {
	return Lengths{Marker: 100, Zero: 200, One: 300}
}

func TestBoundarySamplesMarker(t *testing.T) {
	var table Table
	table[9] = Second{Kind: Marker}
	got := BoundarySamples(&table, bdt.BrokenDownTime{Second: 9}, testLengths())
	require.Equal(t, uint32(100), got)
}

func TestBoundarySamplesConstZero(t *testing.T) {
	var table Table
	table[4] = Second{Kind: ConstZero}
	got := BoundarySamples(&table, bdt.BrokenDownTime{Second: 4}, testLengths())
	require.Equal(t, uint32(200), got)
}

func TestBoundarySamplesVariable(t *testing.T) {
	var table Table
	table[1] = Second{Kind: Variable, Bit: func(bdt.BrokenDownTime) bool { return true }}
	table[2] = Second{Kind: Variable, Bit: func(bdt.BrokenDownTime) bool { return false }}

	require.Equal(t, uint32(300), BoundarySamples(&table, bdt.BrokenDownTime{Second: 1}, testLengths()))
	require.Equal(t, uint32(200), BoundarySamples(&table, bdt.BrokenDownTime{Second: 2}, testLengths()))
}

func TestBoundarySamplesOutOfRangeFallsBackToZero(t *testing.T) {
	var table Table
	got := BoundarySamples(&table, bdt.BrokenDownTime{Second: 61}, testLengths())
	require.Equal(t, uint32(200), got)
}
