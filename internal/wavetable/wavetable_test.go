package wavetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContinuousJJY(t *testing.T) {
	// 48000 Hz sample rate, 20kHz carrier (JJY's 60kHz/3), table of 12
	// samples: 20000*12 = 240000 = 48000*5, an exact integer multiple.
	p := Params{CarrierFreq: 20000, SampleRate: 48000, Size: 12}
	require.True(t, p.Continuous())
}

func TestContinuousRejectsNonIntegerCycle(t *testing.T) {
	p := Params{CarrierFreq: 20000, SampleRate: 48000, Size: 7}
	require.False(t, p.Continuous())
}

func TestPhaseShiftIndexIsHalfTable(t *testing.T) {
	p := Params{CarrierFreq: 20000, SampleRate: 48000, Size: 12}
	require.Equal(t, 6, p.PhaseShiftIndex())
}

func TestPopulateFloat32AttenuatesLowTable(t *testing.T) {
	p := Params{CarrierFreq: 20000, SampleRate: 48000, Size: 12}
	high, low := PopulateFloat32(p, 0.1)

	require.Len(t, high, 12)
	require.Len(t, low, 12)
	for i := range high {
		require.InDelta(t, float64(high[i])*0.1, float64(low[i]), 1e-6)
	}
}

func TestPopulateInt16ScalesToFullRange(t *testing.T) {
	p := Params{CarrierFreq: 20000, SampleRate: 48000, Size: 4}
	high, _ := PopulateInt16(p, 0.1)

	require.Len(t, high, 4)
	for _, v := range high {
		require.LessOrEqual(t, v, int16(32767))
		require.GreaterOrEqual(t, v, int16(-32767))
	}
}
