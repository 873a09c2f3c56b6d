// Package wavetable precomputes carrier-wave samples so the realtime
// callback never has to call math.Sin on the hot path, the same
// lookup-table strategy audio_lut.go uses for its sine and tanh tables.
package wavetable

import "math"

// Params describes a carrier wavetable's frozen, per-stream parameters.
type Params struct {
	CarrierFreq float64 // Hz
	SampleRate  int
	Size        int // WT_SIZE: number of samples per full table cycle
}

// Continuous reports whether Size*CarrierFreq is an integer multiple of
// SampleRate, the invariant that keeps concatenated repetitions of the
// table phase-continuous.
func (p Params) Continuous() bool {
	product := p.CarrierFreq * float64(p.Size)
	quotient := product / float64(p.SampleRate)
	return quotient == math.Trunc(quotient)
}

// PhaseShiftIndex is the wavetable index representing a 180-degree phase
// flip (Size/2), the index WWVB's BPSK channel jumps the read index to.
func (p Params) PhaseShiftIndex() int {
	return p.Size / 2
}

// PopulateFloat32 fills a high- and low-amplitude pair of tables scaled
// to [-1,1], for JJY's float32 audio stream. attenuation is the low
// table's amplitude relative to the high table (e.g. 0.1 for JJY).
func PopulateFloat32(p Params, attenuation float64) (high, low []float32) {
	high = make([]float32, p.Size)
	low = make([]float32, p.Size)
	cyclesPerSample := p.CarrierFreq / float64(p.SampleRate)
	for i := 0; i < p.Size; i++ {
		s := math.Sin(float64(i) * 2 * math.Pi * cyclesPerSample)
		high[i] = float32(s)
		low[i] = float32(attenuation * s)
	}
	return high, low
}

// PopulateInt16 fills a high- and low-amplitude pair of tables scaled to
// the signed 16-bit sample range, for WWVB's int16 audio stream.
func PopulateInt16(p Params, attenuation float64) (high, low []int16) {
	const scale = 32767
	high = make([]int16, p.Size)
	low = make([]int16, p.Size)
	cyclesPerSample := p.CarrierFreq / float64(p.SampleRate)
	for i := 0; i < p.Size; i++ {
		s := math.Sin(float64(i) * 2 * math.Pi * cyclesPerSample)
		high[i] = int16(scale * s)
		low[i] = int16(scale * attenuation * s)
	}
	return high, low
}
