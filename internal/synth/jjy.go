// Package synth drives the realtime wavetable callbacks: the part of the
// program that runs on the audio library's pull thread and must never
// allocate, lock, or block. Grounded on audio_backend_oto.go's
// atomic-handoff Read() and the reference jjy_stream_callback /
// wwvb_stream_callback sample loops.
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ersatz-timecode/ersatz/internal/bdt"
	"github.com/ersatz-timecode/ersatz/internal/classifier"
	"github.com/ersatz-timecode/ersatz/internal/jjycode"
)

// JJYStream is a continuous float32 PCM source implementing io.Reader,
// one sample per frame. It owns every field
// below; nothing else may touch them once streaming starts.
type JJYStream struct {
	High, Low []float32 // wavetables, immutable once constructed
	SampleRate int
	Loc        *time.Location // broadcast station's local time zone

	wallSecond  int64
	sampleIndex uint32
	wtIndex     uint32
	highSamples uint32
}

// NewJJYStream seeds the stream at startAt (a Unix second, typically the
// current wall clock) with the table/sample-rate pair produced by
// wavetable.PopulateFloat32. loc controls which local calendar the bit
// codec observes; JJY's home station is JST, but the stream accepts any
// zone so it can be exercised in tests without a timezone database.
func NewJJYStream(high, low []float32, sampleRate int, loc *time.Location, startAt int64, startSampleIndex uint32) *JJYStream {
	s := &JJYStream{
		High:        high,
		Low:         low,
		SampleRate:  sampleRate,
		Loc:         loc,
		wallSecond:  startAt,
		sampleIndex: startSampleIndex,
		wtIndex:     startSampleIndex % uint32(len(high)),
	}
	s.recomputeBoundary()
	return s
}

func (s *JJYStream) recomputeBoundary() {
	t := bdt.Decompose(s.wallSecond, s.Loc)
	s.highSamples = classifier.BoundarySamples(&jjycode.Table, t, jjycode.Lengths)
}

// NextSample advances the stream by exactly one frame and returns it.
func (s *JJYStream) NextSample() float32 {
	var v float32
	if s.sampleIndex < s.highSamples {
		v = s.High[s.wtIndex]
	} else {
		v = s.Low[s.wtIndex]
	}

	s.wtIndex = (s.wtIndex + 1) % uint32(len(s.High))
	s.sampleIndex++
	if s.sampleIndex >= uint32(s.SampleRate) {
		s.wallSecond++
		s.sampleIndex = 0
		s.recomputeBoundary()
	}
	return v
}

// Read fills p with consecutive little-endian float32 samples. It never
// returns an error; the stream is infinite until the caller stops pulling.
func (s *JJYStream) Read(p []byte) (int, error) {
	n := len(p) - len(p)%4
	for i := 0; i < n; i += 4 {
		bits := math.Float32bits(s.NextSample())
		binary.LittleEndian.PutUint32(p[i:i+4], bits)
	}
	return n, nil
}
