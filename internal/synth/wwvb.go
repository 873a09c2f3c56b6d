package synth

import (
	"encoding/binary"
	"time"

	"github.com/ersatz-timecode/ersatz/internal/bdt"
	"github.com/ersatz-timecode/ersatz/internal/classifier"
	"github.com/ersatz-timecode/ersatz/internal/wwvbcode"
	"github.com/ersatz-timecode/ersatz/internal/wwvbpm"
)

// WWVBStream is a continuous int16 PCM source implementing io.Reader. It
// layers the BPSK phase channel on top of the AM time code by jumping its
// wavetable read index by half a table length at the 100ms mark of every
// second, per wwvbpm.Bit.
type WWVBStream struct {
	High, Low  []int16
	SampleRate int
	UTCLoc     *time.Location // always time.UTC in production; parameterized for tests
	DSTLoc     *time.Location // station's DST-announcement reference zone

	wallSecond  int64
	sampleIndex uint32
	wtIndex     uint32
	lowSamples  uint32
}

// NewWWVBStream seeds the stream at startAt with the table/sample-rate
// pair produced by wavetable.PopulateInt16.
func NewWWVBStream(high, low []int16, sampleRate int, dstLoc *time.Location, startAt int64, startSampleIndex uint32) *WWVBStream {
	s := &WWVBStream{
		High:        high,
		Low:         low,
		SampleRate:  sampleRate,
		UTCLoc:      time.UTC,
		DSTLoc:      dstLoc,
		wallSecond:  startAt,
		sampleIndex: startSampleIndex,
		wtIndex:     startSampleIndex % uint32(len(high)),
	}
	s.recomputeBoundary()
	return s
}

func (s *WWVBStream) currentBDT() bdt.BrokenDownTime {
	return bdt.DecomposeWithDSTZone(s.wallSecond, s.UTCLoc, s.DSTLoc)
}

func (s *WWVBStream) recomputeBoundary() {
	s.lowSamples = classifier.BoundarySamples(&wwvbcode.Table, s.currentBDT(), wwvbcode.Lengths)
}

// NextSample advances the stream by exactly one frame and returns it.
func (s *WWVBStream) NextSample() int16 {
	if s.sampleIndex == uint32(s.SampleRate)/10 {
		if wwvbpm.Bit(s.currentBDT()) {
			s.wtIndex = uint32(len(s.High) / 2)
		} else {
			s.wtIndex = 0
		}
	}

	var v int16
	if s.sampleIndex < s.lowSamples {
		v = s.Low[s.wtIndex]
	} else {
		v = s.High[s.wtIndex]
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

// Read fills p with consecutive little-endian int16 samples.
func (s *WWVBStream) Read(p []byte) (int, error) {
	n := len(p) - len(p)%2
	for i := 0; i < n; i += 2 {
		binary.LittleEndian.PutUint16(p[i:i+2], uint16(s.NextSample()))
	}
	return n, nil
}
