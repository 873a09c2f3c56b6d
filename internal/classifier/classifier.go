// Package classifier maps a second-of-minute to a boundary sample count,
// the single number the realtime callback needs to know when to switch
// between leading and trailing amplitude.
package classifier

import "github.com/ersatz-timecode/ersatz/internal/bdt"

// Kind tags how a given second-of-minute is encoded.
type Kind int

const (
	// Marker identifies frame-alignment seconds (0, 9, 19, ... 59, 60).
	Marker Kind = iota
	// ConstZero identifies protocol-fixed zero positions.
	ConstZero
	// Variable dispatches to a registered bit function.
	Variable
)

// BitFunc computes one named code bit from a broken-down time.
type BitFunc func(bdt.BrokenDownTime) bool

// Second describes how one second-of-minute (0-60) is classified.
type Second struct {
	Kind Kind
	Bit  BitFunc // only consulted when Kind == Variable
}

// Table is a static, tm_sec-indexed classification, one entry per
// second 0 through 60 inclusive.
type Table [61]Second

// Lengths holds the protocol-specific sample counts for each encoded
// element. Whether these represent a leading-high or leading-low
// portion of the second is a concern of the caller (JJY and WWVB invert
// the sense of "before boundary"), not of the classifier.
type Lengths struct {
	Marker uint32
	Zero   uint32
	One    uint32
}

// BoundarySamples returns the sample count at which amplitude flips
// within the second described by t.
// Seconds outside [0,60] are unreachable in practice (no leap-second
// support); they fall through to the zero-bit default per the core's
// error-handling design.
func BoundarySamples(table *Table, t bdt.BrokenDownTime, lengths Lengths) uint32 {
	if t.Second < 0 || t.Second > 60 {
		return lengths.Zero
	}
	entry := table[t.Second]
	switch entry.Kind {
	case Marker:
		return lengths.Marker
	case ConstZero:
		return lengths.Zero
	case Variable:
		if entry.Bit != nil && entry.Bit(t) {
			return lengths.One
		}
		return lengths.Zero
	default:
		return lengths.Zero
	}
}
