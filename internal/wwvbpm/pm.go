// Package wwvbpm implements WWVB's phase-modulation (BPSK) channel, an
// independent per-second bit layered on top of the amplitude time code.
// It carries a Hamming-coded copy of the minute count, DST/leap-second
// status bits, and, once every half hour, a 127-bit PRBS synchronization
// sequence interleaved with a fixed timing word. Transliterated from
// ersatz-wwvb's wwvb_pm* functions.
package wwvbpm

import "github.com/ersatz-timecode/ersatz/internal/bdt"

// halfHourSeqBits is a 127-bit maximal-length PRBS sequence, packed into
// a uint64 pair (low word first, bit 0 = LSB of word 0), broadcast in the
// synchronization window of each half hour (minute%30 in [10,16]).
var halfHourSeqBits = [2]uint64{0x34bd771e648ab67f, 0xb5037c1610e8c4e5}

// fixedTimingWord is a 106-bit constant sequence broadcast in the middle
// of the same six-minute window, packed the same way.
var fixedTimingWord = [2]uint64{0x42a5cb431d9a6b8b, 0x0000009207fb6b47}

func accessBit(a [2]uint64, index int) bool {
	return (a[index/64]>>(uint(index)%64))&1 != 0
}

// minuteOfCentury counts minutes elapsed since the start of t's century,
// the value the error-corrected minute-count subframe (seconds 13-17)
// and plain minute-count subframe (seconds 18-46) both encode.
func minuteOfCentury(t bdt.BrokenDownTime) uint64 {
	const minutesPerDay = 1440
	firstYear := t.Year - t.Year%100
	var total uint64
	for y := firstYear; y < t.Year; y++ {
		if y%4 == 0 && (y%100 == 0) == (y%400 == 0) {
			total += 366 * minutesPerDay
		} else {
			total += 365 * minutesPerDay
		}
	}
	total += uint64(t.DayOfYear-1) * minutesPerDay
	total += uint64(t.Hour) * 60
	total += uint64(t.Minute)
	return total
}

// pmTimeBit reads bit i (0-25) of mins for second sec: second 18 reads
// the MSB (i=25), seconds 20-28, 30-38 and 40-46 count down from i=24 to
// i=0, and second 19 also reads i=0.
func pmTimeBit(sec int, mins uint64) bool {
	var i int
	switch {
	case sec >= 40:
		i = 46 - sec
	case sec >= 30:
		i = 45 - sec
	case sec >= 20:
		i = 44 - sec
	case sec == 19:
		i = 0
	default: // sec == 18
		i = 25
	}
	return mins&(1<<uint(i)) != 0
}

// pmECC computes one odd-parity Hamming check bit (seconds 13-17) over
// the 26 data bits of mins, following the reference's bit-position
// convention: check position p = 17-sec covers every data index i whose
// binary representation has bit p set.
func pmECC(sec int, mins uint64) bool {
	p := 17 - sec
	parity := true
	for i := 1; i < 26; i++ {
		if (1<<uint(p))&i == 0 {
			continue
		}
		var dataSec int
		switch {
		case i <= 6:
			dataSec = 46 - i
		case i <= 15:
			dataSec = 45 - i
		case i <= 24:
			dataSec = 44 - i
		default:
			dataSec = 18
		}
		parity = parity != pmTimeBit(dataSec, mins)
	}
	return parity
}

// halfHourSeq selects the 127-bit PRBS rotation in effect for t,
// perturbed near local midnight by whichever DST transition (if any)
// brackets the broadcast day.
func halfHourSeq(t bdt.BrokenDownTime, dstEOD, dstBOD bool) int {
	base := t.Hour*4 + t.Minute/17
	switch {
	case !dstEOD && !dstBOD:
		return base + 1
	case dstEOD && dstBOD:
		return base + 2
	case dstEOD && !dstBOD:
		switch {
		case t.Hour <= 3:
			return base + 1
		case t.Hour <= 10:
			return base + 81
		default:
			return base + 2
		}
	default: // !dstEOD && dstBOD
		switch {
		case t.Hour <= 3:
			return base + 2
		case t.Hour <= 10:
			return base + 82
		default:
			return base + 1
		}
	}
}

// sixMinuteFrame computes the PM bit during the synchronization window of
// each half hour (minute%30 in [10,16], i.e. minutes 10-16 and 40-46),
// addressed by frameSec, the second offset within that ten-minute decade:
// a 127-second PRBS leader, a 106-second fixed timing word, then the PRBS
// read in reverse order for the rest of the window.
func sixMinuteFrame(t bdt.BrokenDownTime, dstEOD, dstBOD bool) bool {
	frameSec := (t.Minute%10)*60 + t.Second
	switch {
	case frameSec < 127:
		seq := halfHourSeq(t, dstEOD, dstBOD)
		return accessBit(halfHourSeqBits, (seq-1+frameSec)%127)
	case frameSec < 233:
		return accessBit(fixedTimingWord, frameSec-127)
	default:
		seq := halfHourSeq(t, dstEOD, dstBOD)
		return accessBit(halfHourSeqBits, (seq+358-frameSec)%127)
	}
}

// Bit computes the phase-modulation bit broadcast during t's second. The
// station's DST-in-effect-at-end/start-of-day flags are read from
// t.DSTAtEndOfDay and t.DSTAtStartOfDay, which only a DST-zone
// decomposition (bdt.DecomposeWithDSTZone) populates.
func Bit(t bdt.BrokenDownTime) bool {
	if t.Minute%30 >= 10 && t.Minute%30 <= 16 {
		return sixMinuteFrame(t, t.DSTAtEndOfDay, t.DSTAtStartOfDay)
	}

	switch t.Second {
	case 0, 1, 5, 8, 10, 11, 12, 29, 39, 49, 59, 60:
		return false
	case 2, 3, 4, 6, 7, 9:
		return true
	case 13, 14, 15, 16, 17:
		return pmECC(t.Second, minuteOfCentury(t))
	case 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28,
		30, 31, 32, 33, 34, 35, 36, 37, 38, 40, 41, 42, 43, 44, 45, 46:
		return pmTimeBit(t.Second, minuteOfCentury(t))
	// Bits 47-52 (excluding 49, unused) encode DST transition status.
	// This implementation assumes no upcoming leap second.
	case 47, 50:
		return t.DSTAtEndOfDay != t.DSTAtStartOfDay
	case 48:
		return !(t.DSTAtEndOfDay || t.DSTAtStartOfDay)
	case 51:
		return t.DSTAtEndOfDay
	case 52:
		return t.DSTAtStartOfDay
	// Bits 53-58 announce the US DST rule in effect: second Sunday in
	// March through first Sunday in November. This implementation
	// assumes those rules remain in force indefinitely.
	case 53:
		return false
	case 54, 55:
		return true
	case 56:
		return false
	case 57, 58:
		return true
	default:
		return false
	}
}
