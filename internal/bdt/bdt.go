// Package bdt decomposes a scalar wall-clock second count into the
// broken-down time fields the JJY and WWVB bit codecs operate on.
package bdt

import "time"

// BrokenDownTime is the Gregorian decomposition used by the bit codecs.
// It is re-derived every second from the current WallSecond; nothing
// holds a reference to it across second boundaries.
type BrokenDownTime struct {
	Year          int // full year, e.g. 2025
	YearOfCentury int // 0-99
	DayOfYear     int // 1-366
	Hour          int // 0-23
	Minute        int // 0-59
	Second        int // 0-60; 60 is unreachable, no leap second support
	Weekday       int // 0=Sunday .. 6=Saturday
	DST           bool

	// DSTAtEndOfDay and DSTAtStartOfDay report whether a reference
	// location (distinct from loc, e.g. the WWVB station's own local
	// zone) observes DST at 23:59:59 and 00:00:00 respectively of the
	// UTC calendar day containing this instant. They are only populated
	// by DecomposeWithDSTZone; Decompose leaves them false.
	DSTAtEndOfDay   bool
	DSTAtStartOfDay bool
}

// Decompose reads wall-clock second s in loc and produces its broken-down
// representation. loc should be time.UTC for WWVB's primary decomposition,
// or the caller's chosen local/JST zone for JJY.
func Decompose(s int64, loc *time.Location) BrokenDownTime {
	t := time.Unix(s, 0).In(loc)
	return BrokenDownTime{
		Year:          t.Year(),
		YearOfCentury: t.Year() % 100,
		DayOfYear:     t.YearDay(),
		Hour:          t.Hour(),
		Minute:        t.Minute(),
		Second:        t.Second(),
		Weekday:       int(t.Weekday()),
		DST:           isDST(t),
	}
}

// DecomposeWithDSTZone is Decompose plus the end-of-day/start-of-day DST
// flags that WWVB bits 57/58 report for dstZone, the station's reference
// time zone for DST announcements (independent of loc, which governs the
// rest of the decomposition).
func DecomposeWithDSTZone(s int64, loc, dstZone *time.Location) BrokenDownTime {
	b := Decompose(s, loc)
	b.DSTAtEndOfDay = DSTAtBoundary(s, dstZone, 23, 59, 59)
	b.DSTAtStartOfDay = DSTAtBoundary(s, dstZone, 0, 0, 0)
	return b
}

// isDST reports whether t falls in daylight-saving time in its own
// location, by comparing its UTC offset against the standard-time offset
// for that location (the smaller of the January and July offsets, which
// covers both hemispheres). time.Time carries no IsDST method, so this
// is the usual Go idiom for deriving one.
func isDST(t time.Time) bool {
	loc := t.Location()
	jan := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	jul := time.Date(t.Year(), time.July, 1, 0, 0, 0, 0, loc)
	_, janOffset := jan.Zone()
	_, julOffset := jul.Zone()
	std := janOffset
	if julOffset < std {
		std = julOffset
	}
	_, offset := t.Zone()
	return offset != std
}

// DSTAtBoundary reports the DST flag in loc at hh:mm:ss of the UTC
// calendar date containing wall-clock second s, after reprojecting that
// boundary through loc's offset at s. This mirrors the two-step
// construction WWVB bits 57/58 use in the reference implementation:
// build the boundary instant from the UTC date, shift it by the local
// offset, then read DST off the shifted instant.
func DSTAtBoundary(s int64, loc *time.Location, hh, mm, ss int) bool {
	utcDate := time.Unix(s, 0).UTC()
	_, offset := time.Unix(s, 0).In(loc).Zone()
	boundary := time.Date(utcDate.Year(), utcDate.Month(), utcDate.Day(), hh, mm, ss, 0, loc)
	shifted := time.Unix(boundary.Unix()+int64(offset), 0).In(loc)
	return isDST(shifted)
}
