// Package wwvbcode implements the WWVB amplitude time-code bit functions,
// transliterated from ersatz-wwvb's wwvb_b* functions. All fields read
// from the UTC decomposition except bits 57/58, which additionally need
// the station's local offset to determine an upcoming DST transition.
package wwvbcode

import "github.com/ersatz-timecode/ersatz/internal/bdt"

func Bit01(t bdt.BrokenDownTime) bool { return t.Minute >= 40 }
func Bit02(t bdt.BrokenDownTime) bool { return t.Minute%40 >= 20 }
func Bit03(t bdt.BrokenDownTime) bool { return t.Minute%20 >= 10 }
func Bit05(t bdt.BrokenDownTime) bool { return t.Minute%10 >= 8 }
func Bit06(t bdt.BrokenDownTime) bool { return (t.Minute%10)%8 >= 4 }
func Bit07(t bdt.BrokenDownTime) bool { return (t.Minute%10)%4 >= 2 }
func Bit08(t bdt.BrokenDownTime) bool { return t.Minute%2 > 0 }

func Bit12(t bdt.BrokenDownTime) bool { return t.Hour >= 20 }
func Bit13(t bdt.BrokenDownTime) bool { return t.Hour%20 >= 10 }
func Bit15(t bdt.BrokenDownTime) bool { return t.Hour%10 >= 8 }
func Bit16(t bdt.BrokenDownTime) bool { return (t.Hour%10)%8 >= 4 }
func Bit17(t bdt.BrokenDownTime) bool { return (t.Hour%10)%4 >= 2 }
func Bit18(t bdt.BrokenDownTime) bool { return t.Hour%2 > 0 }

func Bit22(t bdt.BrokenDownTime) bool { return t.DayOfYear >= 200 }
func Bit23(t bdt.BrokenDownTime) bool { return t.DayOfYear%200 >= 100 }
func Bit25(t bdt.BrokenDownTime) bool { return t.DayOfYear%100 >= 80 }
func Bit26(t bdt.BrokenDownTime) bool { return (t.DayOfYear%100)%80 >= 40 }
func Bit27(t bdt.BrokenDownTime) bool { return (t.DayOfYear%100)%40 >= 20 }
func Bit28(t bdt.BrokenDownTime) bool { return t.DayOfYear%20 >= 10 }
func Bit30(t bdt.BrokenDownTime) bool { return t.DayOfYear%10 >= 8 }
func Bit31(t bdt.BrokenDownTime) bool { return (t.DayOfYear%10)%8 >= 4 }
func Bit32(t bdt.BrokenDownTime) bool { return (t.DayOfYear%10)%4 >= 2 }
func Bit33(t bdt.BrokenDownTime) bool { return t.DayOfYear%2 > 0 }

// Bits 36-38 and 40-43 carry DUT1. No standard Go time source reports
// DUT1, so it is fixed at +0.0s: sign positive, magnitude zero.
func Bit36(bdt.BrokenDownTime) bool { return true }
func Bit37(bdt.BrokenDownTime) bool { return false }
func Bit38(bdt.BrokenDownTime) bool { return true }
func Bit40(bdt.BrokenDownTime) bool { return false }
func Bit41(bdt.BrokenDownTime) bool { return false }
func Bit42(bdt.BrokenDownTime) bool { return false }
func Bit43(bdt.BrokenDownTime) bool { return false }

func Bit45(t bdt.BrokenDownTime) bool { return t.YearOfCentury >= 80 }
func Bit46(t bdt.BrokenDownTime) bool { return (t.YearOfCentury)%80 >= 40 }
func Bit47(t bdt.BrokenDownTime) bool { return (t.YearOfCentury)%40 >= 20 }
func Bit48(t bdt.BrokenDownTime) bool { return t.YearOfCentury%20 >= 10 }
func Bit50(t bdt.BrokenDownTime) bool { return t.YearOfCentury%10 >= 8 }
func Bit51(t bdt.BrokenDownTime) bool { return (t.YearOfCentury%10)%8 >= 4 }
func Bit52(t bdt.BrokenDownTime) bool { return (t.YearOfCentury%10)%4 >= 2 }
func Bit53(t bdt.BrokenDownTime) bool { return t.YearOfCentury%2 > 0 }

func Bit55(t bdt.BrokenDownTime) bool {
	year := t.Year
	return year%4 == 0 && (year%100 == 0) == (year%400 == 0)
}

// Bit56 should flag an upcoming positive leap second at month end; the
// host clock carries no such table, so it is permanently false.
func Bit56(bdt.BrokenDownTime) bool { return false }

// Bit57 and Bit58 flag whether DST is in effect at, respectively, the end
// and the start of the UTC calendar day containing the broadcast second,
// as observed in the station's reference zone. bdt.DecomposeWithDSTZone
// populates these two fields; plain Decompose leaves them false.
func Bit57(t bdt.BrokenDownTime) bool { return t.DSTAtEndOfDay }
func Bit58(t bdt.BrokenDownTime) bool { return t.DSTAtStartOfDay }
