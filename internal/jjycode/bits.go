// Package jjycode implements the JJY time-code bit functions: pure
// functions of a broken-down time, named by their 1-based
// second-within-minute position, transliterated from ersatz-jjy's
// jjy_b* functions.
package jjycode

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

func Bit36(t bdt.BrokenDownTime) bool {
	parity := false
	parity = parity != Bit12(t)
	parity = parity != Bit13(t)
	parity = parity != Bit15(t)
	parity = parity != Bit16(t)
	parity = parity != Bit17(t)
	parity = parity != Bit18(t)
	return parity
}

func Bit37(t bdt.BrokenDownTime) bool {
	parity := false
	parity = parity != Bit01(t)
	parity = parity != Bit02(t)
	parity = parity != Bit03(t)
	parity = parity != Bit05(t)
	parity = parity != Bit06(t)
	parity = parity != Bit07(t)
	parity = parity != Bit08(t)
	return parity
}

func Bit41(t bdt.BrokenDownTime) bool { return t.YearOfCentury >= 80 }
func Bit42(t bdt.BrokenDownTime) bool { return t.YearOfCentury%80 >= 40 }
func Bit43(t bdt.BrokenDownTime) bool { return t.YearOfCentury%40 >= 20 }
func Bit44(t bdt.BrokenDownTime) bool { return t.YearOfCentury%20 >= 10 }
func Bit45(t bdt.BrokenDownTime) bool { return t.YearOfCentury%10 >= 8 }
func Bit46(t bdt.BrokenDownTime) bool { return (t.YearOfCentury%10)%8 >= 4 }
func Bit47(t bdt.BrokenDownTime) bool { return (t.YearOfCentury%10)%4 >= 2 }
func Bit48(t bdt.BrokenDownTime) bool { return t.YearOfCentury%2 > 0 }

func Bit50(t bdt.BrokenDownTime) bool { return t.Weekday >= 4 }
func Bit51(t bdt.BrokenDownTime) bool { return t.Weekday%4 >= 2 }
func Bit52(t bdt.BrokenDownTime) bool { return t.Weekday%2 > 0 }

// Bit53 and Bit54 would encode leap-second status; the upstream project
// never implemented this (see its TODO), so both are permanently false.
func Bit53(bdt.BrokenDownTime) bool { return false }
func Bit54(bdt.BrokenDownTime) bool { return false }
