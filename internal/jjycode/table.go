package jjycode

import "github.com/ersatz-timecode/ersatz/internal/classifier"

// Table is the JJY second-of-minute classification, built once at
// package init and shared read-only by every stream.
var Table classifier.Table

func init() {
	marker := classifier.Second{Kind: classifier.Marker}
	zero := classifier.Second{Kind: classifier.ConstZero}
	variable := func(fn classifier.BitFunc) classifier.Second {
		return classifier.Second{Kind: classifier.Variable, Bit: fn}
	}

	for _, s := range []int{0, 9, 19, 29, 39, 49, 59, 60} {
		Table[s] = marker
	}
	for _, s := range []int{4, 10, 11, 14, 20, 21, 24, 34, 35, 38, 40, 55, 56, 57, 58} {
		Table[s] = zero
	}

	Table[1] = variable(Bit01)
	Table[2] = variable(Bit02)
	Table[3] = variable(Bit03)
	Table[5] = variable(Bit05)
	Table[6] = variable(Bit06)
	Table[7] = variable(Bit07)
	Table[8] = variable(Bit08)
	Table[12] = variable(Bit12)
	Table[13] = variable(Bit13)
	Table[15] = variable(Bit15)
	Table[16] = variable(Bit16)
	Table[17] = variable(Bit17)
	Table[18] = variable(Bit18)
	Table[22] = variable(Bit22)
	Table[23] = variable(Bit23)
	Table[25] = variable(Bit25)
	Table[26] = variable(Bit26)
	Table[27] = variable(Bit27)
	Table[28] = variable(Bit28)
	Table[30] = variable(Bit30)
	Table[31] = variable(Bit31)
	Table[32] = variable(Bit32)
	Table[33] = variable(Bit33)
	Table[36] = variable(Bit36)
	Table[37] = variable(Bit37)
	Table[41] = variable(Bit41)
	Table[42] = variable(Bit42)
	Table[43] = variable(Bit43)
	Table[44] = variable(Bit44)
	Table[45] = variable(Bit45)
	Table[46] = variable(Bit46)
	Table[47] = variable(Bit47)
	Table[48] = variable(Bit48)
	Table[50] = variable(Bit50)
	Table[51] = variable(Bit51)
	Table[52] = variable(Bit52)
	Table[53] = variable(Bit53)
	Table[54] = variable(Bit54)
	// Every second 0-60 is covered by exactly one of the two loops or the
	// assignments above; there is no unlisted remainder to default.
}

// Lengths in samples at 48kHz: JJY is amplitude-high for the leading
// portion of the second and drops to a low-amplitude pilot afterward.
var Lengths = classifier.Lengths{
	Marker: 48000 / 5,     // 0.2s
	Zero:   48000 * 4 / 5, // 0.8s
	One:    48000 / 2,     // 0.5s
}
