package fix

// sat.go narrows wide intermediate results down to S117s. The polynomial
// evaluators accumulate in int64 with one bit of headroom above the 18 bit
// output, so narrowing has to saturate rather than wrap. There are two
// implementations: the top level function uses the obvious min/max form, the
// other mirrors the guard-bit comparison a hardware clamp would use. They
// agree everywhere a single guard bit can reach, see sat_test.go.

// SatS117 converts a wider intermediate value to an S117, saturating at the
// maximum or minimum if it overflows.
func SatS117(v int64) S117 {
	return satS117minmax(v)
}

func satS117minmax(v int64) S117 {
	return S117(min(max(v, int64(MinS117)), int64(MaxS117)))
}

// satS117guard detects overflow the way the hardware does: if the sign bit
// (bit 17) disagrees with the guard bit immediately above it (bit 18), the
// true result fell outside 18 bits, and the guard bit says which way. It
// assumes v was computed with a single bit of headroom; values further out
// are not its problem.
func satS117guard(v int64) S117 {
	high0 := v >> 18 & 1
	high1 := v >> 17 & 1
	if high0 != high1 {
		if high0 == 1 {
			return MinS117
		}
		return MaxS117
	}
	return S117(v)
}
