package fxtrig

import (
	"math"
	"testing"

	"github.com/rohan-apps/fxtrig/fix"
)

func TestReduce(t *testing.T) {
	for _, c := range []struct {
		in            fix.U020
		x             uint64
		quarter, half bool
	}{
		{0, 0, false, false},
		{1, 1, false, false},
		{fix.QuarterTurn - 1, 1<<18 - 1, false, false},
		{fix.QuarterTurn, 0, true, false},
		{fix.QuarterTurn + 1, 1<<18 - 1, true, false},
		{fix.HalfTurn, 0, false, true},
		{fix.HalfTurn + fix.QuarterTurn, 0, true, true},
		{fix.MaxU020, 1, true, true},
	} {
		x, quarter, half := reduce(c.in)
		if x != c.x || quarter != c.quarter || half != c.half {
			t.Errorf("reduce(%v) = %d, %t, %t, want: %d, %t, %t",
				c.in, x, quarter, half, c.x, c.quarter, c.half)
		}
	}
}

func TestExactPoints(t *testing.T) {
	for _, c := range []struct {
		in       fix.U020
		sin, cos fix.S117
	}{
		// The quarter turn saturates to MaxS117 rather than hitting
		// one exactly: 2^17 doesn't fit in 18 signed bits. The
		// negative peaks do fit, so they are exact.
		{0, 0, fix.MaxS117},
		{fix.QuarterTurn, fix.MaxS117, 0},
		{fix.HalfTurn, 0, fix.MinS117},
		{3 * fix.QuarterTurn, fix.MinS117, 0},
	} {
		if got := Sine(c.in); got != c.sin {
			t.Errorf("Sine(%v) = %s, want: %s", c.in, got, c.sin)
		}
		if got := Cosine(c.in); got != c.cos {
			t.Errorf("Cosine(%v) = %s, want: %s", c.in, got, c.cos)
		}
	}
}

// TestAccuracy sweeps the whole input domain against the float versions.
// The polynomial is good to about 1.4e-5 at its worst, so 1e-4 leaves some
// slack without letting a broken constant sneak past.
func TestAccuracy(t *testing.T) {
	const tolerance = 1e-4
	for v := fix.U020(0); v <= fix.MaxU020; v++ {
		angle := 2 * math.Pi * fix.U020ToFloat[float64](v)
		s, c := Sine(v), Cosine(v)
		if s < fix.MinS117 || s > fix.MaxS117 || c < fix.MinS117 || c > fix.MaxS117 {
			t.Fatalf("%v: out of range: Sine: %s, Cosine: %s", v, s, c)
		}
		if e := math.Abs(fix.S117ToFloat[float64](s) - math.Sin(angle)); e > tolerance {
			t.Fatalf("Sine(%v) = %s: error %g", v, s, e)
		}
		if e := math.Abs(fix.S117ToFloat[float64](c) - math.Cos(angle)); e > tolerance {
			t.Fatalf("Cosine(%v) = %s: error %g", v, c, e)
		}
	}
}

// TestReflection checks the fold is exact: sin(1/2 - x) = sin(x) and
// cos(1 - x) = cos(x), with no rounding slop at all.
func TestReflection(t *testing.T) {
	for v := fix.U020(0); v < fix.QuarterTurn; v++ {
		if a, b := Sine(v), Sine((fix.HalfTurn-v)&fix.MaxU020); a != b {
			t.Fatalf("Sine(%v) = %s, reflected: %s", v, a, b)
		}
		if a, b := Cosine(v), Cosine((1<<20-v)&fix.MaxU020); a != b {
			t.Fatalf("Cosine(%v) = %s, reflected: %s", v, a, b)
		}
	}
}

// TestNegation checks the half-turn sign flip. It can't demand exact
// negation: the positive peak clamps to MaxS117 while the negative peak
// reaches -2^17, so at those points the pair sums to -1 instead of 0.
func TestNegation(t *testing.T) {
	for v := fix.U020(0); v <= fix.MaxU020; v++ {
		opposite := (v + fix.HalfTurn) & fix.MaxU020
		if sum := Sine(v) + Sine(opposite); sum != 0 && sum != -1 {
			t.Fatalf("Sine(%v) + Sine(%v) = %d", v, opposite, sum)
		}
		if sum := Cosine(v) + Cosine(opposite); sum != 0 && sum != -1 {
			t.Fatalf("Cosine(%v) + Cosine(%v) = %d", v, opposite, sum)
		}
	}
}

// TestMasking: bits above 19 are not part of the angle and must be ignored.
func TestMasking(t *testing.T) {
	for _, v := range []fix.U020{0, 1, 12345, fix.QuarterTurn, fix.HalfTurn, fix.MaxU020} {
		junk := v | 0xfff << 20
		if a, b := Sine(v), Sine(junk); a != b {
			t.Errorf("Sine(%#x) = %s, Sine(%#x) = %s", v, a, junk, b)
		}
		if a, b := Cosine(v), Cosine(junk); a != b {
			t.Errorf("Cosine(%#x) = %s, Cosine(%#x) = %s", v, a, junk, b)
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, v := range []fix.U020{0, 7, 99999, fix.QuarterTurn, fix.MaxU020} {
		s, c := Sine(v), Cosine(v)
		for i := 0; i < 3; i++ {
			if got := Sine(v); got != s {
				t.Errorf("Sine(%v) changed its mind: %s then %s", v, s, got)
			}
			if got := Cosine(v); got != c {
				t.Errorf("Cosine(%v) changed its mind: %s then %s", v, c, got)
			}
		}
	}
}
