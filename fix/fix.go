// package fix provides the fixed-point representations used by the
// trigonometry evaluators: a 20 bit unsigned angle measured in turns and an
// 18 bit signed result, plus raw conversions between integers and floats at
// an explicit binary scale.
package fix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float converts a fixed-point value with the given binary scale into a
// float: v / 2^scale. scale must be small enough that 1<<scale fits in an
// int64, so anything below 63 is fine.
func Float[T constraints.Float](v int64, scale int) T {
	return T(v) / T(int64(1)<<scale)
}

// FromFloat converts a float into a fixed-point value at the given binary
// scale, rounding by adding a half before truncating. There is no overflow
// checking; it's up to the caller to pick a scale such that the result fits
// whatever width it is headed for.
func FromFloat[T constraints.Float](f T, scale int) int64 {
	return int64(f*T(int64(1)<<scale) + 0.5)
}

// U020 is an unsigned fixed point number with 0 integer bits and 20
// fractional bits, representing an angle in [0, 1) as a fraction of one full
// turn. Bit 19 is the half-turn flag, bit 18 the quarter-turn flag, and the
// low 18 bits are the position within the quadrant.
type U020 uint32

const (
	// MaxU020 is the highest U020, one lsb short of a full turn.
	MaxU020 U020 = 1<<20 - 1
	// HalfTurn is half a revolution: 0.5.
	HalfTurn U020 = 1 << 19
	// QuarterTurn is a quarter revolution: 0.25.
	QuarterTurn U020 = 1 << 18
)

func (u U020) String() string {
	return fmt.Sprintf("%.6f", U020ToFloat[float64](u))
}

func U020ToFloat[T constraints.Float](u U020) T {
	var scale = 1.0 / T(1<<20)
	return T(u) * scale
}

// U020FromFloat converts a float into a U020. Angles are periodic, so rather
// than clamping it wraps modulo one turn; negative angles land where you
// would hope (-0.25 is the same angle as 0.75).
func U020FromFloat[T constraints.Float](f T) U020 {
	return U020(int64(math.Round(float64(f)*(1<<20)))) & MaxU020
}

// S117 is a signed (two's complement) 18 bit number with 1 integer bit and
// 17 fractional bits, capable of representing (roughly) the range -1 to 1.
type S117 int32

const (
	// MaxS117 is the highest positive S117: 0.9999924.
	MaxS117 S117 = 1<<17 - 1
	// MinS117 is the lowest negative S117: -1.
	MinS117 S117 = -(1 << 17)
)

func (s S117) String() string {
	return fmt.Sprintf("%.7f", S117ToFloat[float64](s))
}

func S117ToFloat[T constraints.Float](s S117) T {
	var scale = 1.0 / T(1<<17)
	return T(s) * scale
}

// S117FromFloat converts a float into an S117, clamping to the maximum or
// minimum values.
func S117FromFloat[T constraints.Float](f T) S117 {
	if f < S117ToFloat[T](MinS117) {
		return MinS117
	}
	if f > S117ToFloat[T](MaxS117) {
		return MaxS117
	}
	return S117(f * T(1<<17))
}
