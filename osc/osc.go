// package osc provides oscillators built on the fixed-point evaluators. No
// wavetables: every sample comes straight from the polynomial, driven by a
// 20 bit phase accumulator that wraps naturally at one turn.
package osc

import (
	"github.com/rohan-apps/fxtrig"
	"github.com/rohan-apps/fxtrig/fix"
)

// Sine is a sine oscillator. Each sample advances the phase by a fixed
// fraction of a turn and evaluates fxtrig.Sine at the new position.
type Sine struct {
	phase fix.U020
	step  fix.U020
}

// NewSine returns a Sine that completes freq cycles per second at the given
// sample rate. Frequencies above samplerate/2 alias, like they would
// anywhere else.
func NewSine(samplerate, freq float32) *Sine {
	return &Sine{
		step: fix.U020FromFloat(freq / samplerate),
	}
}

// Next returns the next sample and advances the phase.
func (s *Sine) Next() fix.S117 {
	out := fxtrig.Sine(s.phase)
	s.phase = (s.phase + s.step) & fix.MaxU020
	return out
}

// Fill fills out with consecutive samples.
func (s *Sine) Fill(out []fix.S117) {
	for i := range out {
		out[i] = s.Next()
	}
}

// Quad is a quadrature oscillator: one phase accumulator, two outputs a
// quarter turn apart. Handy for mixers and anything else that wants matched
// sine/cosine pairs.
type Quad struct {
	phase fix.U020
	step  fix.U020
}

func NewQuad(samplerate, freq float32) *Quad {
	return &Quad{
		step: fix.U020FromFloat(freq / samplerate),
	}
}

// Next returns the next sine and cosine samples and advances the phase.
func (q *Quad) Next() (sin, cos fix.S117) {
	sin = fxtrig.Sine(q.phase)
	cos = fxtrig.Cosine(q.phase)
	q.phase = (q.phase + q.step) & fix.MaxU020
	return sin, cos
}
