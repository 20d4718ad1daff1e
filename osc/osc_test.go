package osc

import (
	"testing"

	"github.com/rohan-apps/fxtrig/fix"
)

func TestSineStep(t *testing.T) {
	for _, c := range []struct {
		samplerate, freq float32
		step             fix.U020
	}{
		{44100, 44100, 0}, // a full turn per sample wraps to nothing
		{44100, 11025, fix.QuarterTurn},
		{44100, 22050, fix.HalfTurn},
		{1 << 20, 1, 1},
	} {
		s := NewSine(c.samplerate, c.freq)
		if s.step != c.step {
			t.Errorf("NewSine(%f, %f): step = %v, want: %v",
				c.samplerate, c.freq, s.step, c.step)
		}
	}
}

func TestSineFill(t *testing.T) {
	// A quarter turn per sample visits the four exact points in order.
	s := NewSine(4, 1)
	out := make([]fix.S117, 8)
	s.Fill(out)
	want := []fix.S117{0, fix.MaxS117, 0, fix.MinS117, 0, fix.MaxS117, 0, fix.MinS117}
	for i := range out {
		if out[i] != want[i] {
			t.Errorf("sample %d: %s, want: %s", i, out[i], want[i])
		}
	}
}

func TestQuad(t *testing.T) {
	q := NewQuad(4, 1)
	wantSin := []fix.S117{0, fix.MaxS117, 0, fix.MinS117}
	wantCos := []fix.S117{fix.MaxS117, 0, fix.MinS117, 0}
	for i := 0; i < 4; i++ {
		sin, cos := q.Next()
		if sin != wantSin[i] || cos != wantCos[i] {
			t.Errorf("sample %d: %s, %s, want: %s, %s",
				i, sin, cos, wantSin[i], wantCos[i])
		}
	}
}
