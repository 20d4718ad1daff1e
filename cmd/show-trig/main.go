// show-trig shows the fixed-point representations of angles and their sines
// and cosines, mostly for debugging conversions and eyeballing the error.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rohan-apps/fxtrig"
	"github.com/rohan-apps/fxtrig/fix"
)

var bitsFlag = flag.Bool("bits", false, "interpret arguments as raw 20 bit integer angles rather than fractions of a turn")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fail("Need at least one angle.")
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	fmt.Fprintln(w, "angle\tbits\tsine\tcosine\tsin err\tcos err")
	for _, arg := range flag.Args() {
		v, err := parse(arg)
		if err != nil {
			fail(err.Error())
		}
		show(w, v)
	}
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parse(s string) (fix.U020, error) {
	if *bitsFlag {
		raw, err := strconv.ParseUint(s, 0, 20)
		if err != nil {
			return 0, err
		}
		return fix.U020(raw), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return fix.U020FromFloat(f), nil
}

func show(w io.Writer, v fix.U020) {
	var (
		sin, cos = fxtrig.Sine(v), fxtrig.Cosine(v)
		angle    = 2 * math.Pi * fix.U020ToFloat[float64](v)
		serr     = fix.S117ToFloat[float64](sin) - math.Sin(angle)
		cerr     = fix.S117ToFloat[float64](cos) - math.Cos(angle)
	)
	fmt.Fprintf(w, "%v\t%#07x\t%v\t%v\t%+.2e\t%+.2e\n", v, uint32(v), sin, cos, serr, cerr)
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help)
	os.Exit(1)
}

const help = `show-trig shows the fixed-point sine and cosine of angles,
alongside the error against the floating-point versions.
Usage:
	show-trig angle [angle...]

Where angle is a fraction of a full turn, like 0.25, or with -bits a raw
integer angle in Go syntax, like 0x40000.
`
