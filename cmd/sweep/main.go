// sweep measures the worst-case error of the fixed-point evaluators against
// the standard library, over every one of the 2^20 possible angles.
package main

import (
	"flag"
	"log"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rohan-apps/fxtrig"
	"github.com/rohan-apps/fxtrig/fix"
)

var shardsFlag = flag.Int("shards", runtime.GOMAXPROCS(0), "number of shards to sweep in parallel")

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sweep: ")

	var (
		mu                 sync.Mutex
		worstSin, worstCos float64
		atSin, atCos       fix.U020
	)

	var g errgroup.Group
	n := *shardsFlag
	per := (int(fix.MaxU020) + n) / n
	for shard := 0; shard < n; shard++ {
		lo := fix.U020(shard * per)
		hi := min(lo+fix.U020(per), fix.MaxU020+1)
		g.Go(func() error {
			var ws, wc float64
			var as, ac fix.U020
			for v := lo; v < hi; v++ {
				angle := 2 * math.Pi * fix.U020ToFloat[float64](v)
				if e := math.Abs(fix.S117ToFloat[float64](fxtrig.Sine(v)) - math.Sin(angle)); e > ws {
					ws, as = e, v
				}
				if e := math.Abs(fix.S117ToFloat[float64](fxtrig.Cosine(v)) - math.Cos(angle)); e > wc {
					wc, ac = e, v
				}
			}
			mu.Lock()
			defer mu.Unlock()
			if ws > worstSin {
				worstSin, atSin = ws, as
			}
			if wc > worstCos {
				worstCos, atCos = wc, ac
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("swept %d angles in %d shards\n", int(fix.MaxU020)+1, n)
	p.Printf("worst sine error:   %.3e at %v\n", worstSin, atSin)
	p.Printf("worst cosine error: %.3e at %v\n", worstCos, atCos)
}
