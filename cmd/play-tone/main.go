// play-tone synthesizes a pure tone with the fixed-point sine evaluator and
// plays it through the default output device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohan-apps/fxtrig/io"
	"github.com/rohan-apps/fxtrig/osc"
)

var (
	freqFlag = flag.Float64("freq", 440, "tone frequency in Hz")
	durFlag  = flag.Duration("dur", 0, "how long to play for; 0 plays until interrupted")
	rateFlag = flag.Uint("rate", 44100, "sample rate in Hz")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("play-tone: ")

	ctx := interruptContext()
	if *durFlag > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *durFlag)
		defer cancel()
	}

	s := osc.NewSine(float32(*rateFlag), float32(*freqFlag))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return io.Play(ctx, s, uint32(*rateFlag))
	})
	g.Go(func() error {
		t0 := time.Now()
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				fmt.Println()
				return nil
			case <-t.C:
				fmt.Printf("\r%.1fs of %gHz", time.Since(t0).Seconds(), *freqFlag)
			}
		}
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
