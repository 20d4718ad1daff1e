// package io does audio output, so the evaluators can be heard as well as
// tested.
package io

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/gen2brain/malgo"

	"github.com/rohan-apps/fxtrig/fix"
)

// Generator produces a block of samples. osc.Sine is one.
type Generator interface {
	Fill(out []fix.S117)
}

// Play opens the default output device and plays the generator on a single
// channel until the provided context is cancelled.
func Play(ctx context.Context, g Generator, samplerate uint32) error {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = 1
	cfg.SampleRate = samplerate

	buf := make([]fix.S117, 4096)
	recv := func(out, _ []byte, framecount uint32) {
		if framecount == 0 {
			return
		}
		if int(framecount) > len(buf) {
			buf = make([]fix.S117, framecount)
		}
		b := buf[:framecount]
		g.Fill(b)
		// Reformat to little-endian float32 for the device.
		o := out[:0]
		for _, s := range b {
			f := fix.S117ToFloat[float32](s)
			o = binary.LittleEndian.AppendUint32(o, math.Float32bits(f))
		}
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{
		Data: recv,
	})
	if err != nil {
		return err
	}
	defer device.Uninit()
	if err := device.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
