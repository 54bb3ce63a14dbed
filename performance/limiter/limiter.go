// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. The emulation itself runs as quickly as it can and it is up to the
// presentation layer to slow it down to a watchable speed.
//
// A new FPS can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPS(limiter.FramesPerSecond)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

// LimiterError is the pattern for errors returned by the package.
const LimiterError = "limiter: %v"

// FramesPerSecond is the refresh rate of the DMG screen.
var FramesPerSecond = clocks.FrameRate(lcd.CyclesPerFrame)

// FPS regulates how often a frame is presented. A ticker runs concurrently
// and the Wait() function blocks until the next tick.
type FPS struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPS is the preferred method of initialisation for the FPS type. The
// ticker must be stopped with Stop() when it is no longer needed.
func NewFPS(framesPerSecond float64) (*FPS, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(LimiterError, "frame rate must be positive")
	}

	lim := &FPS{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Duration(float64(time.Second) / framesPerSecond),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}

	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjusted)
			nt := time.Now()
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			// correct the next sleep by how far the last one overshot. a
			// long wait for the receiver resets the correction
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			if adjusted < 0 || adjusted > lim.secondsPerFrame {
				adjusted = lim.secondsPerFrame
			}
			t = time.Now()
		}
	}()

	return lim, nil
}

// Rate returns the requested frame rate.
func (lim *FPS) Rate() float64 {
	return lim.framesPerSecond
}

// Wait blocks until the next tick.
func (lim *FPS) Wait() {
	<-lim.tick
}

// Stop the ticker. Wait() must not be called after Stop().
func (lim *FPS) Stop() {
	close(lim.quit)
}
