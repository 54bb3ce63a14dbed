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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/hardware"
)

// PerformanceError is the pattern for errors returned by the package.
const PerformanceError = "performance: %v"

// LeadTime is how long the emulation runs for before measurement begins. This
// allows the frame rate to settle down.
var LeadTime = 2 * time.Second

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the DMG for the specified
// duration. The onFrame function, if it is not nil, is called at the end of
// every frame. A profile is created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, dmg *hardware.DMG, onFrame func(frame int) error, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	startFrame := dmg.Frame()

	runner := func() error {
		// signals false when the lead time has elapsed and measurement should
		// start. signals true when the measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		lastFrame := dmg.Frame()

		return dmg.Run(func() (govern.State, error) {
			f := dmg.Frame()
			if f == lastFrame {
				return govern.Running, nil
			}
			lastFrame = f

			if onFrame != nil {
				if err := onFrame(f); err != nil {
					return govern.Ending, err
				}
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = f
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	numFrames := dmg.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
