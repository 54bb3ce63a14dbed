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

package hardware

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
)

// UnsupportedState is returned by Run() when the continue-check returns a
// state that the function cannot handle.
const UnsupportedState = "dmg: unsupported emulation state (%s) in %s function"

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every scanline. A nil function means that
// the emulation will run forever.
//
// When continueCheck() returns the Paused state the emulation does not
// advance. The continueCheck() function will probably want to block or sleep
// in that case.
func (dmg *DMG) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running, govern.Stepping:
			dmg.StepScanline()
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state, "Run()")
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. The continueCheck function is called at the end of every frame with
// the number of frames completed since the last reset.
func (dmg *DMG) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := dmg.frame + numFrames

	var err error

	state := govern.Running
	for dmg.frame < targetFrame && state != govern.Ending {
		if !state.Active() {
			return curated.Errorf(UnsupportedState, state, "RunForFrameCount()")
		}

		dmg.StepFrame()

		state, err = continueCheck(dmg.frame)
		if err != nil {
			return err
		}
	}

	return nil
}
