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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestStep(t *testing.T) {
	dmg := hardware.NewDMG()

	test.ExpectEquality(t, dmg.StepClocks(lcd.CyclesPerScanline*lcd.VBlankScanline-1), 0)
	test.ExpectEquality(t, dmg.Frame(), 0)
	test.ExpectEquality(t, dmg.Step(), true)
	test.ExpectEquality(t, dmg.Frame(), 1)
	test.ExpectEquality(t, dmg.LCD.State(), lcd.VBlank)
	test.ExpectEquality(t, dmg.IRQ.Pending(interrupts.VBlank), true)

	dmg.StepScanline()
	test.ExpectEquality(t, dmg.LCD.Scanline(), 145)
	test.ExpectEquality(t, dmg.LCD.Cycle(), 0)

	dmg.StepFrame()
	test.ExpectEquality(t, dmg.Frame(), 2)
	test.ExpectEquality(t, dmg.Clock(), uint64(lcd.CyclesPerScanline*lcd.VBlankScanline+lcd.CyclesPerFrame))

	dmg.Reset()
	test.ExpectEquality(t, dmg.Frame(), 0)
	test.ExpectEquality(t, dmg.Clock(), uint64(0))
	test.ExpectEquality(t, dmg.LCD.Scanline(), 0)
	test.ExpectEquality(t, dmg.IRQ.Pending(interrupts.VBlank), false)
}

func TestRunForFrameCount(t *testing.T) {
	dmg := hardware.NewDMG()

	var frames []int
	err := dmg.RunForFrameCount(3, func(frame int) (govern.State, error) {
		frames = append(frames, frame)
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, frames[2], 3)
	test.ExpectEquality(t, dmg.IRQ.Count[interrupts.VBlank], 3)

	// nil continue check
	test.ExpectSuccess(t, dmg.RunForFrameCount(2, nil))
	test.ExpectEquality(t, dmg.Frame(), 5)

	// early end
	err = dmg.RunForFrameCount(10, func(frame int) (govern.State, error) {
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dmg.Frame(), 6)

	// errors from the continue check are returned
	errStop := errors.New("stop")
	err = dmg.RunForFrameCount(10, func(frame int) (govern.State, error) {
		return govern.Running, errStop
	})
	test.ExpectEquality(t, errors.Is(err, errStop), true)
	test.ExpectEquality(t, dmg.Frame(), 7)

	// paused is not supported
	err = dmg.RunForFrameCount(10, func(frame int) (govern.State, error) {
		return govern.Paused, nil
	})
	test.ExpectEquality(t, curated.Is(err, hardware.UnsupportedState), true)
}

func TestRun(t *testing.T) {
	dmg := hardware.NewDMG()

	var scanlines int
	err := dmg.Run(func() (govern.State, error) {
		scanlines++
		if scanlines == lcd.ScanlinesPerFrame {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dmg.Clock(), uint64(lcd.CyclesPerFrame))
	test.ExpectEquality(t, dmg.Frame(), 1)

	// paused does not advance the clock
	var checks int
	err = dmg.Run(func() (govern.State, error) {
		checks++
		if checks == 10 {
			return govern.Ending, nil
		}
		return govern.Paused, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dmg.Clock(), uint64(lcd.CyclesPerFrame+lcd.CyclesPerScanline))

	err = dmg.Run(func() (govern.State, error) {
		return govern.EmulatorStart, nil
	})
	test.ExpectEquality(t, curated.Is(err, hardware.UnsupportedState), true)
}

type capture struct {
	frames int
	pixel  uint32
}

func (c *capture) NewFrame(fb *lcd.Framebuffer) error {
	c.frames++
	c.pixel = fb[0][0]
	return nil
}

func TestRendererThroughMemory(t *testing.T) {
	dmg := hardware.NewDMG()

	c := &capture{}
	dmg.LCD.AddRenderer(c)

	// black tile in the top-left corner of the background
	for i := uint16(0); i < 16; i++ {
		test.ExpectSuccess(t, dmg.Mem.Write(0x8010+i, 0xff))
	}
	test.ExpectSuccess(t, dmg.Mem.Write(0x9800, 0x01))
	test.ExpectSuccess(t, dmg.Mem.Write(0xff47, 0xe4))

	test.ExpectSuccess(t, dmg.RunForFrameCount(1, nil))
	test.ExpectEquality(t, c.frames, 1)
	test.ExpectEquality(t, c.pixel, uint32(0x000000))

	test.ExpectSuccess(t, dmg.Mem.Write(0xff47, 0x00))
	test.ExpectSuccess(t, dmg.RunForFrameCount(1, nil))
	test.ExpectEquality(t, c.frames, 2)
	test.ExpectEquality(t, c.pixel, uint32(0xffffff))
}
