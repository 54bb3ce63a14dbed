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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/performance"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectEquality(t, curated.Is(err, performance.PerformanceError), true)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(5973, 100)
	test.ExpectEquality(t, fps, 59.73)
	test.ExpectEquality(t, accuracy > 99.9 && accuracy < 100.1, true)

	fps, accuracy = performance.CalcFPS(100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	performance.LeadTime = 0

	dmg := hardware.NewDMG()
	w := &strings.Builder{}

	var frames int
	onFrame := func(frame int) error {
		frames++
		return nil
	}

	start := time.Now()
	err := performance.Check(w, performance.ProfileNone, dmg, onFrame, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, time.Since(start) >= 50*time.Millisecond, true)
	test.ExpectEquality(t, frames > 0, true)
	test.ExpectEquality(t, frames, dmg.Frame())
	test.ExpectEquality(t, strings.Contains(w.String(), "fps"), true)

	err = performance.Check(w, performance.ProfileNone, dmg, nil, "five seconds")
	test.ExpectEquality(t, curated.Is(err, performance.PerformanceError), true)
}
