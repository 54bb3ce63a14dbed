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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestBadRate(t *testing.T) {
	_, err := limiter.NewFPS(0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, limiter.LimiterError), true)

	_, err = limiter.NewFPS(-1)
	test.ExpectFailure(t, err)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPS(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Rate(), 100.0)

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five frames at 100fps cannot be quicker than 50ms. allow for the
	// sleep granularity of the host
	test.ExpectEquality(t, time.Since(start) >= 40*time.Millisecond, true)
}
