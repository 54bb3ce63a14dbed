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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectEquality(t, curated.Is(e, testPattern), true)
	test.ExpectEquality(t, curated.IsAny(e), true)

	// plain errors are never curated
	p := fmt.Errorf("plain error")
	test.ExpectEquality(t, curated.IsAny(p), false)
	test.ExpectEquality(t, curated.Is(p, testPattern), false)
	test.ExpectEquality(t, curated.IsAny(nil), false)
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)

	test.ExpectEquality(t, curated.Is(f, testPattern), false)
	test.ExpectEquality(t, curated.Has(f, testPattern), true)
	test.ExpectEquality(t, curated.Has(f, wrapPattern), true)
	test.ExpectEquality(t, curated.Has(f, "not present"), false)
	test.ExpectEquality(t, f.Error(), "wrapped: test error: foo")
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("lcd: %v", curated.Errorf("lcd: %v", "bad address"))
	test.ExpectEquality(t, e.Error(), "lcd: bad address")

	e = curated.Errorf("dmg: %v", curated.Errorf("dmg: %v", curated.Errorf("dmg: %v", "x")))
	test.ExpectEquality(t, e.Error(), "dmg: x")
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf(wrapPattern, sentinel)
	test.ExpectEquality(t, errors.Is(e, sentinel), true)
}
