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

package paths

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherdmg/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC)

	test.ExpectEquality(t, uniqueFilename("screenshot", "", n), "screenshot_20210304_050607")
	test.ExpectEquality(t, uniqueFilename("screenshot", "scenes/stripes.lua", n), "screenshot_stripes_20210304_050607")
	test.ExpectEquality(t, uniqueFilename("screenshot", " testcard ", n), "screenshot_testcard_20210304_050607")
}
