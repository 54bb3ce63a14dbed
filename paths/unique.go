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

// Package paths builds names for the files created by the program.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_scene_YYYYMMDD_HHMMSS
//
// Where scene is the name of the scene file without its directory or
// extension. If there is no scene name the returned string will be of the
// format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, scene string) string {
	return uniqueFilename(prepend, scene, time.Now())
}

func uniqueFilename(prepend string, scene string, n time.Time) string {
	timestamp := n.Format("20060102_150405")

	s := strings.TrimSpace(scene)
	s = strings.TrimSuffix(filepath.Base(s), filepath.Ext(s))
	if s == "." || s == string(filepath.Separator) {
		s = ""
	}

	if len(s) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, s, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
