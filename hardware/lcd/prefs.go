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

package lcd

// Preferences change how closely the LCD follows the hardware in areas where
// most software doesn't care.
type Preferences struct {
	// log accesses to memory that the LCD is currently using. the log entry
	// is made whether or not the access is blocked
	ContentionLogging bool

	// block access to memory that the LCD is currently using. a blocked read
	// returns 0xff and a blocked write is dropped
	BlockContention bool
}

// AllowLogging implements the logger.Permission interface. Only contention
// entries are subject to this permission.
func (lcd *LCD) AllowLogging() bool {
	return lcd.Prefs.ContentionLogging
}
