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

// Package logger is the central log for the emulation. Entries are tagged and
// adjacent entries with the same tag and detail are collapsed into a single
// entry with a repeat count. Chips logging every clock cycle would otherwise
// flood the log.
//
// Logging requests are gated by a Permission. Use the Allow value to log
// unconditionally. Other types can implement the Permission interface to
// decide for themselves, based on their own preferences for example.
//
// The package level functions operate on a single central log. Separate
// instances can be created with NewLogger(), which is mostly useful for
// testing.
package logger
