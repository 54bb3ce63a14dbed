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

// Package screenshot converts the LCD framebuffer into an image and saves it
// to disk as a PNG file.
//
// The Recorder type implements the lcd.FrameRenderer interface and keeps a
// copy of the most recent frame. Images can be scaled up (with nearest
// neighbour sampling so that the pixels stay sharp) and can be given a
// caption.
package screenshot
