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

package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinel error patterns.
const (
	ScreenshotError = "screenshot: %v"
	NoFrame         = "screenshot: no frame to save"
	FileExists      = "screenshot: file (%s) already exists"
)

// Recorder keeps a copy of the most recent frame.
type Recorder struct {
	// scale of the saved image
	Scale int

	// caption the saved image with the frame number
	Caption bool

	last     *image.RGBA
	frameNum int
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(scale int) *Recorder {
	return &Recorder{
		Scale: scale,
	}
}

// NewFrame implements the lcd.FrameRenderer interface.
func (rec *Recorder) NewFrame(fb *lcd.Framebuffer) error {
	if rec.last == nil {
		rec.last = Image(fb)
	} else {
		Convert(rec.last, fb)
	}
	rec.frameNum++
	return nil
}

// FrameNum returns the number of frames seen by the recorder.
func (rec *Recorder) FrameNum() int {
	return rec.frameNum
}

// Image returns the most recent frame as it would be saved. Returns nil if
// no frame has been seen.
func (rec *Recorder) Image() *image.RGBA {
	if rec.last == nil {
		return nil
	}
	img := Scale(rec.last, rec.Scale)
	if rec.Caption {
		Caption(img, fmt.Sprintf("frame %d", rec.frameNum))
	}
	return img
}

// Write the most recent frame to the io.Writer in PNG format.
func (rec *Recorder) Write(w io.Writer) error {
	img := rec.Image()
	if img == nil {
		return curated.Errorf(NoFrame)
	}
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	return nil
}

// Save the most recent frame to a file. The frame number and the file
// extension are added to fileNameBase. An existing file is never
// overwritten.
//
// The name of the saved file is returned.
func (rec *Recorder) Save(fileNameBase string) (string, error) {
	if rec.last == nil {
		return "", curated.Errorf(NoFrame)
	}

	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, rec.frameNum)

	f, err := os.OpenFile(imageName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", curated.Errorf(FileExists, imageName)
		}
		return "", curated.Errorf(ScreenshotError, err)
	}

	err = rec.Write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(ScreenshotError, cerr)
	}
	if err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "screenshot", "saved %s", imageName)

	return imageName, nil
}

// WriteFile saves the framebuffer to the named file in PNG format, scaled by
// the integer amount. Unlike Recorder.Save() an existing file is replaced.
func WriteFile(path string, fb *lcd.Framebuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	return encodeAndClose(f, Scale(Image(fb), scale))
}

// encodeAndClose writes the image in PNG format and closes the writer. An
// error from Close() is returned if there is no encoding error.
func encodeAndClose(w io.WriteCloser, img image.Image) error {
	err := png.Encode(w, img)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	return nil
}
