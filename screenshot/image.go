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
	"image"
	"image/color"

	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image converts the framebuffer to an RGBA image of the same size.
func Image(fb *lcd.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, lcd.ScreenWidth, lcd.ScreenHeight))
	Convert(img, fb)
	return img
}

// Convert the framebuffer into an existing image. The image must be at least
// as big as the screen.
func Convert(img *image.RGBA, fb *lcd.Framebuffer) {
	for y := range fb {
		p := img.Pix[y*img.Stride:]
		for x, c := range fb[y] {
			p[x*4] = uint8(c >> 16)
			p[x*4+1] = uint8(c >> 8)
			p[x*4+2] = uint8(c)
			p[x*4+3] = 0xff
		}
	}
}

// Scale returns a copy of the image, scaled by the integer amount. Scale
// values of less than one are treated as one.
func Scale(img image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// the caption is drawn in the darkest shade on a strip of the lightest shade
var (
	captionInk   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	captionPaper = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Caption draws the text in a strip along the bottom of the image. Text
// that is too long for the image is clipped.
func Caption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	b := img.Bounds()

	strip := image.Rect(b.Min.X, b.Max.Y-face.Height-2, b.Max.X, b.Max.Y)
	draw.Draw(img, strip, image.NewUniform(captionPaper), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionInk),
		Face: face,
		Dot:  fixed.P(b.Min.X+2, b.Max.Y-face.Descent-1),
	}
	d.DrawString(text)
}
