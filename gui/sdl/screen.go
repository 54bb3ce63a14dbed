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

package sdl

import (
	"image"

	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/screenshot"
	"github.com/veandco/go-sdl2/sdl"
)

// number of bytes per pixel in the texture
const scrDepth = 4

type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the texture is updated from the pixels image once per frame
	texture *sdl.Texture
	pixels  *image.RGBA

	// the size of each DMG pixel on the physical screen
	pixelScale int32
}

func newScreen(scale int32) (*screen, error) {
	var err error

	scr := &screen{
		pixels: image.NewRGBA(image.Rect(0, 0, lcd.ScreenWidth, lcd.ScreenHeight)),
	}

	scr.window, err = sdl.CreateWindow("GopherDMG", int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		lcd.ScreenWidth, lcd.ScreenHeight, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		scr.destroy()
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.destroy()
		return nil, err
	}

	// the byte order of ABGR8888 on a little-endian machine is the same as
	// the byte order of image.RGBA
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING),
		lcd.ScreenWidth, lcd.ScreenHeight)
	if err != nil {
		scr.destroy()
		return nil, err
	}

	if err := scr.setScaling(scale); err != nil {
		scr.destroy()
		return nil, err
	}

	return scr, nil
}

// setScaling alters how big each pixel is on the physical screen. the window
// is resized and the texture is stretched to fill it.
func (scr *screen) setScaling(scale int32) error {
	if scale < 1 {
		scale = 1
	}
	scr.pixelScale = scale
	scr.window.SetSize(lcd.ScreenWidth*scale, lcd.ScreenHeight*scale)
	return scr.present()
}

// update the texture with the framebuffer and present it.
func (scr *screen) update(fb *lcd.Framebuffer) error {
	screenshot.Convert(scr.pixels, fb)
	return scr.present()
}

// present the current contents of the pixels image.
func (scr *screen) present() error {
	err := scr.texture.Update(nil, scr.pixels.Pix, lcd.ScreenWidth*scrDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// destroy whatever parts of the screen have been created. it is safe to call
// more than once.
func (scr *screen) destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
}
