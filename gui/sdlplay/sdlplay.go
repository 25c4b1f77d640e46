// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is a simple SDL implementation of the ppu.FrameTrigger
// interface, along with keyboard handling for the two joypads. It is the
// playmode front end.
//
// SDL is not goroutine safe so NewSdlPlay(), Service() and the emulation
// loop that triggers NewFrame() must all run on the main goroutine.
package sdlplay

import (
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/hardware/controllers"
	"github.com/sidegate/famicore/hardware/ppu"
	"github.com/sidegate/famicore/performance/limiter"
	"github.com/sidegate/famicore/video"
	"github.com/veandco/go-sdl2/sdl"
)

// bytes per pixel in the texture. RGBA
const pixelDepth = 4

// nominal NTSC refresh rate. the limiter doesn't need the fractional part
const framesPerSecond = 60

// SdlPlay is a simple SDL implementation of the ppu.FrameTrigger interface.
type SdlPlay struct {
	// the joypads serviced by keyboard events
	joypad1 *controllers.Joypad
	joypad2 *controllers.Joypad

	// limit screen updates to the console's frame rate
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. it is equal to HorizPixels * VisibleLines * pixelDepth
	pixels []byte

	// the amount of scaling applied to each pixel
	scale float32

	// set by Service() when the user has asked to quit
	quitRequested bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Attach
// the returned value to a PPU with AttachFrameTrigger().
func NewSdlPlay(joypad1 *controllers.Joypad, joypad2 *controllers.Joypad, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		joypad1: joypad1,
		joypad2: joypad2,
		scale:   scale,
		fpsCap:  true,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	w := int32(float32(ppu.HorizPixels) * scale)
	h := int32(float32(ppu.VisibleLines) * scale)

	scr.window, err = sdl.CreateWindow("Famicore",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.SetScale(scale, scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every NewFrame()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		ppu.HorizPixels, ppu.VisibleLines)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, ppu.HorizPixels*ppu.VisibleLines*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// SetFPSCap turns frame rate limiting on or off. With the cap off the
// emulation runs as fast as the host allows.
func (scr *SdlPlay) SetFPSCap(limit bool) {
	scr.fpsCap = limit
}

// Destroy releases all SDL resources.
func (scr *SdlPlay) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// NewFrame implements the ppu.FrameTrigger interface. The framebuffer of
// colour indices is converted through the NTSC palette and presented.
func (scr *SdlPlay) NewFrame(fb *ppu.Framebuffer) error {
	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	i := 0
	for _, idx := range fb.Pixels() {
		col := video.Colour(idx)
		scr.pixels[i] = col.R
		scr.pixels[i+1] = col.G
		scr.pixels[i+2] = col.B
		i += pixelDepth
	}

	err := scr.texture.Update(nil, scr.pixels, ppu.HorizPixels*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}
