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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sidegate/famicore/hardware/controllers"
)

// keyboard mapping for the first joypad
var joypad1Keys = map[sdl.Keycode]controllers.Button{
	sdl.K_z:      controllers.ButtonA,
	sdl.K_x:      controllers.ButtonB,
	sdl.K_RSHIFT: controllers.ButtonSelect,
	sdl.K_RETURN: controllers.ButtonStart,
	sdl.K_UP:     controllers.ButtonUp,
	sdl.K_DOWN:   controllers.ButtonDown,
	sdl.K_LEFT:   controllers.ButtonLeft,
	sdl.K_RIGHT:  controllers.ButtonRight,
}

// keyboard mapping for the second joypad
var joypad2Keys = map[sdl.Keycode]controllers.Button{
	sdl.K_q: controllers.ButtonA,
	sdl.K_w: controllers.ButtonB,
	sdl.K_e: controllers.ButtonSelect,
	sdl.K_r: controllers.ButtonStart,
	sdl.K_i: controllers.ButtonUp,
	sdl.K_k: controllers.ButtonDown,
	sdl.K_j: controllers.ButtonLeft,
	sdl.K_l: controllers.ButtonRight,
}

// Service drains the SDL event queue, updating joypad state as it goes.
//
// MUST ONLY be called from the main goroutine. Calling it once per frame
// from the emulation's continueCheck function is sufficient.
func (scr *SdlPlay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quitRequested = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			down := ev.Type == sdl.KEYDOWN

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				if down {
					scr.quitRequested = true
				}
				continue
			}

			if button, ok := joypad1Keys[ev.Keysym.Sym]; ok {
				scr.joypad1.Set(button, down)
			}
			if button, ok := joypad2Keys[ev.Keysym.Sym]; ok {
				scr.joypad2.Set(button, down)
			}
		}
	}
}

// QuitRequested returns true once the user has closed the window or pressed
// the escape key.
func (scr *SdlPlay) QuitRequested() bool {
	return scr.quitRequested
}
