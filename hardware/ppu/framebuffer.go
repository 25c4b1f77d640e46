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

package ppu

// Dimensions of the visible picture.
const (
	HorizPixels    = 256
	VisibleLines   = 240
	LinesPerFrame  = 262
	DotsPerLine    = 341
	VBlankScanline = 241
	PrerenderLine  = 261
)

// Framebuffer is one complete frame of palette indices. The value at each
// pixel is an index into the master palette (0 to 63) and must be resolved
// to an RGB value by the presentation layer.
type Framebuffer struct {
	pixels [HorizPixels * VisibleLines]uint8
}

// SetPixel writes the palette index for the pixel at (x, y). Coordinates
// outside the visible picture are ignored.
func (fb *Framebuffer) SetPixel(x int, y int, idx uint8) {
	if x < 0 || x >= HorizPixels || y < 0 || y >= VisibleLines {
		return
	}
	fb.pixels[y*HorizPixels+x] = idx
}

// Pixel returns the palette index for the pixel at (x, y).
func (fb *Framebuffer) Pixel(x int, y int) uint8 {
	if x < 0 || x >= HorizPixels || y < 0 || y >= VisibleLines {
		return 0
	}
	return fb.pixels[y*HorizPixels+x]
}

// Pixels returns the underlying pixel data in row order. The slice aliases
// the framebuffer so it is only valid until the next frame swap.
func (fb *Framebuffer) Pixels() []uint8 {
	return fb.pixels[:]
}

// FrameTrigger implementations are notified whenever the PPU completes a
// frame. The framebuffer passed to NewFrame is the freshly completed front
// buffer and is stable until the next frame completes.
type FrameTrigger interface {
	NewFrame(fb *Framebuffer) error
}
