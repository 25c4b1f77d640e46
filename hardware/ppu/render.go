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

// renderPixel composites the background and sprite pixels for the current
// dot and writes the resulting palette index to the back framebuffer.
//
// A pixel whose low two bits are zero is transparent. When both background
// and sprite are opaque the sprite's priority bit decides which is drawn
// and, if the sprite is sprite zero, the sprite zero hit flag is raised.
func (ppu *PPU) renderPixel() {
	x := ppu.Dot - 1
	y := ppu.Scanline

	bg := ppu.backgroundPixel()
	slot, spr := ppu.spritePixel()

	if x < 8 && !ppu.showLeftBg {
		bg = 0
	}
	if x < 8 && !ppu.showLeftSpr {
		spr = 0
	}

	bgOpaque := bg%4 != 0
	sprOpaque := spr%4 != 0

	var colour uint8
	switch {
	case !bgOpaque && !sprOpaque:
		colour = 0
	case !bgOpaque && sprOpaque:
		colour = spr | 0x10
	case bgOpaque && !sprOpaque:
		colour = bg
	default:
		// sprite zero hit is not raised at x=255
		if ppu.sprIndexes[slot] == 0 && x < 255 {
			ppu.spriteZeroHit = true
		}
		if ppu.sprPriorities[slot] == 0 {
			colour = spr | 0x10
		} else {
			colour = bg
		}
	}

	idx := ppu.readPalette(uint16(colour)) & 0x3f
	if ppu.greyscale {
		idx &= 0x30
	}

	ppu.back.SetPixel(x, y, idx)
}
