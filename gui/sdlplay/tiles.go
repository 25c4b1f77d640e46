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
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/ppu"
)

// an arbitrary but legible palette for the tile viewer. CHR data carries no
// colour information of its own
var tilePalette = [4]uint8{0x01, 0x23, 0x27, 0x30}

// tiles per row in the tile viewer. 256 tiles in a pattern table makes each
// bank a 128x128 pixel square
const tilesPerRow = 16

// draw a single 8x8 tile from the cartridge's CHR space
func drawTile(fb *ppu.Framebuffer, cart *cartridge.Cartridge, bank uint16, tile uint16, originX int, originY int) {
	addr := bank + tile*16
	for y := 0; y < 8; y++ {
		lo := cart.ReadVideo(addr + uint16(y))
		hi := cart.ReadVideo(addr + uint16(y) + 8)
		for x := 0; x < 8; x++ {
			v := (((hi >> (7 - x)) & 0x01) << 1) | ((lo >> (7 - x)) & 0x01)
			fb.SetPixel(originX+x, originY+y, tilePalette[v])
		}
	}
}

// ShowTiles renders both pattern tables of the attached cartridge, the left
// bank on the left half of the window and the right bank on the right, and
// blocks until the user quits. Used by the TILES sub-mode.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) ShowTiles(cart *cartridge.Cartridge) error {
	fb := &ppu.Framebuffer{}

	for bank := 0; bank < 2; bank++ {
		for tile := 0; tile < 256; tile++ {
			x := (tile % tilesPerRow) * 8
			y := (tile / tilesPerRow) * 8
			drawTile(fb, cart, uint16(bank)*0x1000, uint16(tile), x+bank*ppu.HorizPixels/2, y)
		}
	}

	err := scr.NewFrame(fb)
	if err != nil {
		return err
	}

	for !scr.QuitRequested() {
		scr.Service()
		scr.lmtr.Wait()
	}

	return nil
}
