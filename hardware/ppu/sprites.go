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

// OAM holds 64 sprites of four bytes each: y position, tile number,
// attributes and x position.

// evaluateSprites selects the sprites that appear on the next scanline. No
// more than eight are kept. If a ninth sprite is found the overflow flag is
// raised and the sprite is dropped.
func (ppu *PPU) evaluateSprites() {
	height := 8
	if ppu.largeSprites {
		height = 16
	}

	count := 0
	for i := 0; i < 64; i++ {
		y := ppu.oam[i*4+0]
		attr := ppu.oam[i*4+2]
		x := ppu.oam[i*4+3]

		row := ppu.Scanline - int(y)
		if row < 0 || row >= height {
			continue
		}
		if count < 8 {
			ppu.sprPatterns[count] = ppu.fetchSpritePattern(i, row)
			ppu.sprPositions[count] = x
			ppu.sprPriorities[count] = (attr >> 5) & 1
			ppu.sprIndexes[count] = uint8(i)
		}
		count++
	}

	if count > 8 {
		count = 8
		ppu.spriteOverflow = true
	}
	ppu.sprCount = count
}

// fetchSpritePattern reads the pattern row for sprite i and expands it into
// eight 4 bit palette indices, applying horizontal and vertical flips. In
// 8x16 mode the pattern table is selected by bit 0 of the tile number.
func (ppu *PPU) fetchSpritePattern(i int, row int) uint32 {
	tile := ppu.oam[i*4+1]
	attr := ppu.oam[i*4+2]

	var address uint16
	if !ppu.largeSprites {
		if attr&0x80 == 0x80 {
			row = 7 - row
		}
		address = 0x1000*uint16(ppu.sprTable) + uint16(tile)*16 + uint16(row)
	} else {
		if attr&0x80 == 0x80 {
			row = 15 - row
		}
		table := tile & 1
		tile &= 0xfe
		if row > 7 {
			tile++
			row -= 8
		}
		address = 0x1000*uint16(table) + uint16(tile)*16 + uint16(row)
	}

	loTile := ppu.readVRAM(address)
	hiTile := ppu.readVRAM(address + 8)
	upper := (attr & 3) << 2

	var data uint32
	for p := 0; p < 8; p++ {
		var p1, p2 uint8
		if attr&0x40 == 0x40 {
			p1 = loTile & 1
			p2 = (hiTile & 1) << 1
			loTile >>= 1
			hiTile >>= 1
		} else {
			p1 = (loTile & 0x80) >> 7
			p2 = (hiTile & 0x80) >> 6
			loTile <<= 1
			hiTile <<= 1
		}
		data <<= 4
		data |= uint32(upper | p1 | p2)
	}

	return data
}

// spritePixel returns the slot number and 4 bit palette index of the first
// opaque sprite pixel at the current dot. A palette index of zero means no
// sprite covers the pixel.
func (ppu *PPU) spritePixel() (int, uint8) {
	if !ppu.showSprites {
		return 0, 0
	}
	for i := 0; i < ppu.sprCount; i++ {
		offset := (ppu.Dot - 1) - int(ppu.sprPositions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		offset = 7 - offset
		colour := uint8((ppu.sprPatterns[i] >> (offset * 4)) & 0x0f)
		if colour%4 == 0 {
			continue
		}
		return i, colour
	}
	return 0, 0
}
