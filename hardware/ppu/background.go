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

// The background fetch pipeline. Every eight dots the PPU reads one
// nametable byte, one attribute byte and the two bitplanes of the tile row
// indicated by fine y. reloadShifters() combines them into eight 4 bit
// palette indices which are pushed into the low half of the 64 bit tileData
// shift register. The high half holds the eight pixels currently being
// drawn, offset by the fine x scroll.

func (ppu *PPU) fetchNametableByte() {
	address := 0x2000 | (ppu.vramAddr & 0x0fff)
	ppu.ntByte = ppu.readVRAM(address)
}

// the attribute table packs the upper two palette bits for a 4x4 tile block
// into one byte, two bits per 2x2 quadrant
func (ppu *PPU) fetchAttributeByte() {
	v := ppu.vramAddr
	address := 0x23c0 | (v & 0x0c00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	shift := ((v >> 4) & 4) | (v & 2)
	ppu.atByte = ((ppu.readVRAM(address) >> shift) & 3) << 2
}

func (ppu *PPU) fetchLoTileByte() {
	fineY := (ppu.vramAddr >> 12) & 7
	address := 0x1000*uint16(ppu.bgTable) + uint16(ppu.ntByte)*16 + fineY
	ppu.loTile = ppu.readVRAM(address)
}

func (ppu *PPU) fetchHiTileByte() {
	fineY := (ppu.vramAddr >> 12) & 7
	address := 0x1000*uint16(ppu.bgTable) + uint16(ppu.ntByte)*16 + fineY
	ppu.hiTile = ppu.readVRAM(address + 8)
}

func (ppu *PPU) reloadShifters() {
	var data uint32
	for i := 0; i < 8; i++ {
		p1 := (ppu.loTile & 0x80) >> 7
		p2 := (ppu.hiTile & 0x80) >> 6
		ppu.loTile <<= 1
		ppu.hiTile <<= 1
		data <<= 4
		data |= uint32(ppu.atByte | p1 | p2)
	}
	ppu.tileData |= uint64(data)
}

// backgroundPixel returns the 4 bit palette index for the background at the
// current dot, taking the fine x scroll into account.
func (ppu *PPU) backgroundPixel() uint8 {
	if !ppu.showBg {
		return 0
	}
	data := uint32(ppu.tileData>>32) >> ((7 - ppu.fineX) * 4)
	return uint8(data & 0x0f)
}

// copyHorizontal copies the coarse x and horizontal nametable bits from t
// to v. Happens at dot 257 of every rendering line.
func (ppu *PPU) copyHorizontal() {
	// v: ....A.. ...BCDEF <- t: ....A.. ...BCDEF
	ppu.vramAddr = (ppu.vramAddr & 0xfbe0) | (ppu.tmpAddr & 0x041f)
}

// copyVertical copies the fine y, coarse y and vertical nametable bits from
// t to v. Happens repeatedly during dots 280 to 304 of the pre-render line.
func (ppu *PPU) copyVertical() {
	// v: GHIA.BC DEF..... <- t: GHIA.BC DEF.....
	ppu.vramAddr = (ppu.vramAddr & 0x841f) | (ppu.tmpAddr & 0x7be0)
}

// incrementCoarseX moves v to the next tile, wrapping into the adjacent
// horizontal nametable at the end of the row.
func (ppu *PPU) incrementCoarseX() {
	if ppu.vramAddr&0x001f == 31 {
		ppu.vramAddr &= 0xffe0
		ppu.vramAddr ^= 0x0400
	} else {
		ppu.vramAddr++
	}
}

// incrementY moves v to the next row of pixels. Fine y overflows into
// coarse y and coarse y 29 wraps into the adjacent vertical nametable.
// Coarse y can be set out of range (30 or 31) through PPUADDR, in which
// case it wraps without switching nametable.
func (ppu *PPU) incrementY() {
	if ppu.vramAddr&0x7000 != 0x7000 {
		ppu.vramAddr += 0x1000
	} else {
		ppu.vramAddr &= 0x8fff
		y := (ppu.vramAddr & 0x03e0) >> 5
		switch {
		case y == 29:
			y = 0
			ppu.vramAddr ^= 0x0800
		case y == 31:
			y = 0
		default:
			y++
		}
		ppu.vramAddr = (ppu.vramAddr & 0xfc1f) | (y << 5)
	}
}
