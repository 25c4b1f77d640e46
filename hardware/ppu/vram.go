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

import "github.com/sidegate/famicore/hardware/cartridge"

// nametable mirroring. the index selects which of the 2KB RAM's two 1KB
// pages backs each of the four logical nametables
var mirrorLookup = map[cartridge.Mirror][4]uint16{
	cartridge.MirrorHorizontal: {0, 0, 1, 1},
	cartridge.MirrorVertical:   {0, 1, 0, 1},
	cartridge.MirrorSingle0:    {0, 0, 0, 0},
	cartridge.MirrorSingle1:    {1, 1, 1, 1},
	cartridge.MirrorFourScreen: {0, 1, 2, 3},
}

// mirrorAddress folds a nametable address in the range 0x2000 to 0x3eff onto
// the console's nametable RAM.
func mirrorAddress(mode cartridge.Mirror, address uint16) uint16 {
	address = (address - 0x2000) % 0x1000
	table := address / 0x0400
	offset := address % 0x0400
	return mirrorLookup[mode][table]*0x0400 + offset
}

// readVRAM reads from the PPU's own address space. Addresses below 0x2000
// are pattern data on the cartridge, 0x2000 to 0x3eff are the nametables and
// 0x3f00 upwards is palette RAM. Addresses above 0x3fff are mirrors.
func (ppu *PPU) readVRAM(address uint16) uint8 {
	address %= 0x4000
	switch {
	case address < 0x2000:
		return ppu.cart.ReadVideo(address)
	case address < 0x3f00:
		return ppu.nametable[mirrorAddress(ppu.cart.Mirroring(), address)%2048]
	default:
		return ppu.readPalette(address % 32)
	}
}

func (ppu *PPU) writeVRAM(address uint16, data uint8) {
	address %= 0x4000
	switch {
	case address < 0x2000:
		ppu.cart.WriteVideo(address, data)
	case address < 0x3f00:
		ppu.nametable[mirrorAddress(ppu.cart.Mirroring(), address)%2048] = data
	default:
		ppu.writePalette(address%32, data)
	}
}

// palette entries 0x10, 0x14, 0x18 and 0x1c are mirrors of the background
// entries at 0x00, 0x04, 0x08 and 0x0c
func (ppu *PPU) readPalette(address uint16) uint8 {
	if address >= 16 && address%4 == 0 {
		address -= 16
	}
	return ppu.palette[address]
}

func (ppu *PPU) writePalette(address uint16, data uint8) {
	if address >= 16 && address%4 == 0 {
		address -= 16
	}
	ppu.palette[address] = data
}
