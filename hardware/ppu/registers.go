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

// Canonical register addresses. The mirrors from 0x2008 to 0x3fff are folded
// onto these by the memory map before they reach the PPU.
const (
	AddressPPUCTRL   = 0x2000
	AddressPPUMASK   = 0x2001
	AddressPPUSTATUS = 0x2002
	AddressOAMADDR   = 0x2003
	AddressOAMDATA   = 0x2004
	AddressPPUSCROLL = 0x2005
	AddressPPUADDR   = 0x2006
	AddressPPUDATA   = 0x2007
)

// ReadRegister services a CPU read of one of the eight PPU registers. Reads
// of write-only registers return the value of the internal bus latch.
func (ppu *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case AddressPPUSTATUS:
		return ppu.readStatus()
	case AddressOAMDATA:
		return ppu.readOAMData()
	case AddressPPUDATA:
		return ppu.readData()
	}
	return ppu.busLatch
}

// WriteRegister services a CPU write to one of the eight PPU registers.
// Every write, including writes to PPUSTATUS, refreshes the bus latch.
func (ppu *PPU) WriteRegister(address uint16, data uint8) {
	ppu.busLatch = data
	switch address {
	case AddressPPUCTRL:
		ppu.writeControl(data)
	case AddressPPUMASK:
		ppu.writeMask(data)
	case AddressOAMADDR:
		ppu.oamAddr = data
	case AddressOAMDATA:
		ppu.writeOAMData(data)
	case AddressPPUSCROLL:
		ppu.writeScroll(data)
	case AddressPPUADDR:
		ppu.writeAddress(data)
	case AddressPPUDATA:
		ppu.writeData(data)
	}
}

func (ppu *PPU) writeControl(data uint8) {
	ppu.baseNametable = data & 0x03
	ppu.largeIncrement = data&0x04 == 0x04
	ppu.sprTable = (data >> 3) & 0x01
	ppu.bgTable = (data >> 4) & 0x01
	ppu.largeSprites = data&0x20 == 0x20
	ppu.masterSlave = data&0x40 == 0x40
	ppu.nmiEnable = data&0x80 == 0x80
	ppu.nmiChange()

	// t: ....BA.. ........ <- d: ......BA
	ppu.tmpAddr = (ppu.tmpAddr & 0xf3ff) | (uint16(data&0x03) << 10)
}

func (ppu *PPU) writeMask(data uint8) {
	ppu.greyscale = data&0x01 == 0x01
	ppu.showLeftBg = data&0x02 == 0x02
	ppu.showLeftSpr = data&0x04 == 0x04
	ppu.showBg = data&0x08 == 0x08
	ppu.showSprites = data&0x10 == 0x10
	ppu.emphasis = (data >> 5) & 0x07
}

// readStatus returns the PPUSTATUS byte. The low five bits are whatever was
// left on the bus latch. Reading clears the vblank flag and resets the
// shared write latch used by PPUSCROLL and PPUADDR.
func (ppu *PPU) readStatus() uint8 {
	data := ppu.busLatch & 0x1f
	if ppu.spriteOverflow {
		data |= 0x20
	}
	if ppu.spriteZeroHit {
		data |= 0x40
	}
	if ppu.vblank {
		data |= 0x80
	}

	ppu.vblank = false
	ppu.nmiChange()
	ppu.writeLatch = false

	return data
}

// readOAMData does not increment the OAM address. The three unimplemented
// bits of every sprite's attribute byte read back as zero.
func (ppu *PPU) readOAMData() uint8 {
	data := ppu.oam[ppu.oamAddr]
	if ppu.oamAddr&0x03 == 0x02 {
		data &= 0xe3
	}
	return data
}

func (ppu *PPU) writeOAMData(data uint8) {
	ppu.oam[ppu.oamAddr] = data
	ppu.oamAddr++
}

func (ppu *PPU) writeScroll(data uint8) {
	if !ppu.writeLatch {
		// t: ....... ...HGFED <- d: HGFED...
		// x:              CBA <- d: .....CBA
		ppu.tmpAddr = (ppu.tmpAddr & 0xffe0) | (uint16(data) >> 3)
		ppu.fineX = data & 0x07
		ppu.writeLatch = true
	} else {
		// t: CBA..HG FED..... <- d: HGFEDCBA
		ppu.tmpAddr = (ppu.tmpAddr & 0x8fff) | (uint16(data&0x07) << 12)
		ppu.tmpAddr = (ppu.tmpAddr & 0xfc1f) | (uint16(data&0xf8) << 2)
		ppu.writeLatch = false
	}
}

func (ppu *PPU) writeAddress(data uint8) {
	if !ppu.writeLatch {
		// t: .FEDCBA ........ <- d: ..FEDCBA
		// bit 14 of t is cleared
		ppu.tmpAddr = (ppu.tmpAddr & 0x80ff) | (uint16(data&0x3f) << 8)
		ppu.writeLatch = true
	} else {
		// t: ....... HGFEDCBA <- d: HGFEDCBA
		// v                  <- t
		ppu.tmpAddr = (ppu.tmpAddr & 0xff00) | uint16(data)
		ppu.vramAddr = ppu.tmpAddr
		ppu.writeLatch = false
	}
}

// readData implements the PPUDATA read buffer. Reads below the palette
// return the buffered value from the previous read. Palette reads bypass the
// buffer but still refresh it with the nametable byte that the palette
// address shadows.
func (ppu *PPU) readData() uint8 {
	data := ppu.readVRAM(ppu.vramAddr)
	if ppu.vramAddr%0x4000 < 0x3f00 {
		data, ppu.readBuffer = ppu.readBuffer, data
	} else {
		ppu.readBuffer = ppu.readVRAM(ppu.vramAddr - 0x1000)
	}
	ppu.incrementAddress()
	return data
}

func (ppu *PPU) writeData(data uint8) {
	ppu.writeVRAM(ppu.vramAddr, data)
	ppu.incrementAddress()
}

func (ppu *PPU) incrementAddress() {
	if ppu.largeIncrement {
		ppu.vramAddr += 32
	} else {
		ppu.vramAddr++
	}
}
