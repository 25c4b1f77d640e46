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

package cartridge

import (
	"github.com/sidegate/famicore/curated"
)

// nrom implements mapper 0. There is no bank switching: one or two 16k PRG
// banks, an 8k CHR bank (ROM, or RAM when the image carries no CHR data) and
// 8k of PRG RAM at 0x6000.
type nrom struct {
	prg []uint8
	chr []uint8
	ram []uint8

	// a single 16k PRG bank is mirrored into the top half of the address
	// space
	prgMask uint16

	// whether chr is writable
	chrRAM bool

	mirror Mirror
}

func newNROM(data []byte, hdr inesHeader) (*nrom, error) {
	cart := &nrom{
		ram:    make([]uint8, 8192),
		mirror: hdr.mirror,
	}

	switch hdr.prgBanks {
	case 1:
		cart.prgMask = 0x3fff
	case 2:
		cart.prgMask = 0x7fff
	default:
		return nil, curated.Errorf(InvalidImage, "NROM images have one or two PRG banks")
	}

	cart.prg = make([]uint8, hdr.prgBanks*prgBankSize)
	copy(cart.prg, data)

	cart.chr = make([]uint8, chrBankSize)
	if hdr.chrBanks == 0 {
		cart.chrRAM = true
	} else {
		copy(cart.chr, data[len(cart.prg):])
	}

	return cart, nil
}

func (cart *nrom) Initialise() {
	for i := range cart.ram {
		cart.ram[i] = 0
	}
	if cart.chrRAM {
		for i := range cart.chr {
			cart.chr[i] = 0
		}
	}
}

func (cart *nrom) ID() string {
	return "NROM"
}

func (cart *nrom) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return cart.prg[addr&cart.prgMask]
	case addr >= 0x6000:
		return cart.ram[addr-0x6000]
	}

	// addresses below 0x6000 are unmapped by NROM
	return 0
}

func (cart *nrom) Write(addr uint16, data uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		cart.ram[addr-0x6000] = data
	}

	// writes to PRG ROM are ignored
}

func (cart *nrom) ReadVideo(addr uint16) uint8 {
	return cart.chr[addr&0x1fff]
}

func (cart *nrom) WriteVideo(addr uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[addr&0x1fff] = data
	}
}

func (cart *nrom) NumBanks() int {
	return len(cart.prg) / prgBankSize
}

func (cart *nrom) Mirroring() Mirror {
	return cart.mirror
}
