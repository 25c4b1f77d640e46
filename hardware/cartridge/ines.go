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

// sizes of the banks the iNES format deals in.
const (
	prgBankSize = 16384
	chrBankSize = 8192
	trainerSize = 512
	headerSize  = 16
)

// inesHeader is the result of parsing the 16 byte header of an iNES image.
type inesHeader struct {
	prgBanks int
	chrBanks int
	mapperID int
	mirror   Mirror
	battery  bool
	trainer  bool
}

// parseINesHeader reads the 16 byte header at the front of data. Images in
// the NES 2.0 format are rejected.
func parseINesHeader(data []byte) (inesHeader, error) {
	hdr := inesHeader{}

	if len(data) < headerSize {
		return hdr, curated.Errorf(InvalidImage, "file too short for an iNES header")
	}

	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1a {
		return hdr, curated.Errorf(InvalidImage, "missing iNES magic number")
	}

	// NES 2.0 images put 0b10 in bits 2 and 3 of flags 7. the extended
	// fields change the meaning of the rest of the header so we can't simply
	// carry on
	if data[7]&0x0c == 0x08 {
		return hdr, curated.Errorf(InvalidImage, "NES 2.0 images are not supported")
	}

	hdr.prgBanks = int(data[4])
	hdr.chrBanks = int(data[5])
	hdr.mapperID = int(data[6]>>4) | int(data[7]&0xf0)
	hdr.battery = data[6]&0x02 == 0x02
	hdr.trainer = data[6]&0x04 == 0x04

	if data[6]&0x08 == 0x08 {
		hdr.mirror = MirrorFourScreen
	} else if data[6]&0x01 == 0x01 {
		hdr.mirror = MirrorVertical
	} else {
		hdr.mirror = MirrorHorizontal
	}

	if hdr.prgBanks == 0 {
		return hdr, curated.Errorf(InvalidImage, "no PRG banks in image")
	}

	// check that the file is large enough for what the header claims
	expected := headerSize + hdr.prgBanks*prgBankSize + hdr.chrBanks*chrBankSize
	if hdr.trainer {
		expected += trainerSize
	}
	if len(data) < expected {
		return hdr, curated.Errorf(InvalidImage, "file shorter than the bank count claims")
	}

	return hdr, nil
}
