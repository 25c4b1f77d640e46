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

package cartridge_test

import (
	"testing"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/test"
)

// makeImage builds a minimal iNES image in memory.
func makeImage(prgBanks int, chrBanks int, flags6 uint8, flags7 uint8) []byte {
	image := make([]byte, 16+prgBanks*16384+chrBanks*8192)
	copy(image, []byte{'N', 'E', 'S', 0x1a})
	image[4] = uint8(prgBanks)
	image[5] = uint8(chrBanks)
	image[6] = flags6
	image[7] = flags7
	return image
}

func attach(t *testing.T, image []byte) (*cartridge.Cartridge, error) {
	t.Helper()
	cart := cartridge.NewCartridge()
	cartload := cartridgeloader.NewLoader("test.nes")
	cartload.Data = image
	err := cart.Attach(cartload)
	return cart, err
}

func TestBadMagic(t *testing.T) {
	image := makeImage(1, 1, 0x00, 0x00)
	image[0] = 'X'

	_, err := attach(t, image)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidImage))
}

func TestNes2Rejected(t *testing.T) {
	image := makeImage(1, 1, 0x00, 0x08)

	_, err := attach(t, image)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidImage))
}

func TestTruncatedImage(t *testing.T) {
	image := makeImage(1, 1, 0x00, 0x00)

	_, err := attach(t, image[:len(image)-100])
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidImage))
}

func TestUnsupportedMapper(t *testing.T) {
	// mapper 4 in the high nibble of flags 6
	image := makeImage(1, 1, 0x40, 0x00)

	_, err := attach(t, image)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))
}

func TestNROMSingleBankMirror(t *testing.T) {
	image := makeImage(1, 1, 0x01, 0x00)

	// a recognisable byte at the start of PRG and at the reset vector
	image[16] = 0xa9
	image[16+0x3ffc] = 0x34
	image[16+0x3ffd] = 0x12

	cart, err := attach(t, image)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.ID(), "NROM")
	test.Equate(t, cart.NumBanks(), 1)
	test.Equate(t, cart.Mirroring() == cartridge.MirrorVertical, true)

	// a single PRG bank appears at both 0x8000 and 0xc000
	test.Equate(t, cart.Read(0x8000), 0xa9)
	test.Equate(t, cart.Read(0xc000), 0xa9)

	// vectors read through the mirror
	test.Equate(t, cart.Read(0xfffc), 0x34)
	test.Equate(t, cart.Read(0xfffd), 0x12)

	// writes to PRG ROM are ignored
	cart.Write(0x8000, 0xff)
	test.Equate(t, cart.Read(0x8000), 0xa9)
}

func TestNROMTwoBanks(t *testing.T) {
	image := makeImage(2, 1, 0x00, 0x00)
	image[16] = 0x11
	image[16+0x4000] = 0x22

	cart, err := attach(t, image)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.NumBanks(), 2)
	test.Equate(t, cart.Mirroring() == cartridge.MirrorHorizontal, true)
	test.Equate(t, cart.Read(0x8000), 0x11)
	test.Equate(t, cart.Read(0xc000), 0x22)
}

func TestCHRRom(t *testing.T) {
	image := makeImage(1, 1, 0x00, 0x00)
	image[16+16384] = 0x77

	cart, err := attach(t, image)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.ReadVideo(0x0000), 0x77)

	// CHR ROM is not writable
	cart.WriteVideo(0x0000, 0xff)
	test.Equate(t, cart.ReadVideo(0x0000), 0x77)
}

func TestCHRRam(t *testing.T) {
	// no CHR banks means the cartridge provides CHR RAM
	image := makeImage(1, 0, 0x00, 0x00)

	cart, err := attach(t, image)
	test.ExpectedSuccess(t, err)

	cart.WriteVideo(0x1fff, 0x5a)
	test.Equate(t, cart.ReadVideo(0x1fff), 0x5a)
}

func TestPRGRam(t *testing.T) {
	image := makeImage(1, 1, 0x00, 0x00)

	cart, err := attach(t, image)
	test.ExpectedSuccess(t, err)

	cart.Write(0x6000, 0x42)
	test.Equate(t, cart.Read(0x6000), 0x42)

	// cleared on initialise
	cart.Initialise()
	test.Equate(t, cart.Read(0x6000), 0x00)
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.Equate(t, cart.IsEjected(), true)
	test.Equate(t, cart.Read(0xfffc), 0x00)
}
