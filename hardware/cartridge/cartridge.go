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
	"fmt"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/logger"
)

// Sentinel errors raised by the cartridge package.
const (
	// the image could not be parsed as an iNES file
	InvalidImage = "cartridge: invalid image: %s"

	// the image is a valid iNES file but requires a mapper that isn't
	// implemented
	UnsupportedMapper = "cartridge: unsupported mapper (%d)"
)

// Cartridge is the interface from the console to the game image. The
// specifics of address translation are implemented by the mapper.
type Cartridge struct {
	Filename  string
	ShortName string
	Hash      string

	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge starts in an ejected state.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s]", cart.ShortName, cart.mapper.ID())
}

// ID returns the ID of the mapper in use.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Snapshot creates a copy of the cartridge in its current state.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	return &n
}

// Eject removes any attached image, leaving the cartridge in a state where
// every read returns an open bus style value.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.ShortName = "ejected"
	cart.Hash = ""
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach the cartridge loader to the console and make available the data to
// the CPU and PPU buses.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.ShortName = cartload.ShortName()
	cart.Hash = cartload.Hash

	hdr, err := parseINesHeader(cartload.Data)
	if err != nil {
		return err
	}

	data := cartload.Data[headerSize:]
	if hdr.trainer {
		// trainers predate the mappers we support. skip the data
		logger.Log("cartridge", "ignoring 512 byte trainer")
		data = data[trainerSize:]
	}

	switch hdr.mapperID {
	case 0:
		cart.mapper, err = newNROM(data, hdr)
		if err != nil {
			return err
		}
	default:
		return curated.Errorf(UnsupportedMapper, hdr.mapperID)
	}

	logger.Logf("cartridge", "%s attached (%s mirroring)", cart.mapper.ID(), cart.mapper.Mirroring())

	cart.Initialise()

	return nil
}

// Initialise the cartridge to its initial state.
func (cart *Cartridge) Initialise() {
	cart.mapper.Initialise()
}

// NumBanks returns the number of PRG banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// Mirroring returns the nametable arrangement requested by the cartridge.
func (cart *Cartridge) Mirroring() Mirror {
	return cart.mapper.Mirroring()
}

// Read is an implementation of the CPU side of the cartridge. Addresses
// arrive unnormalised in the 0x4020 to 0xffff range.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.Read(addr)
}

// Write is an implementation of the CPU side of the cartridge.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}

// ReadVideo reads from the pattern table space on the PPU bus.
func (cart *Cartridge) ReadVideo(addr uint16) uint8 {
	return cart.mapper.ReadVideo(addr)
}

// WriteVideo writes to the pattern table space on the PPU bus. Only
// meaningful for cartridges with CHR RAM.
func (cart *Cartridge) WriteVideo(addr uint16, data uint8) {
	cart.mapper.WriteVideo(addr, data)
}
