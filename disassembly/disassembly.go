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

package disassembly

import (
	"fmt"
	"io"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/memory/cpubus"
)

// start of the PRG address space as seen by the CPU
const prgOrigin = 0x8000

// Disassembly is the result of a linear decode of a cartridge's PRG space.
type Disassembly struct {
	cart *cartridge.Cartridge

	// entries in ascending address order. gaps appear where a byte could
	// not be decoded
	Entries []*Entry
}

// cartridge space uses CPU addresses directly so the Cartridge type can act
// as its own Peeker
type cartPeeker struct {
	cart *cartridge.Cartridge
}

func (p cartPeeker) Peek(address uint16) uint8 {
	return p.cart.Read(address)
}

// FromCartridge disassembles the PRG space of the cartridge identified by
// the loader. The decode is linear from the start of PRG space, which is
// adequate for the fixed banks of mapper 0.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	cart := cartridge.NewCartridge()

	err := cart.Attach(cartload)
	if err != nil {
		return nil, err
	}

	dsm := &Disassembly{
		cart:    cart,
		Entries: make([]*Entry, 0, 1024),
	}

	peeker := cartPeeker{cart: cart}

	// stop before the vector table at the top of the address space
	address := uint16(prgOrigin)
	for address < cpubus.NMI {
		e, err := Decode(peeker, address)
		if err != nil {
			// not an opcode. skip the byte and try again
			address++
			continue
		}

		dsm.Entries = append(dsm.Entries, e)
		address += uint16(e.Defn.Bytes)

		// guard against wrapping around the top of the address space
		if address < prgOrigin {
			break
		}
	}

	return dsm, nil
}

// Write the disassembly to the specified io.Writer, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		_, err := io.WriteString(output, fmt.Sprintf("%s\n", e.String()))
		if err != nil {
			return err
		}
	}
	return nil
}
