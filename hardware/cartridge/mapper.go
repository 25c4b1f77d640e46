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

// cartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses.
//
// Read and Write service the CPU side of the cartridge (0x4020 to 0xffff,
// addresses arriving unnormalised). ReadVideo and WriteVideo service the PPU
// pattern table space (0x0000 to 0x1fff).
type cartMapper interface {
	Initialise()
	ID() string

	Read(addr uint16) uint8
	Write(addr uint16, data uint8)

	ReadVideo(addr uint16) uint8
	WriteVideo(addr uint16, data uint8)

	NumBanks() int

	// the nametable mirroring arrangement requested by the cartridge
	Mirroring() Mirror
}

// Mirror describes the nametable mirroring arrangement of a cartridge.
type Mirror int

// List of valid Mirror values.
const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
	MirrorSingle0
	MirrorSingle1
	MirrorFourScreen
)

func (m Mirror) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorSingle0:
		return "single-screen 0"
	case MirrorSingle1:
		return "single-screen 1"
	case MirrorFourScreen:
		return "four-screen"
	}

	return "undefined"
}
