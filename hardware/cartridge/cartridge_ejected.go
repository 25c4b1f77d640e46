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

// ejected is the mapper in place when no cartridge is attached. reads
// return zero, which the bus will turn into an open bus value.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) Initialise() {
}

func (cart *ejected) ID() string {
	return "-"
}

func (cart *ejected) Read(addr uint16) uint8 {
	return 0
}

func (cart *ejected) Write(addr uint16, data uint8) {
}

func (cart *ejected) ReadVideo(addr uint16) uint8 {
	return 0
}

func (cart *ejected) WriteVideo(addr uint16, data uint8) {
}

func (cart *ejected) NumBanks() int {
	return 0
}

func (cart *ejected) Mirroring() Mirror {
	return MirrorHorizontal
}
