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

import (
	"testing"

	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/test"
)

func TestNametableMirroring(t *testing.T) {
	// one address in each of the four logical nametables, same offset
	addr := [4]uint16{0x2123, 0x2523, 0x2923, 0x2d23}

	fold := func(m cartridge.Mirror) [4]uint16 {
		var f [4]uint16
		for i := range addr {
			f[i] = mirrorAddress(m, addr[i])
		}
		return f
	}

	f := fold(cartridge.MirrorHorizontal)
	test.Equate(t, int(f[0]), 0x0123)
	test.Equate(t, int(f[1]), 0x0123)
	test.Equate(t, int(f[2]), 0x0523)
	test.Equate(t, int(f[3]), 0x0523)

	f = fold(cartridge.MirrorVertical)
	test.Equate(t, int(f[0]), 0x0123)
	test.Equate(t, int(f[1]), 0x0523)
	test.Equate(t, int(f[2]), 0x0123)
	test.Equate(t, int(f[3]), 0x0523)

	// every nametable folds onto the same page
	f = fold(cartridge.MirrorSingle0)
	for i := range f {
		test.Equate(t, int(f[i]), 0x0123)
	}

	f = fold(cartridge.MirrorSingle1)
	for i := range f {
		test.Equate(t, int(f[i]), 0x0523)
	}

	// the nametable address range repeats at 0x3000
	test.Equate(t, int(mirrorAddress(cartridge.MirrorVertical, 0x3123)), 0x0123)
}
