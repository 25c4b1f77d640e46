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

package memorymap_test

import (
	"testing"

	"github.com/sidegate/famicore/hardware/memory/memorymap"
	"github.com/sidegate/famicore/test"
)

func TestRAMMirrors(t *testing.T) {
	for _, origin := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		ma, area := memorymap.MapAddress(origin | 0x0123)
		test.Equate(t, area == memorymap.RAM, true)
		test.Equate(t, ma, 0x0123)
	}

	// top of the last RAM mirror
	ma, area := memorymap.MapAddress(0x1fff)
	test.Equate(t, area == memorymap.RAM, true)
	test.Equate(t, ma, 0x07ff)
}

func TestPPURegisterMirrors(t *testing.T) {
	// the eight PPU registers repeat every eight bytes up to 0x3fff
	ma, area := memorymap.MapAddress(0x2000)
	test.Equate(t, area == memorymap.PPU, true)
	test.Equate(t, ma, 0x2000)

	ma, area = memorymap.MapAddress(0x2008)
	test.Equate(t, area == memorymap.PPU, true)
	test.Equate(t, ma, 0x2000)

	ma, area = memorymap.MapAddress(0x3fff)
	test.Equate(t, area == memorymap.PPU, true)
	test.Equate(t, ma, 0x2007)

	ma, _ = memorymap.MapAddress(0x2f42)
	test.Equate(t, ma, 0x2002)
}

func TestIOAndCartridge(t *testing.T) {
	ma, area := memorymap.MapAddress(0x4014)
	test.Equate(t, area == memorymap.IO, true)
	test.Equate(t, ma, 0x4014)

	ma, area = memorymap.MapAddress(0x4020)
	test.Equate(t, area == memorymap.Cartridge, true)
	test.Equate(t, ma, 0x4020)

	ma, area = memorymap.MapAddress(0x8000)
	test.Equate(t, area == memorymap.Cartridge, true)
	test.Equate(t, ma, 0x8000)

	ma, area = memorymap.MapAddress(0xffff)
	test.Equate(t, area == memorymap.Cartridge, true)
	test.Equate(t, ma, 0xffff)
}
