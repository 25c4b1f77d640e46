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

package main_test

import (
	"testing"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/hardware"
)

// a minimal NROM image with a busy loop at the reset vector. enough to
// exercise the console at full tilt without any io
func benchmarkROM() []uint8 {
	image := make([]uint8, 16+16384+8192)
	copy(image, []uint8{'N', 'E', 'S', 0x1a})
	image[4] = 1
	image[5] = 1

	prg := image[16 : 16+16384]
	copy(prg, []uint8{
		0xe8,             // INX
		0xc8,             // INY
		0x4c, 0x00, 0x80, // JMP $8000
	})
	prg[0x0100] = 0x40 // RTI
	prg[0x0200] = 0x40 // RTI

	prg[0x3ffa] = 0x00
	prg[0x3ffb] = 0x81
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	prg[0x3ffe] = 0x00
	prg[0x3fff] = 0x82

	return image
}

func BenchmarkFrames(b *testing.B) {
	console := hardware.NewConsole()

	cartload := cartridgeloader.NewLoader("benchmark.nes")
	cartload.Data = benchmarkROM()

	if err := console.AttachCartridge(cartload); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	if err := console.RunForFrameCount(b.N, nil); err != nil {
		b.Fatal(err)
	}
}
