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

package hardware_test

import (
	"testing"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/hardware"
	"github.com/sidegate/famicore/test"
)

// assemble a minimal NROM image. the program is placed at the start of the
// single PRG bank (0x8000) and the nmi/irq handlers at 0x8100/0x8200. the
// bank is mirrored into the top half of the address space so the vectors at
// 0xfffa onwards land at the end of the bank
func makeTestROM(program []uint8, nmi []uint8, irq []uint8) []uint8 {
	image := make([]uint8, 16+16384+8192)
	copy(image, []uint8{'N', 'E', 'S', 0x1a})
	image[4] = 1
	image[5] = 1

	prg := image[16 : 16+16384]
	copy(prg, program)
	copy(prg[0x0100:], nmi)
	copy(prg[0x0200:], irq)

	// vectors: nmi 0x8100, reset 0x8000, irq 0x8200
	prg[0x3ffa] = 0x00
	prg[0x3ffb] = 0x81
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	prg[0x3ffe] = 0x00
	prg[0x3fff] = 0x82

	return image
}

func newTestConsole(t *testing.T, program []uint8, nmi []uint8, irq []uint8) *hardware.Console {
	t.Helper()

	console := hardware.NewConsole()
	cartload := cartridgeloader.NewLoader("fixture.nes")
	cartload.Data = makeTestROM(program, nmi, irq)

	if err := console.AttachCartridge(cartload); err != nil {
		t.Fatal(err)
	}

	return console
}

// rti is a reasonable do-nothing interrupt handler
var rti = []uint8{0x40}

func TestResetVector(t *testing.T) {
	console := newTestConsole(t, []uint8{
		0xa9, 0x55, // LDA #$55
		0x85, 0x10, // STA $10
		0x4c, 0x04, 0x80, // JMP $8004
	}, rti, rti)

	test.Equate(t, console.CPU.PC.Address(), 0x8000)

	// LDA + STA
	if err := console.Step(nil); err != nil {
		t.Fatal(err)
	}
	if err := console.Step(nil); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, console.CPU.A.Value(), 0x55)
	test.Equate(t, console.Mem.Peek(0x0010), 0x55)
	test.Equate(t, console.CPU.PC.Address(), 0x8004)
}

func TestDotsPerCycle(t *testing.T) {
	console := newTestConsole(t, []uint8{
		0xea,             // NOP
		0x4c, 0x01, 0x80, // JMP $8001
	}, rti, rti)

	dots := 0
	count := func() error {
		dots++
		return nil
	}

	// NOP is two cycles
	if err := console.Step(count); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dots, 6)

	// JMP absolute is three cycles
	dots = 0
	if err := console.Step(count); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dots, 9)
}

func TestOAMDMAStall(t *testing.T) {
	console := newTestConsole(t, []uint8{
		0x8d, 0x14, 0x40, // STA $4014
		0x4c, 0x03, 0x80, // JMP $8003
	}, rti, rti)

	dots := 0
	count := func() error {
		dots++
		return nil
	}

	// the write lands after four cycles, an even cycle, so the transfer
	// stalls for the minimum 513 cycles
	if err := console.Step(count); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dots, (4+513)*3)
}

func TestNMIDelivery(t *testing.T) {
	console := newTestConsole(t, []uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000 (enable NMI)
		0x4c, 0x05, 0x80, // JMP $8005
	}, []uint8{
		0xe6, 0x00, // INC $00
		0x40, // RTI
	}, rti)

	if err := console.RunForFrameCount(3, nil); err != nil {
		t.Fatal(err)
	}

	// the handler has run at least once per completed vertical blank
	if console.Mem.Peek(0x0000) == 0 {
		t.Errorf("nmi handler did not run")
	}
}

func TestRunForFrameCount(t *testing.T) {
	console := newTestConsole(t, []uint8{
		0x4c, 0x00, 0x80, // JMP $8000
	}, rti, rti)

	startFrame := console.PPU.Frame
	if err := console.RunForFrameCount(2, nil); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, console.PPU.Frame, startFrame+2)
}
