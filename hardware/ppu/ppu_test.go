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

package ppu_test

import (
	"testing"

	"github.com/sidegate/famicore/hardware/cartridge"
	"github.com/sidegate/famicore/hardware/ppu"
	"github.com/sidegate/famicore/test"
)

// the number of dots in a full frame
const frameDots = 341 * 262

type frameCounter struct {
	frames    int
	intervals []int
	steps     int
	lastFrame int
}

func (fc *frameCounter) NewFrame(fb *ppu.Framebuffer) error {
	fc.frames++
	fc.intervals = append(fc.intervals, fc.steps-fc.lastFrame)
	fc.lastFrame = fc.steps
	return nil
}

func newPPU(t *testing.T) *ppu.PPU {
	t.Helper()
	return ppu.NewPPU(cartridge.NewCartridge())
}

func step(t *testing.T, p *ppu.PPU, dots int) {
	t.Helper()
	for i := 0; i < dots; i++ {
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFrameTiming(t *testing.T) {
	p := newPPU(t)
	fc := &frameCounter{}
	p.AttachFrameTrigger(fc)

	// the reset state places the beam two dots before the start of the
	// vertical blanking period
	for i := 0; i < 2; i++ {
		fc.steps++
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	test.Equate(t, fc.frames, 1)

	// with rendering disabled every frame is exactly the same length
	for i := 0; i < frameDots*2; i++ {
		fc.steps++
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	test.Equate(t, fc.frames, 3)
	test.Equate(t, fc.intervals[1], frameDots)
	test.Equate(t, fc.intervals[2], frameDots)
}

func TestOddFrameSkip(t *testing.T) {
	p := newPPU(t)
	fc := &frameCounter{}
	p.AttachFrameTrigger(fc)

	// enable background rendering. odd frames drop the final dot of the
	// pre-render line
	p.WriteRegister(0x2001, 0x08)

	for i := 0; i < 2+frameDots*2; i++ {
		fc.steps++
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}

	test.Equate(t, fc.frames, 3)
	test.Equate(t, fc.intervals[1], frameDots)
	test.Equate(t, fc.intervals[2], frameDots-1)
}

func TestStatusVBlank(t *testing.T) {
	p := newPPU(t)

	// enter vblank
	step(t, p, 2)

	// first status read reports vblank and clears it
	test.Equate(t, p.ReadRegister(0x2002)&0x80, 0x80)
	test.Equate(t, p.ReadRegister(0x2002)&0x80, 0x00)

	// flag stays down until the next frame
	step(t, p, frameDots-1)
	test.Equate(t, p.ReadRegister(0x2002)&0x80, 0x00)
	step(t, p, 1)
	test.Equate(t, p.ReadRegister(0x2002)&0x80, 0x80)
}

func TestNMIEdge(t *testing.T) {
	p := newPPU(t)

	p.WriteRegister(0x2000, 0x80)
	test.Equate(t, p.CheckNMI(), false)

	// the edge occurs when vblank begins
	step(t, p, 2)
	test.Equate(t, p.CheckNMI(), true)

	// reported exactly once
	test.Equate(t, p.CheckNMI(), false)

	// toggling the enable bit during the blank period produces a second
	// edge
	p.WriteRegister(0x2000, 0x00)
	p.WriteRegister(0x2000, 0x80)
	test.Equate(t, p.CheckNMI(), true)
}

func TestNMIEnabledMidBlank(t *testing.T) {
	p := newPPU(t)

	// enter vblank with NMIs disabled
	step(t, p, 2)
	test.Equate(t, p.CheckNMI(), false)

	// enabling mid blank raises the edge immediately
	p.WriteRegister(0x2000, 0x80)
	test.Equate(t, p.CheckNMI(), true)
}

func TestDataReadBuffer(t *testing.T) {
	p := newPPU(t)

	// write a byte into the first nametable through PPUDATA
	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)
	p.WriteRegister(0x2007, 0xaa)

	// nametable reads go through the one byte read buffer. the first read
	// returns stale data and the second the real value
	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)
	_ = p.ReadRegister(0x2007)
	test.Equate(t, p.ReadRegister(0x2007), 0xaa)
}

func TestDataIncrement(t *testing.T) {
	p := newPPU(t)

	// increment of 32 walks down a column of the nametable
	p.WriteRegister(0x2000, 0x04)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x01)
	p.WriteRegister(0x2007, 0x02)

	p.WriteRegister(0x2000, 0x00)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x20)
	_ = p.ReadRegister(0x2007)
	test.Equate(t, p.ReadRegister(0x2007), 0x02)
}

func TestWriteLatchReset(t *testing.T) {
	p := newPPU(t)

	// half an address write leaves the shared latch in its second state.
	// reading PPUSTATUS resets it, so the next write is a high byte again
	p.WriteRegister(0x2006, 0x3f)
	_ = p.ReadRegister(0x2002)

	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)
	p.WriteRegister(0x2007, 0x55)

	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)
	_ = p.ReadRegister(0x2007)
	test.Equate(t, p.ReadRegister(0x2007), 0x55)
}

func TestPaletteMirroring(t *testing.T) {
	p := newPPU(t)

	// 0x3f10 is a mirror of 0x3f00. palette reads bypass the read buffer
	p.WriteRegister(0x2006, 0x3f)
	p.WriteRegister(0x2006, 0x10)
	p.WriteRegister(0x2007, 0x21)

	p.WriteRegister(0x2006, 0x3f)
	p.WriteRegister(0x2006, 0x00)
	test.Equate(t, p.ReadRegister(0x2007), 0x21)
}

func TestOAMAccess(t *testing.T) {
	p := newPPU(t)

	// writes through OAMDATA increment the address, reads do not
	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0x40)
	p.WriteRegister(0x2004, 0x41)

	p.WriteRegister(0x2003, 0x10)
	test.Equate(t, p.ReadRegister(0x2004), 0x40)
	test.Equate(t, p.ReadRegister(0x2004), 0x40)

	p.WriteRegister(0x2003, 0x11)
	test.Equate(t, p.ReadRegister(0x2004), 0x41)
}

func TestBusLatch(t *testing.T) {
	p := newPPU(t)

	// reads of write only registers return the last value written to any
	// register
	p.WriteRegister(0x2001, 0x1e)
	test.Equate(t, p.ReadRegister(0x2000), 0x1e)
	test.Equate(t, p.ReadRegister(0x2005), 0x1e)

	// the low five bits of PPUSTATUS are also stale bus contents
	test.Equate(t, p.ReadRegister(0x2002)&0x1f, 0x1e)
}
