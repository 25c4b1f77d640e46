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
	"fmt"

	"github.com/sidegate/famicore/hardware/cartridge"
)

// PPU implements the 2C02 picture processor.
type PPU struct {
	cart *cartridge.Cartridge

	// position of the beam. Dot counts from 0 to 340 along a scanline and
	// Scanline counts from 0 to 261 down the frame
	Dot      int
	Scanline int
	Frame    int

	// PPU local memory. the nametable RAM is the 2KB on the console
	// motherboard. four screen cartridges would carry their own RAM but the
	// mirroring table folds everything into these 2KB regardless
	nametable [2048]uint8
	palette   [32]uint8
	oam       [256]uint8

	// completed frames are swapped into front and published through the
	// frame trigger. rendering always happens into back
	front *Framebuffer
	back  *Framebuffer

	frameTrigger FrameTrigger

	// the value of the most recent register write. reads from write-only
	// registers see this value (the PPU's data bus decays far more slowly
	// than one instruction so a simple latch is accurate enough)
	busLatch uint8

	// loopy registers. vramAddr is the live VRAM address used both by
	// rendering and by PPUDATA access. tmpAddr is the latched address that
	// PPUCTRL/PPUSCROLL/PPUADDR build up
	vramAddr   uint16
	tmpAddr    uint16
	fineX      uint8
	writeLatch bool
	oddFrame   bool

	// background fetch pipeline
	ntByte   uint8
	atByte   uint8
	loTile   uint8
	hiTile   uint8
	tileData uint64

	// sprites selected for the current scanline
	sprCount      int
	sprPatterns   [8]uint32
	sprPositions  [8]uint8
	sprPriorities [8]uint8
	sprIndexes    [8]uint8

	// PPUCTRL
	baseNametable  uint8
	largeIncrement bool
	sprTable       uint8
	bgTable        uint8
	largeSprites   bool
	masterSlave    bool
	nmiEnable      bool

	// PPUMASK
	greyscale   bool
	showLeftBg  bool
	showLeftSpr bool
	showBg      bool
	showSprites bool
	emphasis    uint8

	// PPUSTATUS
	spriteOverflow bool
	spriteZeroHit  bool
	vblank         bool

	// OAMADDR
	oamAddr uint8

	// PPUDATA read buffer
	readBuffer uint8

	// NMI edge detection. nmiPending is set on the rising edge of
	// (nmiEnable AND vblank) and cleared when the console acknowledges it
	nmiPending  bool
	nmiPrevious bool
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// cartridge is needed for CHR access during rendering.
func NewPPU(cart *cartridge.Cartridge) *PPU {
	ppu := &PPU{
		cart:  cart,
		front: &Framebuffer{},
		back:  &Framebuffer{},
	}
	ppu.Reset()
	return ppu
}

// Snapshot creates a copy of the PPU in its current state.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	f := *ppu.front
	b := *ppu.back
	n.front = &f
	n.back = &b
	return &n
}

// Plumb a new cartridge reference into the PPU. Everything else in the
// snapshot remains as it was.
func (ppu *PPU) Plumb(cart *cartridge.Cartridge) {
	ppu.cart = cart
}

// AttachFrameTrigger registers the implementation to be notified at the end
// of every frame. A nil value detaches the current trigger.
func (ppu *PPU) AttachFrameTrigger(ft FrameTrigger) {
	ppu.frameTrigger = ft
}

// Reset the PPU to its power on state. Register contents are cleared and the
// beam is placed just before the start of the vertical blanking period,
// matching the amount of warm up time the real chip needs before it honours
// register writes.
func (ppu *PPU) Reset() {
	ppu.Dot = 340
	ppu.Scanline = 240
	ppu.Frame = 0

	ppu.writeControl(0)
	ppu.writeMask(0)
	ppu.oamAddr = 0

	ppu.vramAddr = 0
	ppu.tmpAddr = 0
	ppu.fineX = 0
	ppu.writeLatch = false
	ppu.oddFrame = false

	ppu.vblank = false
	ppu.spriteZeroHit = false
	ppu.spriteOverflow = false
	ppu.nmiPending = false
	ppu.nmiPrevious = false
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("dot=%d scanline=%d frame=%d v=%#04x t=%#04x x=%d",
		ppu.Dot, ppu.Scanline, ppu.Frame, ppu.vramAddr, ppu.tmpAddr, ppu.fineX)
}

// Framebuffer returns the most recently completed frame.
func (ppu *PPU) Framebuffer() *Framebuffer {
	return ppu.front
}

// CheckNMI returns true if an NMI edge has occurred since the last call. The
// pending state is cleared, so each edge is reported exactly once.
func (ppu *PPU) CheckNMI() bool {
	if ppu.nmiPending {
		ppu.nmiPending = false
		return true
	}
	return false
}

// nmiChange must be called whenever nmiEnable or vblank changes. only the
// rising edge of the combined signal raises an NMI, so disabling and then
// re-enabling NMIs during a single blank period fires a second interrupt
// while a level triggered implementation would not
func (ppu *PPU) nmiChange() {
	nmi := ppu.nmiEnable && ppu.vblank
	if nmi && !ppu.nmiPrevious {
		ppu.nmiPending = true
	}
	ppu.nmiPrevious = nmi
}

func (ppu *PPU) renderingEnabled() bool {
	return ppu.showBg || ppu.showSprites
}

// advance the beam one dot, wrapping at the end of the scanline and the end
// of the frame. the final dot of the pre-render line is skipped on odd
// frames when rendering is enabled
func (ppu *PPU) advance() error {
	if ppu.renderingEnabled() && ppu.oddFrame &&
		ppu.Scanline == PrerenderLine && ppu.Dot == DotsPerLine-2 {
		ppu.Dot = 0
		ppu.Scanline = 0
		ppu.Frame++
		ppu.oddFrame = !ppu.oddFrame
		return nil
	}

	ppu.Dot++
	if ppu.Dot >= DotsPerLine {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline >= LinesPerFrame {
			ppu.Scanline = 0
			ppu.Frame++
			ppu.oddFrame = !ppu.oddFrame
		}
	}

	return nil
}

// Step advances the PPU by one dot. The returned error can only originate
// from an attached FrameTrigger.
func (ppu *PPU) Step() error {
	if err := ppu.advance(); err != nil {
		return err
	}

	renderLine := ppu.Scanline < VisibleLines || ppu.Scanline == PrerenderLine
	visibleLine := ppu.Scanline < VisibleLines
	visibleDot := ppu.Dot >= 1 && ppu.Dot <= 256
	fetchDot := visibleDot || (ppu.Dot >= 321 && ppu.Dot <= 336)

	if ppu.renderingEnabled() {
		if visibleLine && visibleDot {
			ppu.renderPixel()
		}

		// the background pipeline fetches one byte every two dots and
		// completes a full tile every eight
		if renderLine && fetchDot {
			ppu.tileData <<= 4
			switch ppu.Dot % 8 {
			case 1:
				ppu.fetchNametableByte()
			case 3:
				ppu.fetchAttributeByte()
			case 5:
				ppu.fetchLoTileByte()
			case 7:
				ppu.fetchHiTileByte()
			case 0:
				ppu.reloadShifters()
			}
		}

		if ppu.Scanline == PrerenderLine && ppu.Dot >= 280 && ppu.Dot <= 304 {
			ppu.copyVertical()
		}

		if renderLine {
			if fetchDot && ppu.Dot%8 == 0 {
				ppu.incrementCoarseX()
			}
			if ppu.Dot == 256 {
				ppu.incrementY()
			}
			if ppu.Dot == 257 {
				ppu.copyHorizontal()
			}
		}

		// sprite evaluation for the next scanline happens in one go at dot
		// 257 rather than being spread over the line like the real chip.
		// the observable results (the 8 sprite limit, the overflow flag
		// and sprite zero hits) are the same
		if ppu.Dot == 257 {
			if visibleLine {
				ppu.evaluateSprites()
			} else {
				ppu.sprCount = 0
			}
		}
	}

	if ppu.Scanline == VBlankScanline && ppu.Dot == 1 {
		if err := ppu.beginVBlank(); err != nil {
			return err
		}
	}

	if ppu.Scanline == PrerenderLine && ppu.Dot == 1 {
		ppu.vblank = false
		ppu.nmiChange()
		ppu.spriteZeroHit = false
		ppu.spriteOverflow = false
	}

	return nil
}

// beginVBlank swaps the framebuffers, raises the vblank flag and notifies
// the frame trigger.
func (ppu *PPU) beginVBlank() error {
	ppu.front, ppu.back = ppu.back, ppu.front
	ppu.vblank = true
	ppu.nmiChange()

	if ppu.frameTrigger != nil {
		return ppu.frameTrigger.NewFrame(ppu.front)
	}
	return nil
}
