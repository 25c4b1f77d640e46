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

package apu_test

import (
	"testing"

	"github.com/sidegate/famicore/hardware/apu"
	"github.com/sidegate/famicore/hardware/clocks"
	"github.com/sidegate/famicore/test"
)

func step(t *testing.T, a *apu.APU, cycles int) {
	t.Helper()
	for i := 0; i < cycles; i++ {
		if err := a.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

// enough cycles for three 240Hz frame counter ticks, the point at which the
// four step sequence raises its IRQ
const threeFrameTicks = 23000

func TestFrameIRQ(t *testing.T) {
	a := apu.NewAPU()
	a.WriteRegister(0x4017, 0x00)

	step(t, a, threeFrameTicks)
	test.ExpectedSuccess(t, a.IRQLine())

	// reading the status register lowers the IRQ line
	test.Equate(t, a.ReadRegister(0x4015)&0x40, 0x40)
	test.ExpectedFailure(t, a.IRQLine())
	test.Equate(t, a.ReadRegister(0x4015)&0x40, 0x00)
}

func TestFrameIRQInhibit(t *testing.T) {
	a := apu.NewAPU()
	a.WriteRegister(0x4017, 0x40)

	step(t, a, threeFrameTicks*2)
	test.ExpectedFailure(t, a.IRQLine())
}

func TestStatusLengthCounters(t *testing.T) {
	a := apu.NewAPU()

	// loading a length counter is only audible in the status register when
	// the channel is enabled
	a.WriteRegister(0x4015, 0x01)
	a.WriteRegister(0x4003, 0x08)
	test.Equate(t, a.ReadRegister(0x4015)&0x01, 0x01)

	// disabling the channel zeroes the counter
	a.WriteRegister(0x4015, 0x00)
	test.Equate(t, a.ReadRegister(0x4015)&0x01, 0x00)
}

func TestLengthCountdown(t *testing.T) {
	a := apu.NewAPU()

	// length index 3 loads a counter of 2. without the halt flag the
	// counter reaches zero after two half frame clocks
	a.WriteRegister(0x4015, 0x01)
	a.WriteRegister(0x4000, 0x10)
	a.WriteRegister(0x4003, 0x18)
	test.Equate(t, a.ReadRegister(0x4015)&0x01, 0x01)

	step(t, a, threeFrameTicks)
	test.Equate(t, a.ReadRegister(0x4015)&0x01, 0x00)
}

type sampleCounter struct {
	count int
}

func (sc *sampleCounter) NewSample(level float32) error {
	sc.count++
	return nil
}

func TestSampleRate(t *testing.T) {
	a := apu.NewAPU()
	sc := &sampleCounter{}
	a.AttachSampleTrigger(sc)
	a.SetSampleFrequency(44100)

	const cycles = 17898
	step(t, a, cycles)

	samplePeriod := float64(clocks.NTSCCpuHz) / 44100.0
	expected := int(float64(cycles) / samplePeriod)
	test.Equate(t, sc.count, expected)
}
