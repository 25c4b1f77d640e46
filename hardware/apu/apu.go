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

package apu

import (
	"fmt"

	"github.com/sidegate/famicore/hardware/clocks"
)

// the frame counter runs at 240Hz regardless of mode
const frameCounterRate = float64(clocks.NTSCCpuHz) / 240.0

// mixer lookup tables. the non-linear mixing network of the real console is
// approximated with the usual formulae
var pulseMixTable [31]float32
var tndMixTable [203]float32

func init() {
	for i := 0; i < 31; i++ {
		pulseMixTable[i] = 95.52 / (8128.0/float32(i) + 100)
	}
	for i := 0; i < 203; i++ {
		tndMixTable[i] = 163.67 / (24329.0/float32(i) + 100)
	}
}

// SampleTrigger implementations receive mixed audio samples as they are
// produced.
type SampleTrigger interface {
	NewSample(level float32) error
}

// Register addresses accepted by ReadRegister()/WriteRegister().
const (
	AddressStatus       = 0x4015
	AddressFrameCounter = 0x4017
)

// APU implements the audio channels and frame counter of the 2A03.
type APU struct {
	pulse1   pulse
	pulse2   pulse
	triangle triangle
	noise    noise
	dmc      dmc

	cycle uint64

	// the frame counter sequences envelopes, sweeps and length counters.
	// framePeriod is 4 or 5 steps per the mode bit of register 0x4017
	framePeriod uint8
	frameValue  uint8
	irqInhibit  bool
	frameIRQ    bool

	sampleTrigger SampleTrigger
	samplePeriod  float64
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	apu := &APU{}
	apu.Reset()
	return apu
}

// Snapshot creates a copy of the APU in its current state.
func (apu *APU) Snapshot() *APU {
	n := *apu
	return &n
}

// Reset the APU to its power on state.
func (apu *APU) Reset() {
	*apu = APU{
		sampleTrigger: apu.sampleTrigger,
		samplePeriod:  apu.samplePeriod,
	}
	apu.pulse1.channel = 1
	apu.pulse2.channel = 2
	apu.noise.shiftRegister = 1
	apu.framePeriod = 4
}

func (apu *APU) String() string {
	return fmt.Sprintf("frame counter: mode=%d step=%d irq=%t; lengths: p1=%d p2=%d tri=%d noise=%d",
		apu.framePeriod, apu.frameValue, apu.frameIRQ,
		apu.pulse1.lengthValue, apu.pulse2.lengthValue,
		apu.triangle.lengthValue, apu.noise.lengthValue)
}

// AttachSampleTrigger registers the implementation to receive mixed audio
// samples. A nil value detaches the current trigger.
func (apu *APU) AttachSampleTrigger(st SampleTrigger) {
	apu.sampleTrigger = st
}

// SetSampleFrequency sets the rate at which samples are sent to the sample
// trigger. A frequency of zero stops sample production entirely.
func (apu *APU) SetSampleFrequency(hz int) {
	if hz <= 0 {
		apu.samplePeriod = 0
		return
	}
	apu.samplePeriod = float64(clocks.NTSCCpuHz) / float64(hz)
}

// IRQLine returns true while the frame counter interrupt flag is raised. The
// flag is level triggered and is lowered by reading the status register.
func (apu *APU) IRQLine() bool {
	return apu.frameIRQ
}

// Step advances the APU by one CPU cycle. The returned error can only
// originate from an attached SampleTrigger.
func (apu *APU) Step() error {
	c1 := apu.cycle
	apu.cycle++
	c2 := apu.cycle

	apu.stepTimers()

	f1 := int(float64(c1) / frameCounterRate)
	f2 := int(float64(c2) / frameCounterRate)
	if f1 != f2 {
		apu.stepFrameCounter()
	}

	if apu.samplePeriod > 0 && apu.sampleTrigger != nil {
		s1 := int(float64(c1) / apu.samplePeriod)
		s2 := int(float64(c2) / apu.samplePeriod)
		if s1 != s2 {
			return apu.sampleTrigger.NewSample(apu.mix())
		}
	}

	return nil
}

// the pulse and noise timers are clocked at half the CPU rate. the triangle
// timer at the full rate
func (apu *APU) stepTimers() {
	if apu.cycle%2 == 0 {
		apu.pulse1.stepTimer()
		apu.pulse2.stepTimer()
		apu.noise.stepTimer()
	}
	apu.triangle.stepTimer()
}

func (apu *APU) stepFrameCounter() {
	if apu.framePeriod == 4 {
		apu.frameValue = (apu.frameValue + 1) % 4
		switch apu.frameValue {
		case 0, 2:
			apu.stepEnvelopes()
		case 1:
			apu.stepEnvelopes()
			apu.stepSweeps()
			apu.stepLengths()
		case 3:
			apu.stepEnvelopes()
			apu.stepSweeps()
			apu.stepLengths()
			if !apu.irqInhibit {
				apu.frameIRQ = true
			}
		}
	} else {
		apu.frameValue = (apu.frameValue + 1) % 5
		switch apu.frameValue {
		case 0, 2:
			apu.stepEnvelopes()
		case 1, 3:
			apu.stepEnvelopes()
			apu.stepSweeps()
			apu.stepLengths()
		}
	}
}

func (apu *APU) stepEnvelopes() {
	apu.pulse1.stepEnvelope()
	apu.pulse2.stepEnvelope()
	apu.noise.stepEnvelope()
	apu.triangle.stepLinear()
}

func (apu *APU) stepSweeps() {
	apu.pulse1.stepSweep()
	apu.pulse2.stepSweep()
}

func (apu *APU) stepLengths() {
	apu.pulse1.stepLength()
	apu.pulse2.stepLength()
	apu.triangle.stepLength()
	apu.noise.stepLength()
}

// mix combines the current channel outputs into a single sample level.
func (apu *APU) mix() float32 {
	p1 := apu.pulse1.output()
	p2 := apu.pulse2.output()
	t := apu.triangle.output()
	n := apu.noise.output()
	d := apu.dmc.output()
	return pulseMixTable[p1+p2] + tndMixTable[3*uint16(t)+2*uint16(n)+uint16(d)]
}

// ReadRegister services a CPU read of an APU register. Only the status
// register is readable. Reading it lowers the frame counter IRQ flag.
func (apu *APU) ReadRegister(address uint16) uint8 {
	if address != AddressStatus {
		return 0
	}

	var status uint8
	if apu.pulse1.lengthValue > 0 {
		status |= 0x01
	}
	if apu.pulse2.lengthValue > 0 {
		status |= 0x02
	}
	if apu.triangle.lengthValue > 0 {
		status |= 0x04
	}
	if apu.noise.lengthValue > 0 {
		status |= 0x08
	}
	if apu.frameIRQ {
		status |= 0x40
	}
	apu.frameIRQ = false

	return status
}

// WriteRegister services a CPU write to an APU register.
func (apu *APU) WriteRegister(address uint16, data uint8) {
	switch address {
	case 0x4000:
		apu.pulse1.writeControl(data)
	case 0x4001:
		apu.pulse1.writeSweep(data)
	case 0x4002:
		apu.pulse1.writeTimerLow(data)
	case 0x4003:
		apu.pulse1.writeTimerHigh(data)
	case 0x4004:
		apu.pulse2.writeControl(data)
	case 0x4005:
		apu.pulse2.writeSweep(data)
	case 0x4006:
		apu.pulse2.writeTimerLow(data)
	case 0x4007:
		apu.pulse2.writeTimerHigh(data)
	case 0x4008:
		apu.triangle.writeLinearControl(data)
	case 0x400a:
		apu.triangle.writeTimerLow(data)
	case 0x400b:
		apu.triangle.writeTimerHigh(data)
	case 0x400c:
		apu.noise.writeControl(data)
	case 0x400e:
		apu.noise.writeTimerPeriod(data)
	case 0x400f:
		apu.noise.writeLength(data)
	case 0x4010:
		apu.dmc.writeControl(data)
	case 0x4011:
		apu.dmc.writeLevel(data)
	case 0x4012:
		apu.dmc.writeSampleAddress(data)
	case 0x4013:
		apu.dmc.writeSampleLength(data)
	case AddressStatus:
		apu.writeStatus(data)
	case AddressFrameCounter:
		apu.writeFrameCounter(data)
	}
}

// writeStatus enables and disables channels. Disabling a channel zeroes its
// length counter, silencing it immediately.
func (apu *APU) writeStatus(data uint8) {
	apu.pulse1.enabled = data&0x01 == 0x01
	apu.pulse2.enabled = data&0x02 == 0x02
	apu.triangle.enabled = data&0x04 == 0x04
	apu.noise.enabled = data&0x08 == 0x08
	apu.dmc.enabled = data&0x10 == 0x10

	if !apu.pulse1.enabled {
		apu.pulse1.lengthValue = 0
	}
	if !apu.pulse2.enabled {
		apu.pulse2.lengthValue = 0
	}
	if !apu.triangle.enabled {
		apu.triangle.lengthValue = 0
	}
	if !apu.noise.enabled {
		apu.noise.lengthValue = 0
	}
}

func (apu *APU) writeFrameCounter(data uint8) {
	if data&0x80 == 0x80 {
		apu.framePeriod = 5
	} else {
		apu.framePeriod = 4
	}
	apu.irqInhibit = data&0x40 == 0x40
	if apu.irqInhibit {
		apu.frameIRQ = false
	}

	// entering five step mode clocks every unit immediately
	if apu.framePeriod == 5 {
		apu.stepEnvelopes()
		apu.stepSweeps()
		apu.stepLengths()
	}
}
