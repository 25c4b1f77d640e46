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

// length counter values are loaded indirectly. the register value indexes
// this table
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// the four duty cycle patterns selected by the top two bits of the first
// pulse register
var dutyTable = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

// pulse is one of the two square wave channels. The only difference between
// them is the behaviour of a downward sweep, hence the channel field.
type pulse struct {
	channel uint8
	enabled bool

	dutyMode  uint8
	dutyValue uint8

	timerPeriod uint16
	timerValue  uint16

	lengthHalt  bool
	lengthValue uint8

	envelopeEnabled bool
	envelopeLoop    bool
	envelopeStart   bool
	envelopePeriod  uint8
	envelopeValue   uint8
	envelopeVolume  uint8
	constantVolume  uint8

	sweepEnabled bool
	sweepNegate  bool
	sweepReload  bool
	sweepPeriod  uint8
	sweepShift   uint8
	sweepValue   uint8
}

func (p *pulse) writeControl(data uint8) {
	p.dutyMode = (data >> 6) & 3
	p.envelopeLoop = data&0x20 == 0x20
	p.lengthHalt = data&0x20 == 0x20
	p.envelopeEnabled = data&0x10 == 0x00
	p.envelopePeriod = data & 0x0f
	p.constantVolume = data & 0x0f
	p.envelopeStart = true
}

func (p *pulse) writeSweep(data uint8) {
	p.sweepEnabled = data&0x80 == 0x80
	p.sweepPeriod = (data >> 4) & 7
	p.sweepNegate = data&0x08 == 0x08
	p.sweepShift = data & 7
	p.sweepReload = true
}

func (p *pulse) writeTimerLow(data uint8) {
	p.timerPeriod = (p.timerPeriod & 0xff00) | uint16(data)
}

func (p *pulse) writeTimerHigh(data uint8) {
	p.timerPeriod = (p.timerPeriod & 0x00ff) | (uint16(data&0x07) << 8)
	p.lengthValue = lengthTable[(data>>3)&0x1f]
	p.envelopeStart = true
	p.dutyValue = 0
}

func (p *pulse) stepTimer() {
	if p.timerValue == 0 {
		p.timerValue = p.timerPeriod
		p.dutyValue = (p.dutyValue + 1) % 8
	} else {
		p.timerValue--
	}
}

func (p *pulse) stepEnvelope() {
	if p.envelopeStart {
		p.envelopeVolume = 15
		p.envelopeValue = p.envelopePeriod
		p.envelopeStart = false
	} else if p.envelopeValue > 0 {
		p.envelopeValue--
	} else {
		if p.envelopeLoop {
			p.envelopeVolume = 15
		} else if p.envelopeVolume > 0 {
			p.envelopeVolume--
		}
		p.envelopeValue = p.envelopePeriod
	}
}

func (p *pulse) stepSweep() {
	if p.sweepReload {
		if p.sweepEnabled && p.sweepValue == 0 {
			p.sweep()
		}
		p.sweepValue = p.sweepPeriod
		p.sweepReload = false
	} else if p.sweepValue > 0 {
		p.sweepValue--
	} else {
		if p.sweepEnabled {
			p.sweep()
		}
		p.sweepValue = p.sweepPeriod
	}
}

// the first pulse channel's adder uses one's complement negation so a
// downward sweep lands one step short of the second channel's
func (p *pulse) sweep() {
	delta := p.timerPeriod >> p.sweepShift
	if p.sweepNegate {
		p.timerPeriod -= delta
		if p.channel == 1 {
			p.timerPeriod--
		}
	} else {
		p.timerPeriod += delta
	}
}

func (p *pulse) stepLength() {
	if !p.lengthHalt && p.lengthValue > 0 {
		p.lengthValue--
	}
}

func (p *pulse) output() uint8 {
	if !p.enabled {
		return 0
	}
	if p.lengthValue == 0 {
		return 0
	}
	if dutyTable[p.dutyMode][p.dutyValue] == 0 {
		return 0
	}
	if p.timerPeriod < 8 || p.timerPeriod > 0x7ff {
		return 0
	}
	if p.envelopeEnabled {
		return p.envelopeVolume
	}
	return p.constantVolume
}
