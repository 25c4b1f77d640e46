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

// timer periods for the noise channel, indexed by the low four bits of
// register 0x400e
var noiseTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// noise generates pseudo random output from a 15 bit linear feedback shift
// register. In short mode the feedback tap moves from bit 1 to bit 6, giving
// the buzzier 93 step sequence.
type noise struct {
	enabled   bool
	shortMode bool

	// must never be zero or the LFSR locks up
	shiftRegister uint16

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
}

func (n *noise) writeControl(data uint8) {
	n.lengthHalt = data&0x20 == 0x20
	n.envelopeLoop = data&0x20 == 0x20
	n.envelopeEnabled = data&0x10 == 0x00
	n.envelopePeriod = data & 0x0f
	n.constantVolume = data & 0x0f
	n.envelopeStart = true
}

func (n *noise) writeTimerPeriod(data uint8) {
	n.shortMode = data&0x80 == 0x80
	n.timerPeriod = noiseTable[data&0x0f]
}

func (n *noise) writeLength(data uint8) {
	n.lengthValue = lengthTable[(data>>3)&0x1f]
}

func (n *noise) stepShift() {
	var shift uint16
	if n.shortMode {
		shift = 6
	} else {
		shift = 1
	}
	feedback := (n.shiftRegister & 1) ^ ((n.shiftRegister >> shift) & 1)
	n.shiftRegister = (n.shiftRegister >> 1) | (feedback << 14)
}

func (n *noise) stepTimer() {
	if n.timerValue == 0 {
		n.timerValue = n.timerPeriod
		n.stepShift()
	} else {
		n.timerValue--
	}
}

func (n *noise) stepLength() {
	if !n.lengthHalt && n.lengthValue > 0 {
		n.lengthValue--
	}
}

func (n *noise) stepEnvelope() {
	if n.envelopeStart {
		n.envelopeVolume = 15
		n.envelopeValue = n.envelopePeriod
		n.envelopeStart = false
	} else if n.envelopeValue > 0 {
		n.envelopeValue--
	} else {
		if n.envelopeLoop {
			n.envelopeVolume = 15
		} else if n.envelopeVolume > 0 {
			n.envelopeVolume--
		}
		n.envelopeValue = n.envelopePeriod
	}
}

func (n *noise) output() uint8 {
	if !n.enabled {
		return 0
	}
	if n.lengthValue == 0 {
		return 0
	}
	if n.shiftRegister&1 == 1 {
		return 0
	}
	if n.envelopeEnabled {
		return n.envelopeVolume
	}
	return n.constantVolume
}
