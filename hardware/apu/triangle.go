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

// the 32 step waveform that gives the triangle channel its name
var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// triangle has no volume control. It is silenced through the length counter
// or the linear counter, both of which must be non-zero for output.
type triangle struct {
	enabled bool

	timerPeriod uint16
	timerValue  uint16
	dutyValue   uint8

	lengthHalt  bool
	lengthValue uint8

	linearReload bool
	linearPeriod uint8
	linearValue  uint8
}

func (t *triangle) writeLinearControl(data uint8) {
	t.lengthHalt = data&0x80 == 0x80
	t.linearPeriod = data & 0x7f
}

func (t *triangle) writeTimerLow(data uint8) {
	t.timerPeriod = (t.timerPeriod & 0xff00) | uint16(data)
}

func (t *triangle) writeTimerHigh(data uint8) {
	t.timerPeriod = (t.timerPeriod & 0x00ff) | (uint16(data&0x07) << 8)
	t.lengthValue = lengthTable[(data>>3)&0x1f]
	t.linearReload = true
	t.dutyValue = 0
}

// the triangle timer runs at the full CPU clock, twice the rate of the
// other channels
func (t *triangle) stepTimer() {
	if t.timerValue == 0 {
		t.timerValue = t.timerPeriod
		if t.lengthValue > 0 && t.linearValue > 0 {
			t.dutyValue = (t.dutyValue + 1) % 32
		}
	} else {
		t.timerValue--
	}
}

func (t *triangle) stepLength() {
	if !t.lengthHalt && t.lengthValue > 0 {
		t.lengthValue--
	}
}

func (t *triangle) stepLinear() {
	if t.linearReload {
		t.linearValue = t.linearPeriod
	} else if t.linearValue > 0 {
		t.linearValue--
	}
	if !t.lengthHalt {
		t.linearReload = false
	}
}

func (t *triangle) output() uint8 {
	if !t.enabled {
		return 0
	}
	if t.lengthValue == 0 || t.linearValue == 0 {
		return 0
	}
	return triangleTable[t.dutyValue]
}
