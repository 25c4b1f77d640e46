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

// dmc is the delta modulation channel, reduced to its registers and the DAC
// level. Sample playback from memory is not implemented but direct writes to
// the DAC through register 0x4011 still reach the mixer, which is how many
// titles play speech and drum samples anyway.
type dmc struct {
	enabled bool

	irqEnabled bool
	loop       bool
	ratePeriod uint8

	// the 7 bit DAC level
	level uint8

	sampleAddress uint16
	sampleLength  uint16
}

func (d *dmc) writeControl(data uint8) {
	d.irqEnabled = data&0x80 == 0x80
	d.loop = data&0x40 == 0x40
	d.ratePeriod = data & 0x0f
}

func (d *dmc) writeLevel(data uint8) {
	d.level = data & 0x7f
}

// %11AAAAAA.AA000000
func (d *dmc) writeSampleAddress(data uint8) {
	d.sampleAddress = 0xc000 | (uint16(data) << 6)
}

// %LLLL.LLLL0001
func (d *dmc) writeSampleLength(data uint8) {
	d.sampleLength = (uint16(data) << 4) | 1
}

func (d *dmc) output() uint8 {
	return d.level
}
