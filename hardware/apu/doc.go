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

// Package apu implements the audio half of the 2A03. The emulation is
// deliberately coarse. The two pulse channels, the triangle channel and the
// noise channel are implemented fully enough to make recognisable sound and
// to drive the frame counter IRQ. The DMC is register storage and DAC level
// only; it never fetches samples from memory.
//
// Step() must be called once per CPU cycle. The pulse and noise timers run
// at half the CPU clock and the triangle timer at the full clock. The frame
// counter runs at 240Hz and sequences the envelope, sweep and length
// counter units in either the four or five step pattern selected through
// register 0x4017.
//
// Mixed output samples are published through the SampleTrigger interface at
// the rate set with SetSampleFrequency(). Each sample is a single float32
// in the range 0 to 1, produced by the standard lookup table approximation
// of the NES mixer network.
package apu
