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

// Package clocks defines the constant values that describe the clock tree of
// the NTSC NES. The master crystal is divided by 12 for the CPU and by 4 for
// the PPU, giving the fixed ratio of three PPU dots per CPU cycle that the
// emulation is built around.
package clocks

// Clock speeds in MHz.
const (
	NTSCMaster = 21.477272
	NTSCCpu    = NTSCMaster / 12
	NTSCPpu    = NTSCMaster / 4
)

// NTSCCpuHz is the CPU clock as an integer cycles-per-second value. Used
// where cycle counts are converted to and from wall clock time (audio
// sampling, frame pacing).
const NTSCCpuHz = 1789773

// DotsPerCycle is the number of PPU dots per CPU cycle. Fixed for every
// console variant this emulation supports.
const DotsPerCycle = 3

// NTSCFramesPerSecond is the exact refresh rate of the NTSC console. The
// fractional part matters when measuring emulation performance against the
// real machine.
const NTSCFramesPerSecond = 60.0988
