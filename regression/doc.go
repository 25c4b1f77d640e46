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

// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// Two types of test are supported. First the digest test. This runs a
// cartridge for a set number of frames, recording a hash of the video and/or
// audio output in the test database. Rerunning the test fails if the hash has
// changed.
//
// The second type is the trace test. This runs a cartridge for a set number
// of instructions and hashes the CPU trace. It catches changes in CPU
// behaviour (cycle counts, flag handling, undocumented opcodes) that may not
// show up on screen for many frames.
//
// The digest type is useful for ROMs that exercise the PPU or APU directly.
// The trace type is more useful for CPU test ROMs.
package regression
