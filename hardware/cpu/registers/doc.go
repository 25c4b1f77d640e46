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

// Package registers implements the registers found in the 2A03 core. The
// general purpose Register type is used for the accumulator and the index
// registers, with distinct types for the program counter, the stack pointer
// and the status register.
//
// Arithmetic helpers on the Register type return carry and overflow states
// rather than touching the status register directly. It is up to the CPU to
// fold those results into the status flags.
package registers
