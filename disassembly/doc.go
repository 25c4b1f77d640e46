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

// Package disassembly decodes 2A03 machine code into human readable entries.
//
// The Decode() function disassembles a single instruction from any source of
// memory that implements the Peeker interface. The FromCartridge() function
// performs a linear disassembly of an entire cartridge, which is enough for
// the mapper 0 address space where code and data cannot move around.
//
// The Trace() function formats the instruction at the current program counter
// along with the CPU register state. The format matches the log produced by
// the well known nestest ROM so output can be diffed directly against
// published logs.
package disassembly
