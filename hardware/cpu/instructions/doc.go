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

// Package instructions defines the instruction set of the 2A03. The
// GetDefinitions function returns a table of definitions that can be indexed
// by opcode. Entries for the KIL group of opcodes are nil; executing one of
// those opcodes jams a real CPU and the emulation treats them as undefined.
//
// The table includes the commonly encountered undocumented instructions.
// Undocumented instructions can be distinguished by the String form of the
// Operator field, which is in lower case.
package instructions
