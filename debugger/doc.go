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

// Package debugger is a line-oriented monitor for the console. It steps the
// emulation an instruction or a frame at a time, formats trace lines in the
// nestest log format, peeks and pokes memory, manages PC breakpoints and can
// undo the most recent stepping command.
//
// Commands are single words with optional arguments. Type HELP at the prompt
// for the list. Numeric arguments are hexadecimal; a leading $ or 0x is
// accepted but not required.
//
// The debugger puts the terminal into cbreak mode for the duration of the
// session so that a running emulation can be halted with a single keypress.
package debugger
