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

// Package cpu implements the 2A03 core found in the NES. The 2A03 is a 6502
// with the decimal mode of the ADC and SBC instructions removed (the decimal
// flag itself still exists and can be set and cleared).
//
// The CPU executes one instruction at a time but is cycle accurate within
// the instruction: ExecuteInstruction() calls the supplied callback function
// after every cycle of the instruction, including the phantom reads and
// phantom writes of the longer addressing modes. The rest of the console is
// stepped from inside the callback, which is how the memory state seen by
// each cycle of an instruction is kept honest.
//
// Interrupts are serviced between instructions with the NMI() and IRQ()
// functions. The same cycle callback mechanism applies; a service routine
// takes seven cycles.
//
// The CPU makes no allowances for the NTSC/PAL timing differences; cycle
// ratios to the rest of the console are handled elsewhere.
package cpu
