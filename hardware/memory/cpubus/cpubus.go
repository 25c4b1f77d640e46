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

// Package cpubus defines the memory bus as seen from the CPU. Every address
// in the 16 bit address space is readable and writable; addresses that are
// not wired to anything resolve through the open bus rather than failing. For
// this reason the Memory interface has no error returns.
package cpubus

// Memory is the interface from the CPU to memory.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Vector addresses. The CPU reads a 16 bit address from these locations when
// the corresponding event occurs.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares a vector with IRQ
	BRK = IRQ
)
