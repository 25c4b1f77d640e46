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

package registers

import "fmt"

// StackPointer is an 8 bit register that always addresses page one of the
// memory map. The stack descends from 0x01ff and wraps around inside the
// page.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: NewRegister(val, "SP"),
	}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%#02x", sp.Value())
}

// Address returns the stack pointer as a page one address.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}
