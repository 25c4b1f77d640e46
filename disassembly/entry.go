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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/hardware/cpu/instructions"
)

// UndefinedOpcode is returned by Decode when the byte at the requested
// address has no entry in the instruction table.
const UndefinedOpcode = "disassembly: undefined opcode (%#02x) at (%#04x)"

// Peeker is the memory surface an instruction is decoded from. Peek must be
// free of read side effects, an ordinary bus Read would disturb PPU state
// when the program counter strays near the register mirrors.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16
	Defn    *instructions.Definition

	// opcode plus operand bytes, in memory order
	Bytes []uint8

	// raw operand value. not meaningful when Defn.Bytes is 1
	Operand uint16
}

// the shift/rotate instructions that operate on the accumulator. these share
// the Implied addressing mode with true implied instructions
func accumulatorIdiom(opcode uint8) bool {
	switch opcode {
	case 0x0a, 0x2a, 0x4a, 0x6a:
		return true
	}
	return false
}

// Decode a single instruction starting at the specified address.
func Decode(mem Peeker, address uint16) (*Entry, error) {
	opcode := mem.Peek(address)
	defn := instructions.GetDefinitions()[opcode]
	if defn == nil {
		return nil, curated.Errorf(UndefinedOpcode, opcode, address)
	}

	e := &Entry{
		Address: address,
		Defn:    defn,
		Bytes:   []uint8{opcode},
	}

	switch defn.Bytes {
	case 2:
		lo := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, lo)
		e.Operand = uint16(lo)
	case 3:
		lo := mem.Peek(address + 1)
		hi := mem.Peek(address + 2)
		e.Bytes = append(e.Bytes, lo, hi)
		e.Operand = uint16(hi)<<8 | uint16(lo)
	}

	return e, nil
}

// Bytecode returns the opcode and operand bytes as a space separated string.
func (e *Entry) Bytecode() string {
	s := strings.Builder{}
	for _, b := range e.Bytes {
		s.WriteString(fmt.Sprintf("%02X ", b))
	}
	return strings.TrimSpace(s.String())
}

// Mnemonic returns the operator name for the entry.
func (e *Entry) Mnemonic() string {
	return e.Defn.Operator.String()
}

// OperandString formats the operand using conventional 6502 notation. No
// memory is consulted so indexed targets and stored values are not included.
// The Trace() function produces the richer form.
func (e *Entry) OperandString() string {
	switch e.Defn.AddressingMode {
	case instructions.Implied:
		if accumulatorIdiom(e.Defn.OpCode) {
			return "A"
		}
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", e.Operand)
	case instructions.Relative:
		// branch target relative to the following instruction
		return fmt.Sprintf("$%04X", e.Address+2+uint16(int8(e.Operand)))
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", e.Operand)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", e.Operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", e.Operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", e.Operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", e.Operand)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", e.Operand)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", e.Operand)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", e.Operand)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", e.Operand)
	}
	return ""
}

// String returns the decoded instruction in the format:
//
//	8000  4C F5 C5  JMP $C5F5
func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%04X  %-8s  %s %s", e.Address, e.Bytecode(), e.Mnemonic(), e.OperandString()))
}
