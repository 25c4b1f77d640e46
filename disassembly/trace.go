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

	"github.com/sidegate/famicore/hardware/cpu"
	"github.com/sidegate/famicore/hardware/cpu/instructions"
)

// peek a 16 bit value. used for indirect address resolution
func peek16(mem Peeker, address uint16) uint16 {
	lo := mem.Peek(address)
	hi := mem.Peek(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// operand in the rich form used by the nestest log. indexed targets are
// resolved and the byte stored at the effective address is included.
func traceOperand(e *Entry, mc *cpu.CPU, mem Peeker) string {
	switch e.Defn.AddressingMode {
	case instructions.Implied:
		if accumulatorIdiom(e.Defn.OpCode) {
			return "A"
		}
		return ""

	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", e.Operand)

	case instructions.Relative:
		return fmt.Sprintf("$%04X", e.Address+2+uint16(int8(e.Operand)))

	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X = %02X", e.Operand, mem.Peek(e.Operand))

	case instructions.ZeroPageIndexedX:
		target := uint16(uint8(e.Operand) + mc.X.Value())
		return fmt.Sprintf("$%02X,X @ %02X = %02X", e.Operand, target, mem.Peek(target))

	case instructions.ZeroPageIndexedY:
		target := uint16(uint8(e.Operand) + mc.Y.Value())
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", e.Operand, target, mem.Peek(target))

	case instructions.IndexedIndirect:
		indirect := uint8(e.Operand) + mc.X.Value()
		lo := mem.Peek(uint16(indirect))
		hi := mem.Peek(uint16(uint8(indirect + 1)))
		target := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", e.Operand, indirect, target, mem.Peek(target))

	case instructions.IndirectIndexed:
		lo := mem.Peek(e.Operand)
		hi := mem.Peek(uint16(uint8(e.Operand + 1)))
		base := uint16(hi)<<8 | uint16(lo)
		target := base + uint16(mc.Y.Value())
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", e.Operand, base, target, mem.Peek(target))

	case instructions.Absolute:
		switch e.Defn.Effect {
		case instructions.Flow, instructions.Subroutine:
			return fmt.Sprintf("$%04X", e.Operand)
		}
		return fmt.Sprintf("$%04X = %02X", e.Operand, mem.Peek(e.Operand))

	case instructions.AbsoluteIndexedX:
		target := e.Operand + uint16(mc.X.Value())
		return fmt.Sprintf("$%04X,X @ %04X = %02X", e.Operand, target, mem.Peek(target))

	case instructions.AbsoluteIndexedY:
		target := e.Operand + uint16(mc.Y.Value())
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", e.Operand, target, mem.Peek(target))

	case instructions.Indirect:
		// the 6502 cannot cross a page boundary when reading the indirect
		// address. the trace shows the address that will really be jumped to
		var target uint16
		if e.Operand&0x00ff == 0x00ff {
			lo := mem.Peek(e.Operand)
			hi := mem.Peek(e.Operand & 0xff00)
			target = uint16(hi)<<8 | uint16(lo)
		} else {
			target = peek16(mem, e.Operand)
		}
		return fmt.Sprintf("($%04X) = %04X", e.Operand, target)
	}

	return ""
}

// Trace returns the instruction at the current program counter in the format
// used by the nestest log:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD
//
// Undocumented instructions are marked with a leading asterisk, as they are
// in the reference logs.
func Trace(mc *cpu.CPU, mem Peeker) (string, error) {
	e, err := Decode(mem, mc.PC.Address())
	if err != nil {
		return "", err
	}

	mnemonic := e.Mnemonic()
	if e.Defn.Operator.IsUndocumented() {
		mnemonic = "*" + mnemonic
	}

	asm := strings.TrimRight(fmt.Sprintf("%04X  %-8s %4s %s",
		e.Address, e.Bytecode(), mnemonic, traceOperand(e, mc, mem)), " ")

	return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		asm, mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value()), nil
}
