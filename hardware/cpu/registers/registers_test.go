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

package registers_test

import (
	"testing"

	"github.com/sidegate/famicore/hardware/cpu/registers"
	"github.com/sidegate/famicore/test"
)

func TestRegisterArithmetic(t *testing.T) {
	r := registers.NewRegister(0, "test")
	test.Equate(t, r.IsZero(), true)

	carry, overflow := r.Add(1, false)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, false)
	test.Equate(t, r.Value(), 1)

	// 0x7f + 0x01 overflows into the sign bit
	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r.IsNegative(), true)

	// 0xff + 0x01 wraps around with carry
	r.Load(0xff)
	carry, overflow = r.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r.IsZero(), true)
}

func TestRegisterSubtract(t *testing.T) {
	r := registers.NewRegister(0x50, "test")

	// subtract with carry set means no borrow
	carry, overflow := r.Subtract(0x10, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r.Value(), 0x40)

	// subtracting a larger value clears carry (borrow occurred)
	r.Load(0x10)
	carry, _ = r.Subtract(0x20, true)
	test.Equate(t, carry, false)
	test.Equate(t, r.Value(), 0xf0)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "test")

	test.Equate(t, r.ASL(), true)
	test.Equate(t, r.Value(), 0x02)

	test.Equate(t, r.LSR(), false)
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, r.LSR(), true)
	test.Equate(t, r.IsZero(), true)

	r.Load(0x80)
	test.Equate(t, r.ROL(true), true)
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, r.ROR(false), true)
	test.Equate(t, r.IsZero(), true)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.Equate(t, sp.Address(), 0x01fd)

	// stack pointer wraps inside page one
	sp.Load(0x00)
	sp.Add(0xff, false)
	test.Equate(t, sp.Address(), 0x01ff)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	pc.Add(1)
	test.Equate(t, pc.Address(), 0xffff)

	// program counter wraps at the top of memory
	pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// unused bit is always set in uint8 context
	test.Equate(t, sr.Value(), 0x20)

	sr.Carry = true
	sr.Zero = true
	test.Equate(t, sr.Value(), 0x23)

	sr.Load(0xff)
	test.Equate(t, sr.Sign, true)
	test.Equate(t, sr.Overflow, true)
	test.Equate(t, sr.Decimal, true)
	test.Equate(t, sr.Value(), 0xff)

	sr.Reset()
	test.Equate(t, sr.InterruptDisable, true)
	test.Equate(t, sr.Carry, false)
}
