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

package cpu

import (
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/hardware/memory/cpubus"
)

// NMI services a non-maskable interrupt. The service routine takes seven
// cycles, with cycleCallback called after each one, the same as during
// instruction execution.
//
// It is the responsibility of the caller to only service an interrupt
// between instructions.
func (mc *CPU) NMI(cycleCallback func() error) error {
	return mc.interrupt(cpubus.NMI, cycleCallback)
}

// IRQ services a maskable interrupt. If the interrupt disable flag is set
// the interrupt is not serviced and no cycles are consumed.
//
// As with NMI, it is the responsibility of the caller to only service an
// interrupt between instructions.
func (mc *CPU) IRQ(cycleCallback func() error) error {
	if mc.Status.InterruptDisable {
		return nil
	}
	return mc.interrupt(cpubus.IRQ, cycleCallback)
}

func (mc *CPU) interrupt(vector uint16, cycleCallback func() error) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf("cpu: servicing an interrupt is invalid mid-instruction")
	}

	mc.cycleCallback = cycleCallback
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// two internal cycles while the current opcode fetch is abandoned
	// +2 cycles
	_, err := mc.read8Bit(mc.PC.Address(), true)
	if err != nil {
		return err
	}
	_, err = mc.read8Bit(mc.PC.Address(), true)
	if err != nil {
		return err
	}

	// push MSB of PC onto stack, and decrement SP
	// +1 cycle
	mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()>>8), false)
	mc.SP.Add(0xff, false)
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	// push LSB of PC onto stack, and decrement SP
	// +1 cycle
	mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()), false)
	mc.SP.Add(0xff, false)
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	// push status register with the break bit clear. this is what
	// distinguishes a hardware interrupt from BRK on the stack
	// +1 cycle
	mc.write8Bit(mc.SP.Address(), mc.Status.Value()&^uint8(0x10), false)
	mc.SP.Add(0xff, false)
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	// +2 cycles
	serviceAddress, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(serviceAddress)

	// the CPU is not mid-instruction but the usual finalisation of
	// LastResult has not happened either
	mc.Interrupted = true

	return nil
}
