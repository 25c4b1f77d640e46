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

package controllers_test

import (
	"testing"

	"github.com/sidegate/famicore/hardware/controllers"
	"github.com/sidegate/famicore/test"
)

func TestStrobeAndShift(t *testing.T) {
	jp := controllers.NewJoypad()

	jp.Set(controllers.ButtonA, true)
	jp.Set(controllers.ButtonStart, true)

	// latch then release the strobe
	jp.Write(0x01)
	jp.Write(0x00)

	// A, B, select, start, up, down, left, right
	expected := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for i, e := range expected {
		v := jp.Read()
		if v != e {
			t.Errorf("unexpected bit at read %d (%d instead of %d)", i, v, e)
		}
	}

	// further reads return 1
	test.Equate(t, jp.Read(), 1)
	test.Equate(t, jp.Read(), 1)
}

func TestStrobeHeldHigh(t *testing.T) {
	jp := controllers.NewJoypad()
	jp.Set(controllers.ButtonA, true)

	// while the strobe is high every read reports button A
	jp.Write(0x01)
	test.Equate(t, jp.Read(), 1)
	test.Equate(t, jp.Read(), 1)

	jp.Set(controllers.ButtonA, false)
	test.Equate(t, jp.Read(), 0)
}

func TestRelatch(t *testing.T) {
	jp := controllers.NewJoypad()
	jp.Set(controllers.ButtonB, true)

	jp.Write(0x01)
	jp.Write(0x00)

	test.Equate(t, jp.Read(), 0) // A
	test.Equate(t, jp.Read(), 1) // B

	// strobing again restarts the shift sequence
	jp.Write(0x01)
	jp.Write(0x00)
	test.Equate(t, jp.Read(), 0) // A
	test.Equate(t, jp.Read(), 1) // B
}
