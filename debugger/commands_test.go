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

package debugger

import (
	"testing"

	"github.com/sidegate/famicore/test"
)

func TestParseValue(t *testing.T) {
	v, err := parseValue("8000", 16)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 0x8000)

	v, err = parseValue("$c000", 16)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 0xc000)

	v, err = parseValue("0xff", 8)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(v), 0xff)

	// out of range for the requested width
	_, err = parseValue("100", 8)
	test.ExpectedFailure(t, err)

	_, err = parseValue("wobbly", 16)
	test.ExpectedFailure(t, err)
}

func TestParseCount(t *testing.T) {
	n, err := parseCount([]string{"STEP"}, 1, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 1)

	n, err = parseCount([]string{"STEP", "10"}, 1, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 10)

	_, err = parseCount([]string{"STEP", "0"}, 1, 1)
	test.ExpectedFailure(t, err)

	_, err = parseCount([]string{"STEP", "ten"}, 1, 1)
	test.ExpectedFailure(t, err)
}
