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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/sidegate/famicore/modalflag"
	"github.com/sidegate/famicore/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.Equate(t, *testFlag, false)

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")

	test.Equate(t, *testFlag, true)
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"debug", "cartridge.nes"})
	md.AddSubModes("RUN", "DEBUG", "DISASM")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "DEBUG")

	md.NewMode()
	p, err = md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.GetArg(0), "cartridge.nes")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"cartridge.nes"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)

	// no sub-mode was specified so the default is selected and the argument
	// is left for the next layer
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	p, err = md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.GetArg(0), "cartridge.nes")
}
