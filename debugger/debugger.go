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
	"errors"
	"io"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/disassembly"
	"github.com/sidegate/famicore/hardware"
)

// Debugger is the line-oriented monitor.
type Debugger struct {
	console *hardware.Console
	trm     *terminal

	// PC values that halt the RUN command
	breakpoints map[uint16]bool

	// state captured before the most recent stepping command. restored by
	// the STEPBACK command. one slot only
	undo *hardware.State

	// set by the QUIT command
	quit bool
}

// NewDebugger creates everything required for a debugging session.
func NewDebugger(cartload cartridgeloader.Loader) (*Debugger, error) {
	dbg := &Debugger{
		console:     hardware.NewConsole(),
		trm:         &terminal{},
		breakpoints: make(map[uint16]bool),
	}

	err := dbg.console.AttachCartridge(cartload)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main debugging loop. Returns when the user quits.
func (dbg *Debugger) Start() error {
	err := dbg.trm.initialise()
	if err != nil {
		return err
	}
	defer dbg.trm.cleanUp()

	dbg.trm.termPrintLine("Famicore debugger. type HELP for commands")

	for !dbg.quit {
		input, err := dbg.trm.termRead(dbg.prompt())

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, UserInterrupt) {
				continue
			}
			return err
		}

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.trm.termPrintLine("* %s", err)
		}
	}

	return nil
}

// the prompt shows the instruction about to be executed.
func (dbg *Debugger) prompt() string {
	e, err := disassembly.Decode(dbg.console.Mem, dbg.console.CPU.PC.Address())
	if err != nil {
		return "[ ??? ] > "
	}
	return "[ " + e.String() + " ] > "
}

// record the current state so the stepping command about to run can be
// undone with STEPBACK.
func (dbg *Debugger) recordUndo() {
	dbg.undo = dbg.console.Snapshot()
}
