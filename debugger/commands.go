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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/disassembly"
	"github.com/sidegate/famicore/hardware"
	"github.com/sidegate/famicore/logger"
)

const helpText = `STEP [n]        execute n instructions (default 1)
TRACE [n]       like STEP but print a trace line per instruction
FRAME [n]       run to the end of the nth next frame (default 1)
RUN             run until a breakpoint or ctrl-c
BREAK <addr>    halt RUN when the PC reaches addr
LIST            list breakpoints
CLEAR           remove all breakpoints
STEPBACK        undo the most recent stepping command
CPU / PPU / APU print subsystem state
MEM <addr> [n]  dump n rows of 16 bytes (default 8)
POKE <addr> <v> write v to memory, without bus side effects
DISASM [n]      disassemble n instructions from the PC (default 16)
MEMVIZ [file]   write a graphviz map of the console to file
LOG             print the emulation log
RESET           reset the console
QUIT            leave the debugger`

// number of instructions between expensive checks in the RUN loop
const runCheckPeriod = hardware.PerformanceBrake

func parseValue(token string, bitSize int) (uint64, error) {
	token = strings.TrimPrefix(strings.TrimPrefix(token, "$"), "0x")
	v, err := strconv.ParseUint(token, 16, bitSize)
	if err != nil {
		return 0, curated.Errorf("debugger: not a valid value (%s)", token)
	}
	return v, nil
}

// optional decimal count argument. returns def when the argument is absent.
func parseCount(tokens []string, idx int, def int) (int, error) {
	if len(tokens) <= idx {
		return def, nil
	}
	v, err := strconv.Atoi(tokens[idx])
	if err != nil || v < 1 {
		return 0, curated.Errorf("debugger: not a valid count (%s)", tokens[idx])
	}
	return v, nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	switch strings.ToUpper(tokens[0]) {
	case "HELP":
		dbg.trm.termPrintLine(helpText)

	case "STEP":
		n, err := parseCount(tokens, 1, 1)
		if err != nil {
			return err
		}
		return dbg.step(n, false)

	case "TRACE":
		n, err := parseCount(tokens, 1, 1)
		if err != nil {
			return err
		}
		return dbg.step(n, true)

	case "FRAME":
		n, err := parseCount(tokens, 1, 1)
		if err != nil {
			return err
		}
		return dbg.frame(n)

	case "RUN":
		return dbg.run()

	case "BREAK":
		if len(tokens) < 2 {
			return curated.Errorf("debugger: BREAK requires an address")
		}
		addr, err := parseValue(tokens[1], 16)
		if err != nil {
			return err
		}
		dbg.breakpoints[uint16(addr)] = true

	case "LIST":
		if len(dbg.breakpoints) == 0 {
			dbg.trm.termPrintLine("no breakpoints")
		}
		for addr := range dbg.breakpoints {
			dbg.trm.termPrintLine("break on PC=$%04X", addr)
		}

	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)

	case "STEPBACK", "UNDO":
		if dbg.undo == nil {
			return curated.Errorf("debugger: nothing to step back to")
		}
		dbg.console.Plumb(dbg.undo)
		dbg.trm.termPrintLine("stepped back")

	case "CPU":
		dbg.trm.termPrintLine(dbg.console.CPU.String())

	case "PPU":
		dbg.trm.termPrintLine(dbg.console.PPU.String())

	case "APU":
		dbg.trm.termPrintLine(dbg.console.APU.String())

	case "MEM":
		if len(tokens) < 2 {
			return curated.Errorf("debugger: MEM requires an address")
		}
		addr, err := parseValue(tokens[1], 16)
		if err != nil {
			return err
		}
		rows, err := parseCount(tokens, 2, 8)
		if err != nil {
			return err
		}
		dbg.memDump(uint16(addr), rows)

	case "POKE":
		if len(tokens) < 3 {
			return curated.Errorf("debugger: POKE requires an address and a value")
		}
		addr, err := parseValue(tokens[1], 16)
		if err != nil {
			return err
		}
		val, err := parseValue(tokens[2], 8)
		if err != nil {
			return err
		}
		dbg.console.Mem.Poke(uint16(addr), uint8(val))

	case "DISASM":
		n, err := parseCount(tokens, 1, 16)
		if err != nil {
			return err
		}
		dbg.disasm(n)

	case "MEMVIZ":
		filename := "memviz.dot"
		if len(tokens) > 1 {
			filename = tokens[1]
		}
		return dbg.memviz(filename)

	case "LOG":
		logger.Write(dbg.trm.output)

	case "RESET":
		dbg.undo = nil
		return dbg.console.Reset()

	case "QUIT", "EXIT":
		dbg.quit = true

	default:
		return curated.Errorf("debugger: unknown command (%s)", tokens[0])
	}

	return nil
}

func (dbg *Debugger) step(n int, trace bool) error {
	dbg.recordUndo()

	for i := 0; i < n; i++ {
		if trace {
			line, err := disassembly.Trace(dbg.console.CPU, dbg.console.Mem)
			if err != nil {
				return err
			}
			dbg.trm.termPrintLine(line)
		}

		err := dbg.console.Step(nil)
		if err != nil {
			return err
		}

		if dbg.trm.interrupted() {
			break
		}
	}

	return nil
}

func (dbg *Debugger) frame(n int) error {
	dbg.recordUndo()

	return dbg.console.RunForFrameCount(n, func(frame int) (bool, error) {
		return !dbg.trm.interrupted(), nil
	})
}

func (dbg *Debugger) run() error {
	dbg.recordUndo()

	check := 0

	err := dbg.console.Run(func() (bool, error) {
		if dbg.breakpoints[dbg.console.CPU.PC.Address()] {
			dbg.trm.termPrintLine("break on PC=$%04X", dbg.console.CPU.PC.Address())
			return false, nil
		}

		check++
		if check >= runCheckPeriod {
			check = 0
			if dbg.trm.interrupted() {
				return false, nil
			}
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (dbg *Debugger) memDump(addr uint16, rows int) {
	for r := 0; r < rows; r++ {
		s := strings.Builder{}
		for i := 0; i < 16; i++ {
			s.WriteString(fmt.Sprintf("%02X ", dbg.console.Mem.Peek(addr+uint16(r*16+i))))
		}
		dbg.trm.termPrintLine("%04X: %s", addr+uint16(r*16), strings.TrimSpace(s.String()))
	}
}

func (dbg *Debugger) disasm(n int) {
	addr := dbg.console.CPU.PC.Address()

	for i := 0; i < n; i++ {
		e, err := disassembly.Decode(dbg.console.Mem, addr)
		if err != nil {
			dbg.trm.termPrintLine("%04X  .byte $%02X", addr, dbg.console.Mem.Peek(addr))
			addr++
			continue
		}
		dbg.trm.termPrintLine(e.String())
		addr += uint16(e.Defn.Bytes)
	}
}

// write a graphviz visualisation of the console's memory layout. the output
// can be converted to an image with the dot tool
func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.console)
	dbg.trm.termPrintLine("console map written to %s", filename)

	return nil
}
