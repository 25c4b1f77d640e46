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
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/sidegate/famicore/curated"
)

// UserInterrupt is returned by termRead() when the user has interrupted
// input rather than supplying a line.
const UserInterrupt = "user interrupt"

// terminal wraps stdin/stdout with the termios handling needed for cbreak
// input. cbreak mode turns off canonical line buffering and echo so the
// terminal must echo and line-edit by hand.
type terminal struct {
	input  *os.File
	output *os.File

	// terminal attributes on entry, restored by cleanUp()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// interrupt signals from the operating system. monitored during reads
	// and during long running commands
	intChan chan os.Signal
}

func (trm *terminal) initialise() error {
	trm.input = os.Stdin
	trm.output = os.Stdout

	err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	err = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	// ctrl-c generates SIGINT even in cbreak mode. it halts a running
	// emulation or abandons the current line of input, it never kills the
	// process
	trm.intChan = make(chan os.Signal, 1)
	signal.Notify(trm.intChan, os.Interrupt)

	return nil
}

// restore the terminal to canonical mode.
func (trm *terminal) cleanUp() {
	signal.Stop(trm.intChan)
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
}

func (trm *terminal) termPrintLine(s string, a ...interface{}) {
	trm.output.WriteString(fmt.Sprintf(s, a...))
	trm.output.WriteString("\n")
}

// interrupted returns true if an operating system interrupt has been
// received since the last check. used by long running commands.
func (trm *terminal) interrupted() bool {
	select {
	case <-trm.intChan:
		return true
	default:
	}
	return false
}

// termRead reads a line of input, echoing and handling backspace manually
// because the terminal is in cbreak mode. io.EOF is returned on ctrl-d and
// a curated UserInterrupt on ctrl-c.
func (trm *terminal) termRead(prompt string) (string, error) {
	trm.output.WriteString(prompt)

	line := strings.Builder{}
	buf := make([]byte, 1)

	for {
		_, err := trm.input.Read(buf)
		if err != nil {
			return "", err
		}

		// an interrupt may have arrived while the read was blocked
		if trm.interrupted() {
			trm.output.WriteString("\n")
			return "", curated.Errorf(UserInterrupt)
		}

		switch buf[0] {
		case '\n', '\r':
			trm.output.WriteString("\n")
			return line.String(), nil

		case 0x04: // ctrl-d
			trm.output.WriteString("\n")
			return "", io.EOF

		case 0x7f, 0x08: // backspace
			if line.Len() > 0 {
				s := line.String()
				line.Reset()
				line.WriteString(s[:len(s)-1])
				trm.output.WriteString("\b \b")
			}

		default:
			// ignore remaining control characters
			if buf[0] < 0x20 {
				continue
			}
			line.WriteByte(buf[0])
			trm.output.Write(buf)
		}
	}
}
