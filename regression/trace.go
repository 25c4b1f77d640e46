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

package regression

import (
	"crypto/sha1"
	"fmt"
	"io"
	"strconv"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/database"
	"github.com/sidegate/famicore/disassembly"
	"github.com/sidegate/famicore/hardware"
)

const traceEntryID = "trace"

const (
	traceFieldCartName int = iota
	traceFieldNumSteps
	traceFieldDigest
	numTraceFields
)

// TraceRegression runs a cartridge for a set number of instructions and
// compares a hash of the CPU trace against the recorded value. The trace
// format includes registers, flags and stack pointer so any change in CPU
// behaviour will show up even if it never reaches the screen.
type TraceRegression struct {
	Cartridge string
	NumSteps  int

	key    int
	digest string
}

func deserialiseTraceEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	reg := &TraceRegression{key: key}

	if len(fields) != numTraceFields {
		return nil, curated.Errorf("trace: wrong number of fields in entry")
	}

	reg.Cartridge = fields[traceFieldCartName]
	reg.digest = fields[traceFieldDigest]

	var err error

	reg.NumSteps, err = strconv.Atoi(fields[traceFieldNumSteps])
	if err != nil {
		return nil, curated.Errorf("trace: invalid numSteps field (%s)", fields[traceFieldNumSteps])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg TraceRegression) ID() string {
	return traceEntryID
}

// String implements the database.Entry interface.
func (reg TraceRegression) String() string {
	return fmt.Sprintf("%s [trace] steps=%d", reg.Cartridge, reg.NumSteps)
}

// Serialise implements the database.Entry interface.
func (reg *TraceRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Cartridge,
		strconv.Itoa(reg.NumSteps),
		reg.digest,
	}, nil
}

// SetKey implements the database.Entry interface.
func (reg *TraceRegression) SetKey(key int) {
	reg.key = key
}

// GetKey implements the database.Entry interface.
func (reg TraceRegression) GetKey() int {
	return reg.key
}

// CleanUp implements the database.Entry interface.
func (reg TraceRegression) CleanUp() error {
	return nil
}

func (reg *TraceRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	console := hardware.NewConsole()

	cartload := cartridgeloader.NewLoader(reg.Cartridge)
	if err := console.AttachCartridge(cartload); err != nil {
		return false, curated.Errorf("trace: %v", err)
	}

	hsh := sha1.New()

	for i := 0; i < reg.NumSteps; i++ {
		line, err := disassembly.Trace(console.CPU, console.Mem)
		if err != nil {
			return false, curated.Errorf("trace: %v", err)
		}
		hsh.Write([]byte(line))
		hsh.Write([]byte("\n"))

		if err := console.Step(nil); err != nil {
			return false, curated.Errorf("trace: %v", err)
		}
	}

	sum := fmt.Sprintf("%x", hsh.Sum(nil))

	if newRegression {
		reg.digest = sum
		return true, nil
	}

	return sum == reg.digest, nil
}
