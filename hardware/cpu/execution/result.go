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

package execution

import (
	"github.com/sidegate/famicore/hardware/cpu/instructions"
)

// Result records the state of the last instruction executed by the CPU.
type Result struct {
	// the address the instruction was read from
	Address uint16

	// the definition of the executed instruction. can be nil mid-instruction
	// or after a CPU reset
	Defn *instructions.Definition

	// the data read as part of the instruction decode. for branch
	// instructions this is the unextended offset value
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// the number of cycles taken by the instruction so far
	Cycles int

	// whether a page fault occurred during address resolution. page faults
	// cost an extra cycle on page sensitive instructions
	PageFault bool

	// whether the branch condition of a branch instruction was met
	BranchSuccess bool

	// addressing of the instruction fell foul of a known CPU quirk
	CPUBug string

	// whether this is the result of a completed instruction
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.CPUBug = ""
	r.Final = false
}
