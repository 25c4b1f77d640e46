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

package hardware

// The continueCheck() function in Run() only executes at the end of a CPU
// instruction but it can still be expensive to run a full check every time.
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths in a continueCheck() implementation:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. continueCheck()
// should return false when an external event (eg. a GUI event) indicates
// that the emulation should stop.
func (console *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cycle := console.cycleFunc(nil)

	cont := true
	for cont {
		if err := console.CPU.ExecuteInstruction(cycle); err != nil {
			return err
		}
		if err := console.serviceEvents(cycle); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulator running for the specified number of
// frames. Useful for FPS measurement and regression tests. Not used by the
// debugger because traps are more flexible.
func (console *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	targetFrame := console.PPU.Frame + numFrames

	cont := true
	for console.PPU.Frame != targetFrame && cont {
		if err := console.Step(nil); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck(console.PPU.Frame)
		if err != nil {
			return err
		}
	}

	return nil
}
