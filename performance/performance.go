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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/gui/sdlplay"
	"github.com/sidegate/famicore/hardware"
)

// Check is a very rough and ready calculation of the emulator's performance.
//
// The cartridge is run for the specified wall clock duration and the number
// of frames produced in that time is compared to the real console. When
// display is true the frames are presented in an SDL window (uncapped), at
// some cost to the measured result.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, display bool, scale float32, runTime string) error {
	console := hardware.NewConsole()

	var scr *sdlplay.SdlPlay

	if display {
		var err error
		scr, err = sdlplay.NewSdlPlay(console.Joypad1, console.Joypad2, scale)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer scr.Destroy()
		scr.SetFPSCap(false)
		console.PPU.AttachFrameTrigger(scr)
	}

	err := console.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := console.PPU.Frame

	runner := func() error {
		// two second leadtime allows the go runtime to settle down before
		// measurement starts
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(duration, func() {
					timerChan <- true
				})
			})
		}()

		// checking the timer and polling SDL on every instruction is
		// expensive and distorts the measurement
		performanceFilter := 0

		return console.Run(func() (bool, error) {
			performanceFilter++
			if performanceFilter < hardware.PerformanceBrake {
				return true, nil
			}
			performanceFilter = 0

			if scr != nil {
				scr.Service()
				if scr.QuitRequested() {
					return false, nil
				}
			}

			select {
			case v := <-timerChan:
				if v {
					return false, nil
				}
				// leadtime has concluded. restart the frame count
				startFrame = console.PPU.Frame
			default:
			}

			return true, nil
		})
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := console.PPU.Frame - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
