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

// Package playmode is the glue between the console and the SDL front end.
// It is the normal, non-debugging way of running the emulation.
package playmode

import (
	"os"
	"os/signal"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/gui/sdlplay"
	"github.com/sidegate/famicore/hardware"
	"github.com/sidegate/famicore/logger"
	"github.com/sidegate/famicore/speaker"
	"github.com/sidegate/famicore/wavwriter"
)

// sample frequency used when writing audio to disk. playback through the
// speaker uses whatever rate the host sound device prefers
const wavSampleFreq = 44100

// Play sets the emulation running without any debugging features.
//
// MUST ONLY be called from the main goroutine.
func Play(cartload cartridgeloader.Loader, scale float32, fpsCap bool, wavFile string) error {
	console := hardware.NewConsole()

	scr, err := sdlplay.NewSdlPlay(console.Joypad1, console.Joypad2, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	scr.SetFPSCap(fpsCap)
	console.PPU.AttachFrameTrigger(scr)

	// audio goes to disk when a wav file has been requested and to the host
	// sound device otherwise. a failure to open the sound device is logged
	// rather than returned, emulation without sound is better than no
	// emulation at all
	if wavFile != "" {
		aw, err := wavwriter.New(wavFile, wavSampleFreq)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		defer func() {
			if err := aw.EndMixing(); err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}()

		console.APU.AttachSampleTrigger(aw)
		console.APU.SetSampleFrequency(wavSampleFreq)
	} else {
		spkr, err := speaker.NewSpeaker()
		if err != nil {
			logger.Logf("playmode", "no sound: %v", err)
		} else {
			defer func() {
				if err := spkr.Close(); err != nil {
					logger.Logf("playmode", "%v", err)
				}
			}()

			console.APU.AttachSampleTrigger(spkr)
			console.APU.SetSampleFrequency(spkr.SampleRate())
		}
	}

	err = console.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// honour ctrl-c so deferred cleanup still runs
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// polling SDL too often slows the emulation significantly
	performanceFilter := 0

	err = console.Run(func() (bool, error) {
		performanceFilter++
		if performanceFilter < hardware.PerformanceBrake {
			return true, nil
		}
		performanceFilter = 0

		scr.Service()
		if scr.QuitRequested() {
			return false, nil
		}

		select {
		case <-intChan:
			return false, nil
		default:
		}

		return true, nil
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// ShowTiles opens the SDL window and renders the pattern tables of the
// cartridge instead of running it. The TILES sub-mode.
//
// MUST ONLY be called from the main goroutine.
func ShowTiles(cartload cartridgeloader.Loader, scale float32) error {
	console := hardware.NewConsole()

	scr, err := sdlplay.NewSdlPlay(console.Joypad1, console.Joypad2, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	err = console.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.ShowTiles(console.Cart)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
