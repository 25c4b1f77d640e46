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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/debugger"
	"github.com/sidegate/famicore/disassembly"
	"github.com/sidegate/famicore/logger"
	"github.com/sidegate/famicore/modalflag"
	"github.com/sidegate/famicore/performance"
	"github.com/sidegate/famicore/playmode"
	"github.com/sidegate/famicore/regression"
	"github.com/sidegate/famicore/statsview"
	"github.com/sidegate/famicore/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "TILES", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough
	case "PLAY":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "TILES":
		err = tiles(md)
	case "PERFORMANCE":
		err = perform(md)
	case "REGRESS":
		err = regress(md)
	case "VERSION":
		ver, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 3.0, "window scale factor")
	fpsCap := md.AddBool("fpscap", true, "cap fps to frame rate of console")
	wavFile := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			return fmt.Errorf("statsview not available in this build")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2A03 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return playmode.Play(cartload, float32(*scale), *fpsCap, *wavFile)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2A03 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		dbg, err := debugger.NewDebugger(cartload)
		if err != nil {
			return err
		}
		return dbg.Start()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2A03 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		dsm, err := disassembly.FromCartridge(cartload)
		if err != nil {
			return err
		}
		return dsm.Write(md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func tiles(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 3.0, "window scale factor")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2A03 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return playmode.ShowTiles(cartload, float32(*scale))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "display errors as they occur")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return regression.RegressList(md.Output)
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "ADD":
		md.NewMode()

		mode := md.AddString("mode", "video", "digest mode: video, audio or both")
		numFrames := md.AddInt("frames", 10, "number of frames to run (digest test)")
		traceSteps := md.AddInt("trace", 0, "number of instructions to run as a trace test (instead of a digest test)")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("2A03 cartridge required for %s mode", md)
		case 1:
			var reg regression.Regressor

			if *traceSteps > 0 {
				reg = &regression.TraceRegression{
					Cartridge: md.GetArg(0),
					NumSteps:  *traceSteps,
				}
			} else {
				m, err := regression.ParseDigestMode(*mode)
				if err != nil {
					return err
				}
				reg = &regression.DigestRegression{
					Cartridge: md.GetArg(0),
					Mode:      m,
					NumFrames: *numFrames,
				}
			}

			return regression.RegressAdd(md.Output, reg)
		default:
			return fmt.Errorf("too many arguments for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader
			if *answerYes {
				confirmation = strings.NewReader("y")
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	display := md.AddBool("display", false, "display TV output")
	scale := md.AddFloat64("scale", 3.0, "window scale factor (if display is true)")
	profile := md.AddBool("profile", false, "perform cpu and memory profiling")
	duration := md.AddString("duration", "5s", "run duration (will be rounded up to nearest frame)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2A03 cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, *profile, cartload, *display, float32(*scale), *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
