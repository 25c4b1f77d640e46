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

// Package speaker plays the APU sample stream through the host's sound
// device. A Speaker implements the apu.SampleTrigger interface and should be
// attached with AttachSampleTrigger().
//
// Samples arrive on the emulation goroutine and are played back on the
// portaudio callback goroutine. A buffered channel sits between the two.
// When the channel is full the newest sample is dropped and when it is empty
// the previous level is repeated. Neither condition is an error, the
// emulation is simply running faster or slower than realtime.
package speaker

import (
	"github.com/gordonklaus/portaudio"
	"github.com/sidegate/famicore/curated"
)

// size of the channel buffering samples between the emulation and the
// portaudio callback
const queueLength = 8192

// Speaker implements the apu.SampleTrigger interface.
type Speaker struct {
	stream     *portaudio.Stream
	sampleRate float64
	channels   int
	queue      chan float32

	// level repeated by the callback when the queue runs dry
	lastLevel float32
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
// The Close() function should be called when the Speaker is no longer
// required.
func NewSpeaker() (*Speaker, error) {
	spkr := &Speaker{
		queue: make(chan float32, queueLength),
	}

	err := portaudio.Initialize()
	if err != nil {
		return nil, curated.Errorf("speaker: %v", err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		return nil, curated.Errorf("speaker: %v", err)
	}

	param := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	spkr.sampleRate = param.SampleRate
	spkr.channels = param.Output.Channels

	spkr.stream, err = portaudio.OpenStream(param, spkr.serviceAudio)
	if err != nil {
		return nil, curated.Errorf("speaker: %v", err)
	}

	err = spkr.stream.Start()
	if err != nil {
		return nil, curated.Errorf("speaker: %v", err)
	}

	return spkr, nil
}

// SampleRate returns the frequency the host device expects samples at. Use
// this value with the APU's SetSampleFrequency() function.
func (spkr *Speaker) SampleRate() int {
	return int(spkr.sampleRate)
}

// Close stops playback and releases the sound device.
func (spkr *Speaker) Close() error {
	err := spkr.stream.Close()
	if err != nil {
		return curated.Errorf("speaker: %v", err)
	}

	err = portaudio.Terminate()
	if err != nil {
		return curated.Errorf("speaker: %v", err)
	}

	return nil
}

// NewSample implements the apu.SampleTrigger interface.
func (spkr *Speaker) NewSample(level float32) error {
	select {
	case spkr.queue <- level:
	default:
	}
	return nil
}

// serviceAudio is called by portaudio whenever the device needs more data.
func (spkr *Speaker) serviceAudio(out []float32) {
	for i := range out {
		if i%spkr.channels == 0 {
			select {
			case level := <-spkr.queue:
				spkr.lastLevel = level
			default:
			}
		}
		out[i] = spkr.lastLevel
	}
}
