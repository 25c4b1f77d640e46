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

// Package wavwriter allows writing of the APU sample stream to disk as a WAV
// file. Note that audio data is buffered in memory in its entirity, and
// written to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/logger"
)

// WavWriter implements the apu.SampleTrigger interface.
type WavWriter struct {
	filename   string
	sampleFreq int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// sampleFreq argument should match the frequency given to the APU with
// SetSampleFrequency().
func New(filename string, sampleFreq int) (*WavWriter, error) {
	aw := &WavWriter{
		filename:   filename,
		sampleFreq: sampleFreq,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// NewSample implements the apu.SampleTrigger interface.
func (aw *WavWriter) NewSample(level float32) error {
	// mixer output is in the range 0.0 to 1.0. centre it around zero before
	// quantising to 16 bits
	aw.buffer = append(aw.buffer, int((level-0.5)*32767))
	return nil
}

// EndMixing writes the buffered samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleFreq, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
