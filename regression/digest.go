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
	"fmt"
	"io"
	"strconv"

	"github.com/sidegate/famicore/cartridgeloader"
	"github.com/sidegate/famicore/curated"
	"github.com/sidegate/famicore/database"
	"github.com/sidegate/famicore/digest"
	"github.com/sidegate/famicore/hardware"
)

const digestEntryID = "digest"

// sample frequency used when hashing audio output. the exact value doesn't
// matter so long as it never changes, the audio hash is sensitive to it
const digestSampleFreq = 44100

const (
	digestFieldCartName int = iota
	digestFieldMode
	digestFieldNumFrames
	digestFieldVideo
	digestFieldAudio
	numDigestFields
)

// DigestRegression runs a cartridge for a set number of frames and compares
// hashes of the video and/or audio output against the recorded values.
type DigestRegression struct {
	Cartridge string
	Mode      DigestMode
	NumFrames int

	key         int
	digestVideo string
	digestAudio string
}

func deserialiseDigestEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	reg := &DigestRegression{key: key}

	if len(fields) != numDigestFields {
		return nil, curated.Errorf("digest: wrong number of fields in entry")
	}

	reg.Cartridge = fields[digestFieldCartName]
	reg.digestVideo = fields[digestFieldVideo]
	reg.digestAudio = fields[digestFieldAudio]

	var err error

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, err
	}

	reg.NumFrames, err = strconv.Atoi(fields[digestFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("digest: invalid numFrames field (%s)", fields[digestFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryID
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	return fmt.Sprintf("%s [%s] frames=%d", reg.Cartridge, reg.Mode, reg.NumFrames)
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Cartridge,
		reg.Mode.String(),
		strconv.Itoa(reg.NumFrames),
		reg.digestVideo,
		reg.digestAudio,
	}, nil
}

// SetKey implements the database.Entry interface.
func (reg *DigestRegression) SetKey(key int) {
	reg.key = key
}

// GetKey implements the database.Entry interface.
func (reg DigestRegression) GetKey() int {
	return reg.key
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

func (reg *DigestRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	console := hardware.NewConsole()

	var vdig *digest.Video
	var adig *digest.Audio

	if reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth {
		vdig = digest.NewVideo()
		console.PPU.AttachFrameTrigger(vdig)
	}

	if reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth {
		adig = digest.NewAudio()
		console.APU.AttachSampleTrigger(adig)
		console.APU.SetSampleFrequency(digestSampleFreq)
	}

	cartload := cartridgeloader.NewLoader(reg.Cartridge)
	if err := console.AttachCartridge(cartload); err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	if err := console.RunForFrameCount(reg.NumFrames, nil); err != nil {
		return false, curated.Errorf("digest: %v", err)
	}

	ok := true

	if vdig != nil {
		if newRegression {
			reg.digestVideo = vdig.Hash()
		} else {
			ok = ok && vdig.Hash() == reg.digestVideo
		}
	}

	if adig != nil {
		adig.Flush()
		if newRegression {
			reg.digestAudio = adig.Hash()
		} else {
			ok = ok && adig.Hash() == reg.digestAudio
		}
	}

	return ok, nil
}
