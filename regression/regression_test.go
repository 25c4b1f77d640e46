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
	"testing"

	"github.com/sidegate/famicore/test"
)

func TestParseDigestMode(t *testing.T) {
	m, err := ParseDigestMode("video")
	test.ExpectedSuccess(t, err)
	test.Equate(t, m == DigestVideoOnly, true)

	m, err = ParseDigestMode("AUDIO")
	test.ExpectedSuccess(t, err)
	test.Equate(t, m == DigestAudioOnly, true)

	m, err = ParseDigestMode("both")
	test.ExpectedSuccess(t, err)
	test.Equate(t, m == DigestBoth, true)

	_, err = ParseDigestMode("wobbly")
	test.ExpectedFailure(t, err)
}

func TestDigestEntrySerialisation(t *testing.T) {
	reg := &DigestRegression{
		Cartridge: "roms/example.nes",
		Mode:      DigestBoth,
		NumFrames: 10,
	}
	reg.digestVideo = "aaaa"
	reg.digestAudio = "bbbb"

	ser, err := reg.Serialise()
	test.ExpectedSuccess(t, err)

	ent, err := deserialiseDigestEntry(3, ser)
	test.ExpectedSuccess(t, err)

	des, ok := ent.(*DigestRegression)
	test.Equate(t, ok, true)
	test.Equate(t, des.GetKey(), 3)
	test.Equate(t, des.Cartridge, reg.Cartridge)
	test.Equate(t, des.Mode == reg.Mode, true)
	test.Equate(t, des.NumFrames, reg.NumFrames)
	test.Equate(t, des.digestVideo, reg.digestVideo)
	test.Equate(t, des.digestAudio, reg.digestAudio)
}

func TestTraceEntrySerialisation(t *testing.T) {
	reg := &TraceRegression{
		Cartridge: "roms/nestest.nes",
		NumSteps:  5000,
	}
	reg.digest = "cccc"

	ser, err := reg.Serialise()
	test.ExpectedSuccess(t, err)

	ent, err := deserialiseTraceEntry(0, ser)
	test.ExpectedSuccess(t, err)

	des, ok := ent.(*TraceRegression)
	test.Equate(t, ok, true)
	test.Equate(t, des.Cartridge, reg.Cartridge)
	test.Equate(t, des.NumSteps, reg.NumSteps)
	test.Equate(t, des.digest, reg.digest)
}
