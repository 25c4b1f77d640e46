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

package digest_test

import (
	"testing"

	"github.com/sidegate/famicore/digest"
	"github.com/sidegate/famicore/hardware/ppu"
	"github.com/sidegate/famicore/test"
)

func TestVideoChaining(t *testing.T) {
	dig := digest.NewVideo()

	fb := &ppu.Framebuffer{}
	fb.SetPixel(10, 10, 0x16)

	blank := dig.Hash()

	err := dig.NewFrame(fb)
	test.ExpectedSuccess(t, err)
	first := dig.Hash()
	test.ExpectedSuccess(t, first != blank)

	// a second frame with identical content must still change the hash
	// because the previous digest is folded in
	err = dig.NewFrame(fb)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, dig.Hash() != first)

	test.Equate(t, dig.Frames(), 2)
}

func TestVideoDeterminism(t *testing.T) {
	fb := &ppu.Framebuffer{}
	fb.SetPixel(0, 0, 0x30)
	fb.SetPixel(255, 239, 0x0f)

	digA := digest.NewVideo()
	digB := digest.NewVideo()

	for i := 0; i < 3; i++ {
		test.ExpectedSuccess(t, digA.NewFrame(fb))
		test.ExpectedSuccess(t, digB.NewFrame(fb))
	}

	test.ExpectedSuccess(t, digA.Hash() == digB.Hash())

	// reset returns the digest to its initial state
	digA.ResetDigest()
	digB = digest.NewVideo()
	test.ExpectedSuccess(t, digA.Hash() == digB.Hash())
}

func TestAudioChaining(t *testing.T) {
	dig := digest.NewAudio()
	blank := dig.Hash()

	for i := 0; i < 2000; i++ {
		test.ExpectedSuccess(t, dig.NewSample(0.5))
	}
	dig.Flush()

	test.ExpectedSuccess(t, dig.Hash() != blank)

	// same number of identical samples produces the same hash
	other := digest.NewAudio()
	for i := 0; i < 2000; i++ {
		test.ExpectedSuccess(t, other.NewSample(0.5))
	}
	other.Flush()

	test.ExpectedSuccess(t, dig.Hash() == other.Hash())

	// a different stream produces a different hash
	other.ResetDigest()
	for i := 0; i < 2000; i++ {
		test.ExpectedSuccess(t, other.NewSample(0.25))
	}
	other.Flush()

	test.ExpectedSuccess(t, dig.Hash() != other.Hash())
}
