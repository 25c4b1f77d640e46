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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/sidegate/famicore/hardware/ppu"
)

// Video is an implementation of ppu.FrameTrigger that fingerprints every
// completed frame. Fingerprints are chained: the hash of frame n is folded
// into the hash of frame n+1, so the final value summarises the whole
// sequence of frames, not just the last one.
type Video struct {
	digest [sha1.Size]byte
	buffer []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
// Attach the returned value to a PPU with AttachFrameTrigger().
func NewVideo() *Video {
	return &Video{
		buffer: make([]byte, sha1.Size+ppu.HorizPixels*ppu.VisibleLines),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames that have been folded into the
// current hash.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame implements the ppu.FrameTrigger interface.
func (dig *Video) NewFrame(fb *ppu.Framebuffer) error {
	copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[sha1.Size:], fb.Pixels())
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++
	return nil
}
