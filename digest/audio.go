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
)

// the length of the buffer isn't critical but it must be at least sha1.Size
// bytes so the previous digest can be chained into the next
const audioBufferLength = 1024 + sha1.Size

// Audio is an implementation of apu.SampleTrigger that fingerprints the
// audio stream. Like the Video digest, hashes are chained so the final
// value covers the whole stream.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Attach the returned value to an APU with AttachSampleTrigger().
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, audioBufferLength),
	}
	dig.bufferCt = sha1.Size
	return dig
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = sha1.Size
}

// NewSample implements the apu.SampleTrigger interface. Samples are
// quantised to one byte before being folded into the hash.
func (dig *Audio) NewSample(level float32) error {
	dig.buffer[dig.bufferCt] = uint8(level * 255)
	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}

	return nil
}

// flush any buffered samples into the hash. called automatically when the
// buffer fills but must be called once more at the end of a measurement for
// the tail of the stream to count.
func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = sha1.Size
}

// Flush folds any buffered samples into the hash immediately.
func (dig *Audio) Flush() {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
}
