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

// Package digest contains implementations of the PPU FrameTrigger and APU
// SampleTrigger interfaces that produce a cryptographic hash of the output
// instead of displaying or playing it. If a newly produced hash differs from
// a previously recorded value then the emulation output has changed. This is
// the basis of the regression tests.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a security task.
package digest

// Digest implementations return a hash of everything they have been sent
// since creation or the last reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
