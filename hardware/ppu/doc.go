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

// Package ppu implements the picture processing unit of the NES (the Ricoh
// 2C02). The emulation is dot based. Step() advances the PPU by exactly one
// dot and the console calls it three times for every CPU cycle, giving the
// PPU the 3:1 clock ratio of the real machine.
//
// A frame is 341 dots by 262 scanlines. Scanlines 0 to 239 are the visible
// picture, scanline 240 is idle, 241 to 260 are the vertical blanking period
// and scanline 261 is the pre-render line that primes the fetch pipeline for
// the next frame. On every odd frame with rendering enabled the final dot of
// the pre-render line is skipped.
//
// During rendering the PPU walks the nametables with the so called "loopy"
// registers. The 15 bit vramAddr register encodes coarse x/y, the nametable
// selection and the fine y scroll; tmpAddr is the latched copy that the
// PPUSCROLL and PPUADDR registers write through. Background pattern data
// moves through a 64 bit shift register four bits per pixel.
//
// The CPU talks to the PPU through the eight registers at 0x2000 to 0x2007
// (mirrored through to 0x3fff). The bus normalises mirror addresses before
// calling ReadRegister()/WriteRegister() so the functions in this package
// only ever see the canonical addresses.
//
// Completed frames are published through the FrameTrigger interface. The
// framebuffer contains palette indices, not RGB. Conversion to a real colour
// is the responsibility of the presentation layer (see the video package).
package ppu
