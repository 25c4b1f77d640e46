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

// Package cartridge handles game images in the iNES format. The Cartridge
// type sits on both console buses: the CPU reads and writes through Read()
// and Write() while the PPU accesses the pattern tables through ReadVideo()
// and WriteVideo().
//
// Only mapper 0 (NROM) is currently implemented. Attaching an image that
// requires any other mapper fails with the UnsupportedMapper error. Images
// in the NES 2.0 format are rejected with InvalidImage.
package cartridge
