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

// Package controllers implements the standard NES joypad. Button state is
// latched while the strobe bit is high and shifted out one bit at a time
// through the controller ports at 0x4016 and 0x4017.
package controllers

// Button identifies a single button on the standard joypad. The values
// follow the order in which the shift register reports them.
type Button int

// List of buttons on the standard joypad.
const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonSelect:
		return "select"
	case ButtonStart:
		return "start"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	}

	return "undefined"
}

// Joypad is the standard NES controller.
type Joypad struct {
	buttons [8]bool
	strobe  bool
	index   int
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// Set the state of a single button.
func (jp *Joypad) Set(button Button, pressed bool) {
	jp.buttons[button] = pressed
}

// Write to the controller port. Bit zero is the strobe: while it is high the
// shift register continuously reloads from the current button state.
func (jp *Joypad) Write(data uint8) {
	jp.strobe = data&0x01 == 0x01
	if jp.strobe {
		jp.index = 0
	}
}

// Read shifts one bit out of the controller. After all eight buttons have
// been reported further reads return 1, which is what the real shift
// register does.
func (jp *Joypad) Read() uint8 {
	var value uint8

	if jp.index >= 8 {
		value = 1
	} else if jp.buttons[jp.index] {
		value = 1
	}

	jp.index++
	if jp.strobe {
		jp.index = 0
	}

	return value
}
