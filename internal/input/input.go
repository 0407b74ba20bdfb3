// Package input translates host key events into bit operations on a
// machine's joystick/buttons/sys input latches, per the board's fixed
// control layout (there is no runtime-configurable keymap on this board).
package input

import (
	"fyne.io/fyne/v2"

	"github.com/nullobject/rygar/internal/machine"
)

// joystickLeft..sysStart are the bit positions SetJoystick/SetButtons/SetSys
// expect, matching the board's input port layout (internal/machine).
const (
	joystickLeft  = 0
	joystickRight = 1
	joystickDown  = 2
	joystickUp    = 3

	buttonAttack = 0
	buttonJump   = 1

	sysCoin  = 2
	sysStart = 1
)

// Translator wires Fyne key events to a Machine's input latches.
type Translator struct {
	m *machine.Machine
}

// NewTranslator returns a Translator that drives m.
func NewTranslator(m *machine.Machine) *Translator {
	return &Translator{m: m}
}

// KeyDown applies the down edge of key to the machine's input latches.
func (t *Translator) KeyDown(key fyne.KeyName) {
	t.set(key, true)
}

// KeyUp applies the up edge of key to the machine's input latches.
func (t *Translator) KeyUp(key fyne.KeyName) {
	t.set(key, false)
}

// set dispatches one key transition. Only the keys the board's control
// layout actually uses have an effect; every other key is ignored. "Any
// other key" maps start, per the board's coin/start convention, to a
// single fixed key (5) rather than literally any keystroke.
func (t *Translator) set(key fyne.KeyName, down bool) {
	switch key {
	case fyne.KeyLeft:
		t.m.SetJoystick(joystickLeft, down)
	case fyne.KeyRight:
		t.m.SetJoystick(joystickRight, down)
	case fyne.KeyDown:
		t.m.SetJoystick(joystickDown, down)
	case fyne.KeyUp:
		t.m.SetJoystick(joystickUp, down)
	case fyne.KeyZ:
		t.m.SetButtons(buttonAttack, down)
	case fyne.KeyX:
		t.m.SetButtons(buttonJump, down)
	case fyne.Key1:
		t.m.SetSys(sysCoin, down)
	case fyne.Key5:
		t.m.SetSys(sysStart, down)
	}
}
