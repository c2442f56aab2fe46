// This file is part of rcmapper.
//
// rcmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rcmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rcmapper.  If not, see <https://www.gnu.org/licenses/>.

package inputs

import (
	"github.com/rcmapper/rcmapper/userinput"
)

// HandleEvent applies the behaviors that match the event. Returns true if the
// event is a quit event. Events of an unknown type are ignored.
//
// HandleEvent is called by Cycle() for every pending event but can also be
// called directly.
func (inp *Inputs) HandleEvent(ev userinput.Event) bool {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		return true
	case userinput.EventKeyboard:
		if ev.Down {
			inp.keyDown(ev.Key)
		} else {
			inp.keyUp(ev.Key)
		}
	case userinput.EventGamepadButton:
		if ev.Down {
			inp.buttonDown(ev.Button, ev.ID)
		} else {
			inp.buttonUp(ev.Button, ev.ID)
		}
	case userinput.EventGamepadAxis:
		inp.axisMotion(ev.Axis, ev.ID, ev.Value)
	default:
	}
	return false
}

func (inp *Inputs) keyDown(key userinput.Key) {
	raw := inp.bank.Raw()
	for _, b := range inp.reg.KeyDown {
		if b.Matches(key) {
			mustApply(b.Apply(raw))
		}
	}
}

func (inp *Inputs) keyUp(key userinput.Key) {
	raw := inp.bank.Raw()
	for _, b := range inp.reg.KeyUp {
		if b.Matches(key) {
			mustApply(b.Apply(raw))
		}
	}
}

func (inp *Inputs) buttonDown(button userinput.Button, id userinput.DeviceID) {
	raw := inp.bank.Raw()
	for _, b := range inp.reg.ButtonDown {
		if b.Matches(button, id) {
			mustApply(b.Apply(raw))
		}
	}
}

func (inp *Inputs) buttonUp(button userinput.Button, id userinput.DeviceID) {
	raw := inp.bank.Raw()
	for _, b := range inp.reg.ButtonUp {
		if b.Matches(button, id) {
			mustApply(b.Apply(raw))
		}
	}
}

func (inp *Inputs) axisMotion(axis userinput.Axis, id userinput.DeviceID, value int16) {
	raw := inp.bank.Raw()

	// indexing rather than ranging because axis behaviors remember the
	// previous axis position
	for i := range inp.reg.Axis {
		b := &inp.reg.Axis[i]
		if b.Matches(axis, id) {
			mustApply(b.Evaluate(raw, value))
		}
	}
}
