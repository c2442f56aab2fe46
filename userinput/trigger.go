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

package userinput

import "fmt"

// TriggerKind identifies the type of input a Trigger describes.
type TriggerKind int

// List of valid TriggerKind values.
const (
	TriggerNone TriggerKind = iota
	TriggerKey
	TriggerButton
	TriggerAxis
)

// Trigger is the identity of an input that a behavior can be bound to.
//
// Only the fields relevant to the Kind are meaningful. Threshold is used when
// an axis is treated as a button and is in the range -1.0 to 1.0.
type Trigger struct {
	Kind      TriggerKind
	Key       Key
	Button    Button
	Axis      Axis
	ID        DeviceID
	Threshold float64
}

// KeyTrigger returns a Trigger for a keyboard key.
func KeyTrigger(key Key) Trigger {
	return Trigger{Kind: TriggerKey, Key: key}
}

// ButtonTrigger returns a Trigger for a gamepad button.
func ButtonTrigger(button Button, id DeviceID) Trigger {
	return Trigger{Kind: TriggerButton, Button: button, ID: id}
}

// AxisTrigger returns a Trigger for a gamepad axis.
func AxisTrigger(axis Axis, id DeviceID, threshold float64) Trigger {
	return Trigger{Kind: TriggerAxis, Axis: axis, ID: id, Threshold: threshold}
}

func (t Trigger) String() string {
	switch t.Kind {
	case TriggerKey:
		return fmt.Sprintf("Key %s", t.Key)
	case TriggerButton:
		return fmt.Sprintf("Gamepad %d Button %d", t.ID, t.Button)
	case TriggerAxis:
		return fmt.Sprintf("Gamepad %d Axis %d", t.ID, t.Axis)
	}
	return ""
}

// Scan polls events from the source until it finds a key press, button press
// or axis movement and returns a Trigger for it. Events that do not qualify
// are discarded. Events after the one returned are left in the source for the
// next call. An axis must be deflected beyond the deadzone to be reported. The threshold of an axis trigger is set
// to half deflection in the direction of movement.
//
// If nothing suitable is found the returned Trigger is of kind TriggerNone.
// Scan never blocks so the caller should call it repeatedly until a trigger is
// found.
//
// The quit value is true if an EventQuit was seen. Scanning stops at that
// point and later events are left in the source.
func Scan(src Source, deadzone int16) (trig Trigger, quit bool) {
	for {
		ev, ok := src.Poll()
		if !ok {
			return Trigger{}, false
		}

		switch ev := ev.(type) {
		case EventQuit:
			return Trigger{}, true
		case EventKeyboard:
			if ev.Down && ev.Key != KeyUnknown {
				return KeyTrigger(ev.Key), false
			}
		case EventGamepadButton:
			if ev.Down {
				return ButtonTrigger(ev.Button, ev.ID), false
			}
		case EventGamepadAxis:
			if ev.Value > deadzone {
				return AxisTrigger(ev.Axis, ev.ID, 0.5), false
			}
			if ev.Value < -deadzone {
				return AxisTrigger(ev.Axis, ev.ID, -0.5), false
			}
		}
	}
}
