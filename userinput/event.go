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

// Event represents all the different type of events that can occur in the
// device sources. The type switch in the inputs package decides what to do
// with each kind. Events of any other type are ignored.
type Event interface{}

// EventQuit is sent when the user has requested that the program stops.
type EventQuit struct{}

// EventKeyboard is sent when a keyboard key is pressed or released.
type EventKeyboard struct {
	Key  Key
	Down bool
}

// EventGamepadButton is sent when a gamepad button is pressed or released.
type EventGamepadButton struct {
	ID     DeviceID
	Button Button
	Down   bool
}

// EventGamepadAxis is sent when a gamepad axis moves. Value is in the range
// -AxisMax to AxisMax. Devices that report -32768 are not clamped.
type EventGamepadAxis struct {
	ID    DeviceID
	Axis  Axis
	Value int16
}

// DeviceID identifies the device that produced a gamepad event. For SDL
// sources this is the joystick instance ID and for the Linux joystick source it
// is the number of the jsN device.
type DeviceID int32

// Button identifies a button on a gamepad.
type Button uint8

// Axis identifies an analogue axis on a gamepad.
type Axis uint8

// AxisMax is the magnitude of an axis at full deflection.
const AxisMax = 32767

// StickDeadzone is the default deflection an axis must exceed before Scan()
// reports it.
const StickDeadzone = 16000
