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

package behavior

import (
	"strconv"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/userinput"
)

// ChannelOutOfRange is returned when a behavior is applied to a slice of
// channels that does not contain the behavior's channel.
const ChannelOutOfRange = "behavior: channel index out of range: %d (of %d channels)"

// Behavior is the binding of a value and a mode to a channel. Behaviors
// without a trigger are applied once every cycle.
type Behavior struct {
	Channel int
	Value   float64
	Mode    Mode
}

// Check returns an error if the Mode of the behavior is not valid.
func (b Behavior) Check() error {
	if !b.Mode.Valid() {
		return curated.Errorf(UnknownMode, strconv.Itoa(int(b.Mode)))
	}
	return nil
}

// Apply the behavior to the raw channel values. Results are truncated towards
// zero.
func (b Behavior) Apply(raw []int) error {
	if b.Channel < 0 || b.Channel >= len(raw) {
		return curated.Errorf(ChannelOutOfRange, b.Channel, len(raw))
	}

	switch b.Mode {
	case Set:
		raw[b.Channel] = int(b.Value)
	case Increment:
		raw[b.Channel] = int(float64(raw[b.Channel]) + b.Value)
	case Toggle:
		raw[b.Channel] = int(b.Value - float64(raw[b.Channel]))
	case ToggleSymmetric:
		raw[b.Channel] = -raw[b.Channel]
	}

	return nil
}

// Key is a Behavior triggered by a keyboard key.
type Key struct {
	Behavior
	Key userinput.Key
}

// Matches returns true if the key triggers the behavior.
func (k Key) Matches(key userinput.Key) bool {
	return k.Key == key
}

// Button is a Behavior triggered by a gamepad button.
type Button struct {
	Behavior
	Button userinput.Button
	ID     userinput.DeviceID
}

// Matches returns true if the button on the device triggers the behavior.
func (b Button) Matches(button userinput.Button, id userinput.DeviceID) bool {
	return b.Button == button && b.ID == id
}
