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
	"slices"

	"github.com/rcmapper/rcmapper/behavior"
)

// TriggerClass identifies one of the lists of behaviors in a Registry.
type TriggerClass int

// List of valid TriggerClass values.
const (
	ClassCycle TriggerClass = iota
	ClassKeyDown
	ClassKeyUp
	ClassButtonDown
	ClassButtonUp
	ClassAxis
)

func (c TriggerClass) String() string {
	switch c {
	case ClassCycle:
		return "cycle"
	case ClassKeyDown:
		return "key_down"
	case ClassKeyUp:
		return "key_up"
	case ClassButtonDown:
		return "button_down"
	case ClassButtonUp:
		return "button_up"
	case ClassAxis:
		return "axis"
	}
	return "unknown"
}

// Registry is the set of behaviors, one list per trigger class. The order of
// each list is the order in which behaviors are applied.
type Registry struct {
	Cycle      []behavior.Behavior
	KeyDown    []behavior.Key
	KeyUp      []behavior.Key
	ButtonDown []behavior.Button
	ButtonUp   []behavior.Button
	Axis       []behavior.Axis
}

// Len returns the total number of behaviors in the registry.
func (r Registry) Len() int {
	return len(r.Cycle) + len(r.KeyDown) + len(r.KeyUp) +
		len(r.ButtonDown) + len(r.ButtonUp) + len(r.Axis)
}

// Clear removes all behaviors.
func (r *Registry) Clear() {
	r.Cycle = r.Cycle[:0]
	r.KeyDown = r.KeyDown[:0]
	r.KeyUp = r.KeyUp[:0]
	r.ButtonDown = r.ButtonDown[:0]
	r.ButtonUp = r.ButtonUp[:0]
	r.Axis = r.Axis[:0]
}

// ClearChannel removes the behaviors for a single channel. The order of the
// remaining behaviors is preserved.
func (r *Registry) ClearChannel(channel int) {
	r.Cycle = slices.DeleteFunc(r.Cycle, func(b behavior.Behavior) bool { return b.Channel == channel })
	r.KeyDown = slices.DeleteFunc(r.KeyDown, func(b behavior.Key) bool { return b.Channel == channel })
	r.KeyUp = slices.DeleteFunc(r.KeyUp, func(b behavior.Key) bool { return b.Channel == channel })
	r.ButtonDown = slices.DeleteFunc(r.ButtonDown, func(b behavior.Button) bool { return b.Channel == channel })
	r.ButtonUp = slices.DeleteFunc(r.ButtonUp, func(b behavior.Button) bool { return b.Channel == channel })
	r.Axis = slices.DeleteFunc(r.Axis, func(b behavior.Axis) bool { return b.Channel == channel })
}

// Clone returns a copy of the registry that shares no memory with the
// original.
func (r *Registry) Clone() Registry {
	return Registry{
		Cycle:      slices.Clone(r.Cycle),
		KeyDown:    slices.Clone(r.KeyDown),
		KeyUp:      slices.Clone(r.KeyUp),
		ButtonDown: slices.Clone(r.ButtonDown),
		ButtonUp:   slices.Clone(r.ButtonUp),
		Axis:       slices.Clone(r.Axis),
	}
}
