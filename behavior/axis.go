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

// Axis is a Behavior triggered by the movement of a gamepad axis.
//
// With DigitalNone the channel is set to the behavior value scaled by the axis
// position. The Mode is not used.
//
// With DigitalRising or DigitalFalling the axis acts like a button and the
// behavior is applied, according to its Mode, when the axis crosses the
// threshold in the required direction. An axis resting exactly on the
// threshold has not crossed it.
type Axis struct {
	Behavior
	Axis      userinput.Axis
	ID        userinput.DeviceID
	Digital   Digital
	Threshold float64

	// scaled position of the axis at the previous call to Evaluate(). must be
	// updated on every call, whether or not the behavior was applied,
	// otherwise edge detection stops working
	previous float64
}

// Matches returns true if the axis on the device triggers the behavior.
func (a *Axis) Matches(axis userinput.Axis, id userinput.DeviceID) bool {
	return a.Axis == axis && a.ID == id
}

// Previous returns the scaled axis position seen by the most recent call to
// Evaluate().
func (a *Axis) Previous() float64 {
	return a.previous
}

// Check returns an error if the Mode, the Digital mode or the Threshold of the
// behavior is not valid.
func (a *Axis) Check() error {
	if err := a.Behavior.Check(); err != nil {
		return err
	}
	if !a.Digital.Valid() {
		return curated.Errorf(UnknownDigital, strconv.Itoa(int(a.Digital)))
	}
	if !ValidThreshold(a.Threshold) {
		return curated.Errorf(InvalidThreshold, a.Threshold)
	}
	return nil
}

// Evaluate the behavior for a new axis position.
func (a *Axis) Evaluate(raw []int, value int16) error {
	scaled := float64(value) / userinput.AxisMax

	previous := a.previous
	a.previous = scaled

	switch a.Digital {
	case DigitalNone:
		if a.Channel < 0 || a.Channel >= len(raw) {
			return curated.Errorf(ChannelOutOfRange, a.Channel, len(raw))
		}
		raw[a.Channel] = int(scaled * a.Value)

	case DigitalRising:
		if scaled-a.Threshold > 0 && previous-a.Threshold < 0 {
			return a.Behavior.Apply(raw)
		}

	case DigitalFalling:
		if scaled-a.Threshold < 0 && previous-a.Threshold > 0 {
			return a.Behavior.Apply(raw)
		}
	}

	return nil
}
