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
	"github.com/rcmapper/rcmapper/behavior"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// Sentinal error patterns.
const (
	InvalidTrigger  = "inputs: invalid trigger: %v"
	InvalidBehavior = "inputs: invalid behavior: %v"
)

// check that the channel exists. the rejection is logged.
func (inp *Inputs) check(channel int) error {
	if err := inp.bank.Check(channel); err != nil {
		logger.Logf(logger.Allow, "inputs", "rejected: %v", err)
		return curated.Errorf("inputs: %v", err)
	}
	return nil
}

// reject a behavior that failed its Check(). the rejection is logged.
func rejectBehavior(err error) error {
	logger.Logf(logger.Allow, "inputs", "rejected: %v", err)
	return curated.Errorf(InvalidBehavior, err)
}

// check that the channel exists and that the trigger can be bound.
func (inp *Inputs) checkTrigger(channel int, trig userinput.Trigger) error {
	if err := inp.check(channel); err != nil {
		return err
	}

	switch trig.Kind {
	case userinput.TriggerKey:
		if trig.Key != userinput.KeyUnknown {
			return nil
		}
	case userinput.TriggerButton:
		return nil
	case userinput.TriggerAxis:
		if behavior.ValidThreshold(trig.Threshold) {
			return nil
		}
	}

	logger.Logf(logger.Allow, "inputs", "rejected trigger: %s", trig)
	return curated.Errorf(InvalidTrigger, trig)
}

// Add a keyboard behavior. If key is KeyUnknown the behavior is applied every
// cycle and onRelease is ignored. Otherwise, the behavior is applied when the
// key is pressed or, if onRelease is true, when the key is released.
func (inp *Inputs) Add(channel int, key userinput.Key, value float64, mode behavior.Mode, onRelease bool) error {
	if err := inp.check(channel); err != nil {
		return err
	}

	b := behavior.Behavior{Channel: channel, Value: value, Mode: mode}
	if err := b.Check(); err != nil {
		return rejectBehavior(err)
	}

	if key == userinput.KeyUnknown {
		inp.reg.Cycle = append(inp.reg.Cycle, b)
	} else if onRelease {
		inp.reg.KeyUp = append(inp.reg.KeyUp, behavior.Key{Behavior: b, Key: key})
	} else {
		inp.reg.KeyDown = append(inp.reg.KeyDown, behavior.Key{Behavior: b, Key: key})
	}

	return nil
}

// AddButton adds a gamepad button behavior. The behavior is applied when the
// button is pressed or, if onRelease is true, when the button is released.
func (inp *Inputs) AddButton(channel int, button userinput.Button, id userinput.DeviceID, value float64, mode behavior.Mode, onRelease bool) error {
	if err := inp.check(channel); err != nil {
		return err
	}

	b := behavior.Button{
		Behavior: behavior.Behavior{Channel: channel, Value: value, Mode: mode},
		Button:   button,
		ID:       id,
	}
	if err := b.Check(); err != nil {
		return rejectBehavior(err)
	}

	if onRelease {
		inp.reg.ButtonUp = append(inp.reg.ButtonUp, b)
	} else {
		inp.reg.ButtonDown = append(inp.reg.ButtonDown, b)
	}

	return nil
}

// AddAxis adds a gamepad axis behavior. With DigitalNone the channel follows
// the axis position, scaled by value, and mode is not used but must still be
// valid. The threshold must be in the range -1.0 to 1.0. With DigitalRising
// or DigitalFalling the behavior is applied with the mode when the axis
// crosses the threshold in that direction.
func (inp *Inputs) AddAxis(channel int, axis userinput.Axis, id userinput.DeviceID, value float64, digital behavior.Digital, threshold float64, mode behavior.Mode) error {
	if err := inp.check(channel); err != nil {
		return err
	}

	b := behavior.Axis{
		Behavior:  behavior.Behavior{Channel: channel, Value: value, Mode: mode},
		Axis:      axis,
		ID:        id,
		Digital:   digital,
		Threshold: threshold,
	}
	if err := b.Check(); err != nil {
		return rejectBehavior(err)
	}

	inp.reg.Axis = append(inp.reg.Axis, b)

	return nil
}

// Clear removes every behavior. Channel values and settings are not changed.
func (inp *Inputs) Clear() {
	inp.reg.Clear()
}

// ClearChannel removes every behavior for the channel and sets the raw value
// of the channel to zero. The bias, limit and bound type are not changed.
func (inp *Inputs) ClearChannel(channel int) error {
	if err := inp.check(channel); err != nil {
		return err
	}
	inp.reg.ClearChannel(channel)
	inp.bank.Raw()[channel] = 0
	return nil
}

// the press side of a trigger: key down, button down or the axis rising
// above the threshold.
func (inp *Inputs) addPress(channel int, trig userinput.Trigger, value float64, mode behavior.Mode) {
	switch trig.Kind {
	case userinput.TriggerKey:
		_ = inp.Add(channel, trig.Key, value, mode, false)
	case userinput.TriggerButton:
		_ = inp.AddButton(channel, trig.Button, trig.ID, value, mode, false)
	case userinput.TriggerAxis:
		_ = inp.AddAxis(channel, trig.Axis, trig.ID, value, pressDigital(trig), trig.Threshold, mode)
	}
}

// the release side of a trigger: key up, button up or the axis falling back
// across the threshold.
func (inp *Inputs) addRelease(channel int, trig userinput.Trigger, value float64, mode behavior.Mode) {
	switch trig.Kind {
	case userinput.TriggerKey:
		_ = inp.Add(channel, trig.Key, value, mode, true)
	case userinput.TriggerButton:
		_ = inp.AddButton(channel, trig.Button, trig.ID, value, mode, true)
	case userinput.TriggerAxis:
		d := behavior.DigitalFalling
		if pressDigital(trig) == behavior.DigitalFalling {
			d = behavior.DigitalRising
		}
		_ = inp.AddAxis(channel, trig.Axis, trig.ID, value, d, trig.Threshold, mode)
	}
}

// an axis pushed in the negative direction is pressed when it falls below
// the threshold.
func pressDigital(trig userinput.Trigger) behavior.Digital {
	if trig.Threshold < 0 {
		return behavior.DigitalFalling
	}
	return behavior.DigitalRising
}

func (inp *Inputs) addCycle(channel int, value float64) {
	_ = inp.Add(channel, userinput.KeyUnknown, value, behavior.Set, false)
}

// AddTap sets the channel to value for the cycle in which the trigger is
// pressed. The channel returns to zero on the following cycle.
func (inp *Inputs) AddTap(channel int, trig userinput.Trigger, value float64) error {
	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}
	inp.addCycle(channel, 0)
	inp.addPress(channel, trig, value, behavior.Set)
	return nil
}

// AddHold sets the channel to value while the trigger is held. The channel
// returns to zero when the trigger is released.
func (inp *Inputs) AddHold(channel int, trig userinput.Trigger, value float64) error {
	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}
	inp.addPress(channel, trig, value, behavior.Set)
	inp.addRelease(channel, trig, 0, behavior.Set)
	return nil
}

// AddRelease sets the channel to value for the cycle in which the trigger is
// released. The channel returns to zero on the following cycle or, for an
// axis trigger, when the axis is next pressed.
func (inp *Inputs) AddRelease(channel int, trig userinput.Trigger, value float64) error {
	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}
	inp.addRelease(channel, trig, value, behavior.Set)

	// an axis has no release event of its own so the channel is reset when
	// the axis is next pressed
	if trig.Kind == userinput.TriggerAxis {
		inp.addPress(channel, trig, 0, behavior.Set)
	} else {
		inp.addCycle(channel, 0)
	}
	return nil
}

// AddIncrement adds value to the channel every time the trigger is pressed.
func (inp *Inputs) AddIncrement(channel int, trig userinput.Trigger, value float64) error {
	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}
	inp.addPress(channel, trig, value, behavior.Increment)
	return nil
}

// AddToggle alternates the channel between zero and value every time the
// trigger is pressed.
func (inp *Inputs) AddToggle(channel int, trig userinput.Trigger, value float64) error {
	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}
	inp.addPress(channel, trig, value, behavior.Toggle)
	return nil
}

// AddToggleSymmetric alternates the channel between value and -value every
// time the trigger is pressed. The channel is set to value immediately.
func (inp *Inputs) AddToggleSymmetric(channel int, trig userinput.Trigger, value float64) error {
	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}
	inp.addPress(channel, trig, value, behavior.ToggleSymmetric)
	inp.bank.Raw()[channel] = int(value)
	return nil
}
