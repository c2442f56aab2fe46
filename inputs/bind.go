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
	"strings"

	"github.com/rcmapper/rcmapper/behavior"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// UnknownBindMode is the pattern of the error returned by ParseBindMode().
const UnknownBindMode = "inputs: unknown bind mode: %s"

// BindMode describes how a trigger affects a channel. It selects which of the
// helper functions is used by Bind().
type BindMode int

// List of valid BindMode values.
const (
	BindNone BindMode = iota
	BindRaw
	BindTap
	BindHold
	BindRelease
	BindIncrement
	BindToggle
	BindToggleSymmetric
)

var bindModeNames = []string{
	"none",
	"raw",
	"tap",
	"hold",
	"release",
	"increment",
	"toggle",
	"toggle_symmetric",
}

func (m BindMode) String() string {
	if m < 0 || int(m) >= len(bindModeNames) {
		return "unknown"
	}
	return bindModeNames[m]
}

// BindModeNames returns the names of all valid bind modes.
func BindModeNames() []string {
	return append([]string(nil), bindModeNames...)
}

// ParseBindMode returns the BindMode for the name. The name is not case
// sensitive.
func ParseBindMode(s string) (BindMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range bindModeNames {
		if n == s {
			return BindMode(i), nil
		}
	}
	return BindNone, curated.Errorf(UnknownBindMode, s)
}

// Bind replaces the behaviors of the channel with those for the trigger and
// bind mode. With BindNone the channel is left with no behaviors. The channel
// value is reset to zero before the new behaviors are added.
func (inp *Inputs) Bind(channel int, trig userinput.Trigger, mode BindMode, value float64) error {
	if mode < 0 || int(mode) >= len(bindModeNames) {
		logger.Logf(logger.Allow, "inputs", "rejected bind mode: %d", int(mode))
		return curated.Errorf(UnknownBindMode, mode)
	}

	if mode == BindNone {
		return inp.ClearChannel(channel)
	}

	if err := inp.checkTrigger(channel, trig); err != nil {
		return err
	}

	_ = inp.ClearChannel(channel)

	switch mode {
	case BindRaw:
		switch trig.Kind {
		case userinput.TriggerKey:
			return inp.Add(channel, trig.Key, value, behavior.Set, false)
		case userinput.TriggerButton:
			return inp.AddButton(channel, trig.Button, trig.ID, value, behavior.Set, false)
		case userinput.TriggerAxis:
			return inp.AddAxis(channel, trig.Axis, trig.ID, value, behavior.DigitalNone, trig.Threshold, behavior.Set)
		}
	case BindTap:
		return inp.AddTap(channel, trig, value)
	case BindHold:
		return inp.AddHold(channel, trig, value)
	case BindRelease:
		return inp.AddRelease(channel, trig, value)
	case BindIncrement:
		return inp.AddIncrement(channel, trig, value)
	case BindToggle:
		return inp.AddToggle(channel, trig, value)
	case BindToggleSymmetric:
		return inp.AddToggleSymmetric(channel, trig, value)
	}

	return curated.Errorf(UnknownBindMode, mode)
}
