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
	"strings"

	"github.com/rcmapper/rcmapper/curated"
)

// Sentinal error patterns.
const (
	UnknownMode      = "behavior: unknown mode: %s"
	UnknownDigital   = "behavior: unknown digital mode: %s"
	InvalidThreshold = "behavior: threshold out of range: %v"
)

// Mode is how a behavior combines its value with the channel.
type Mode int

// List of valid Mode values.
const (
	Set Mode = iota
	Increment
	Toggle
	ToggleSymmetric
)

func (m Mode) String() string {
	switch m {
	case Set:
		return "set"
	case Increment:
		return "increment"
	case Toggle:
		return "toggle"
	case ToggleSymmetric:
		return "toggle_symmetric"
	}
	return "unknown"
}

// Valid returns true if the Mode is one of the listed values.
func (m Mode) Valid() bool {
	return m >= Set && m <= ToggleSymmetric
}

// ParseMode returns the Mode for the name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "set":
		return Set, nil
	case "increment":
		return Increment, nil
	case "toggle":
		return Toggle, nil
	case "toggle_symmetric":
		return ToggleSymmetric, nil
	}
	return Set, curated.Errorf(UnknownMode, s)
}

// Digital is how an axis is interpreted.
type Digital int

// List of valid Digital values.
const (
	// the axis position scales the value of the behavior
	DigitalNone Digital = iota

	// the behavior is applied when the axis rises above the threshold
	DigitalRising

	// the behavior is applied when the axis falls below the threshold
	DigitalFalling
)

func (d Digital) String() string {
	switch d {
	case DigitalNone:
		return "none"
	case DigitalRising:
		return "rising"
	case DigitalFalling:
		return "falling"
	}
	return "unknown"
}

// Valid returns true if the Digital mode is one of the listed values.
func (d Digital) Valid() bool {
	return d >= DigitalNone && d <= DigitalFalling
}

// ValidThreshold returns true if the axis threshold is in the range -1.0 to
// 1.0. NaN is not valid.
func ValidThreshold(threshold float64) bool {
	return threshold >= -1.0 && threshold <= 1.0
}

// ParseDigital returns the Digital mode for the name. The empty string is
// DigitalNone.
func ParseDigital(s string) (Digital, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DigitalNone, nil
	case "rising":
		return DigitalRising, nil
	case "falling":
		return DigitalFalling, nil
	}
	return DigitalNone, curated.Errorf(UnknownDigital, s)
}
