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

package channels

import "strings"

// BoundType is the range policy of a channel.
type BoundType int

// List of valid BoundType values. Any other value is treated as Clamp.
const (
	Clamp BoundType = iota
	Free
	Modulo
	Loop
)

func (b BoundType) String() string {
	switch b {
	case Free:
		return "free"
	case Modulo:
		return "modulo"
	case Loop:
		return "loop"
	}
	return "clamp"
}

// ParseBoundType returns the BoundType for the name. Names are case
// insensitive. An unrecognised name returns Clamp.
func ParseBoundType(s string) BoundType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return Free
	case "modulo":
		return Modulo
	case "loop":
		return Loop
	}
	return Clamp
}

// Bound applies the range policy to a single raw value.
//
// Modulo uses Go's remainder operator, which truncates, so the sign of the
// result follows the sign of raw. Loop wraps into the range [-limit, limit)
// for both positive and negative values. The two policies behave differently
// for negative raw values and should not be confused.
//
// A limit of zero with Modulo or Loop results in zero. Loop is correct for
// every raw value and every limit up to math.MaxInt.
func Bound(raw int, limit int, bound BoundType) int {
	switch bound {
	case Free:
		return raw
	case Modulo:
		if limit == 0 {
			return 0
		}
		return raw % limit
	case Loop:
		if limit <= 0 {
			return 0
		}
		return loop(raw, limit)
	}

	if raw > limit {
		return limit
	}
	if raw < -limit {
		return -limit
	}
	return raw
}

// loop wraps raw into [-limit, limit). the arithmetic is unsigned so that
// neither the span of the range nor the offset of raw into it can overflow.
// limit must be positive.
func loop(raw int, limit int) int {
	lim := uint(limit)
	span := lim * 2

	// raw mod span, always positive
	var r uint
	if raw >= 0 {
		r = uint(raw) % span
	} else {
		r = span - 1 - uint(-(raw+1))%span
	}

	// shift by limit, modulo span
	if r >= span-lim {
		r -= span - lim
	} else {
		r += lim
	}

	if r >= lim {
		return int(r - lim)
	}
	return -int(lim - r)
}
