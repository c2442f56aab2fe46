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

import (
	"fmt"
	"strings"
)

// Key is a keyboard key code. Values follow the SDL keycode scheme.
type Key int32

// KeyUnknown is the zero key. Binding a behavior to KeyUnknown means the
// behavior is not triggered by a key at all but is applied every cycle.
const KeyUnknown Key = 0

// Keys that do not have a printable representation.
const (
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyReturn    Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = ' '
	KeyDelete    Key = 127

	KeyRight Key = 0x4000004f
	KeyLeft  Key = 0x40000050
	KeyDown  Key = 0x40000051
	KeyUp    Key = 0x40000052
)

var keyNames = map[Key]string{
	KeyUnknown:   "Unknown",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyDelete:    "Delete",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyDown:      "Down",
	KeyUp:        "Up",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	if k > ' ' && k < KeyDelete {
		return strings.ToUpper(string(rune(k)))
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// KeyFromRune returns the Key for a printable character. Upper-case letters
// map to the same key as lower-case letters.
func KeyFromRune(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Key(r)
}
