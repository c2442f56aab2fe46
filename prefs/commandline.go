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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// pairs in a prefs string are separated by a semi-colon. the key and value
// of a pair are separated by a double colon
const (
	pairSeparator  = ";"
	valueSeparator = "::"
)

// overrides are grouped. only the group at the top of the stack is consulted
// by GetCommandLinePref()
var commandLineStack []map[string]Value

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PopCommandLineStack removes the group at the top of the stack and returns
// the overrides in it that were never consumed by GetCommandLinePref(). The
// returned string is sorted by key and is in the format accepted by
// PushCommandLineStack(). An empty string means every override was used.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s%s%v", k, valueSeparator, top[k]))
	}

	return strings.Join(pairs, pairSeparator+" ")
}

// PushCommandLineStack parses a prefs string and adds it as a new group. For
// example:
//
//	inputs.channels::8; poll.hz::100
//
// Pairs without a separator, or with more than one, are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, p := range strings.Split(prefs, pairSeparator) {
		k, v, ok := strings.Cut(p, valueSeparator)
		if !ok || strings.Contains(v, valueSeparator) {
			continue
		}
		group[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLineStack = append(commandLineStack, group)
}

// GetCommandLinePref returns the override for the key from the group at the
// top of the stack. An override can only be consumed once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}
