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

// Package behavior defines the bindings between an input and a channel.
//
// A Behavior is the channel index, a value and a Mode. Applying a behavior to
// the raw channel values changes one channel according to the mode:
//
//	Set              raw = value
//	Increment        raw = raw + value
//	Toggle           raw = value - raw
//	ToggleSymmetric  raw = -raw
//
// Key, Button and Axis embed a Behavior and add the identity of the input that
// triggers it. Axis additionally remembers the previous position of the axis so
// that it can act as a button when the axis crosses a threshold. This is the
// only state in a behavior that changes after creation.
package behavior
