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

// Package inputs maps user input onto a bank of channels.
//
// An Inputs instance owns a channel bank (see the channels package) and six
// ordered lists of behaviors (see the behavior package), one for each trigger
// class: every cycle, key down, key up, button down, button up and axis
// motion.
//
// The Cycle() function should be called at a regular rate by the program. Each
// call:
//
//  1. applies every per-cycle behavior
//  2. drains the pending events from the userinput.Source and applies the
//     behaviors that match each event
//  3. applies the range policy of every channel
//  4. passes the biased channel values to the consumer, if one is set
//
// Behaviors that share a trigger are applied in the order they were added,
// each seeing the result of the previous one.
//
// Behaviors are added with the Add*() functions. The helper functions
// AddTap(), AddHold(), AddRelease(), AddIncrement(), AddToggle() and
// AddToggleSymmetric() add the combinations of behaviors for common
// interactions. Bind() chooses the helper from a BindMode value.
//
// An Inputs instance is not safe for concurrent use. Calls to Cycle() and to
// the Add*() and Clear*() functions must be serialised by the caller.
package inputs
