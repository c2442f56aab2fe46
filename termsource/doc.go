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

// Package termsource is a userinput.Source that reads key presses from a
// terminal in raw mode.
//
// Terminals do not report key releases so every key press produces a key down
// event followed immediately by a key up event. Holding a key down produces
// as many pairs of events as the terminal's key repeat generates.
//
// Ctrl-C and a lone Escape produce a quit event. The cursor keys are
// recognised from their escape sequences. Other escape sequences are
// discarded.
package termsource
