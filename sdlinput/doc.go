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

// Package sdlinput is a userinput.Source that reads keyboard and game
// controller events from SDL.
//
// Every game controller attached when the Source is created is opened.
// Controllers attached or removed later are opened and closed as the events
// arrive. The device ID of a controller event is the SDL instance ID of the
// controller.
//
// SDL only delivers keyboard events to a focused window. The Source can create
// a small window for this purpose.
//
// SDL requires that events are polled from the thread that initialised it. The
// program should lock the main goroutine to the main thread and create and poll
// the Source from that goroutine.
package sdlinput
