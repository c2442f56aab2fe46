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

// Package userinput describes input from real hardware in a way that hides the
// details of the hardware and of the library used to read it.
//
// It can be thought of as a translation layer between the device sources (the
// sdlinput, joystick and termsource packages) and the inputs package. Device
// sources produce values of the Event types defined here and make them
// available through the Source interface. The inputs package consumes them
// without knowing where they came from.
//
// The device library in use during development was SDL and so there is a bias
// towards that system. In particular, Key values are SDL keycodes, which for
// printable characters are the same as the lower-case ASCII value.
package userinput
