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

// Package joystick is a userinput.Source that reads the Linux joystick
// interface directly from the /dev/input/jsN device files.
//
// The device ID of an event is the N of the device file. Buttons and axes are
// numbered as the kernel numbers them, which may not match the numbering used
// by SDL for the same device.
//
// When no device paths are given to NewSource() the /dev/input directory is
// watched with inotify. Devices plugged in after the source is created are
// opened as they appear. A device that fails to read is closed and removed,
// and opened again if it reappears.
//
// On platforms other than Linux NewSource() always fails.
package joystick
