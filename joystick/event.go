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

package joystick

import (
	"encoding/binary"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/userinput"
)

// Sentinal error patterns.
const (
	NoDevices   = "joystick: no devices found"
	BadDevice   = "joystick: %s: %v"
	Unsupported = "joystick: not supported on this platform"
)

// the size of struct js_event in the kernel
const eventSize = 8

// values of the type field in struct js_event
const (
	typeButton = 0x01
	typeAxis   = 0x02

	// set in addition to the button or axis type for the synthetic events that
	// report the state of the device when it is opened
	typeInit = 0x80
)

type event struct {
	Timestamp uint32
	Value     int16
	Type      uint8
	Index     uint8
}

func decode(b []byte) event {
	return event{
		Timestamp: binary.NativeEndian.Uint32(b[0:]),
		Value:     int16(binary.NativeEndian.Uint16(b[4:])),
		Type:      b[6],
		Index:     b[7],
	}
}

// translate a joystick event to a userinput event. returns false if the event
// is of no interest.
func translate(id userinput.DeviceID, ev event) (userinput.Event, bool) {
	if ev.Type&typeInit == typeInit {
		return nil, false
	}

	switch ev.Type {
	case typeButton:
		return userinput.EventGamepadButton{
			ID:     id,
			Button: userinput.Button(ev.Index),
			Down:   ev.Value != 0,
		}, true
	case typeAxis:
		return userinput.EventGamepadAxis{
			ID:    id,
			Axis:  userinput.Axis(ev.Index),
			Value: ev.Value,
		}, true
	}

	return nil, false
}

// deviceID returns the number of a device file called jsN.
func deviceID(path string) (userinput.DeviceID, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(filepath.Base(path), "js"))
	if err != nil {
		return 0, curated.Errorf(BadDevice, path, "not a joystick device")
	}
	return userinput.DeviceID(n), nil
}
