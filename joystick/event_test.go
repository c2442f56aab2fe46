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
	"testing"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/test"
	"github.com/rcmapper/rcmapper/userinput"
)

func encode(ts uint32, value int16, typ uint8, index uint8) []byte {
	b := make([]byte, eventSize)
	binary.NativeEndian.PutUint32(b[0:], ts)
	binary.NativeEndian.PutUint16(b[4:], uint16(value))
	b[6] = typ
	b[7] = index
	return b
}

func TestDecode(t *testing.T) {
	ev := decode(encode(1000, -32767, typeAxis, 3))
	test.ExpectEquality(t, ev.Timestamp, 1000)
	test.ExpectEquality(t, ev.Value, -32767)
	test.ExpectEquality(t, ev.Type, typeAxis)
	test.ExpectEquality(t, ev.Index, 3)
}

func TestTranslate(t *testing.T) {
	uev, ok := translate(2, decode(encode(0, 1, typeButton, 4)))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, uev, userinput.EventGamepadButton{ID: 2, Button: 4, Down: true})

	uev, ok = translate(2, decode(encode(0, 0, typeButton, 4)))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, uev, userinput.EventGamepadButton{ID: 2, Button: 4, Down: false})

	uev, ok = translate(0, decode(encode(0, 12000, typeAxis, 1)))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, uev, userinput.EventGamepadAxis{ID: 0, Axis: 1, Value: 12000})

	// initial state events are ignored
	_, ok = translate(0, decode(encode(0, 1, typeButton|typeInit, 0)))
	test.ExpectFailure(t, ok)
	_, ok = translate(0, decode(encode(0, 100, typeAxis|typeInit, 0)))
	test.ExpectFailure(t, ok)

	_, ok = translate(0, decode(encode(0, 0, 0x04, 0)))
	test.ExpectFailure(t, ok)
}

func TestDeviceID(t *testing.T) {
	id, err := deviceID("/dev/input/js3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 3)

	_, err = deviceID("/dev/input/event3")
	test.ExpectSuccess(t, curated.Is(err, BadDevice))
}
