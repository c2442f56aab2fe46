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

package termsource

import (
	"testing"

	"github.com/rcmapper/rcmapper/test"
	"github.com/rcmapper/rcmapper/userinput"
)

func TestTranslate(t *testing.T) {
	evs := translate([]byte("aB"))
	test.ExpectEquality(t, len(evs), 4)
	test.ExpectEquality[userinput.Event](t, evs[0], userinput.EventKeyboard{Key: 'a', Down: true})
	test.ExpectEquality[userinput.Event](t, evs[1], userinput.EventKeyboard{Key: 'a', Down: false})
	test.ExpectEquality[userinput.Event](t, evs[2], userinput.EventKeyboard{Key: 'b', Down: true})
	test.ExpectEquality[userinput.Event](t, evs[3], userinput.EventKeyboard{Key: 'b', Down: false})

	evs = translate([]byte{'\r'})
	test.ExpectEquality[userinput.Event](t, evs[0], userinput.EventKeyboard{Key: userinput.KeyReturn, Down: true})
}

func TestQuit(t *testing.T) {
	evs := translate([]byte{'x', keyInterrupt, 'y'})
	test.ExpectEquality(t, len(evs), 5)
	test.ExpectEquality[userinput.Event](t, evs[2], userinput.EventQuit{})

	evs = translate([]byte{keyEsc})
	test.ExpectEquality(t, len(evs), 1)
	test.ExpectEquality[userinput.Event](t, evs[0], userinput.EventQuit{})
}

func TestEscapeSequences(t *testing.T) {
	evs := translate([]byte("\x1b[A\x1b[D"))
	test.ExpectEquality(t, len(evs), 4)
	test.ExpectEquality[userinput.Event](t, evs[0], userinput.EventKeyboard{Key: userinput.KeyUp, Down: true})
	test.ExpectEquality[userinput.Event](t, evs[2], userinput.EventKeyboard{Key: userinput.KeyLeft, Down: true})

	// unrecognised sequences with parameters are discarded
	evs = translate([]byte("\x1b[1;5Pz"))
	test.ExpectEquality(t, len(evs), 2)
	test.ExpectEquality[userinput.Event](t, evs[0], userinput.EventKeyboard{Key: 'z', Down: true})

	// incomplete sequence
	evs = translate([]byte("\x1b[1"))
	test.ExpectEquality(t, len(evs), 0)
}
