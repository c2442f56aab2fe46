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
	"github.com/pkg/term"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// ASCII codes with special meaning.
const (
	keyInterrupt = 3
	keyEsc       = 27
	keyCursor    = '['
	keyEnter     = '\r'
)

// Source reads key presses from a terminal.
type Source struct {
	tty     *term.Term
	buf     []byte
	pending userinput.Queue
}

// NewSource opens the terminal device in raw mode. If device is the empty
// string the controlling terminal is used. The terminal is restored by
// Close().
func NewSource(device string) (*Source, error) {
	if device == "" {
		device = "/dev/tty"
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("term: %v", err)
	}

	return &Source{
		tty: tty,
		buf: make([]byte, 256),
	}, nil
}

// Close restores the terminal to the state it was in before NewSource() was
// called.
func (src *Source) Close() error {
	if err := src.tty.Restore(); err != nil {
		_ = src.tty.Close()
		return curated.Errorf("term: %v", err)
	}
	if err := src.tty.Close(); err != nil {
		return curated.Errorf("term: %v", err)
	}
	return nil
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() (userinput.Event, bool) {
	if src.pending.Len() == 0 {
		src.fill()
	}
	return src.pending.Poll()
}

// read whatever is available from the terminal without blocking.
func (src *Source) fill() {
	n, err := src.tty.Available()
	if err != nil {
		logger.Log(logger.Allow, "term", err)
		return
	}
	if n <= 0 {
		return
	}
	if n > len(src.buf) {
		n = len(src.buf)
	}

	n, err = src.tty.Read(src.buf[:n])
	if err != nil {
		logger.Log(logger.Allow, "term", err)
		return
	}

	src.pending.Push(translate(src.buf[:n])...)
}

func press(k userinput.Key) []userinput.Event {
	return []userinput.Event{
		userinput.EventKeyboard{Key: k, Down: true},
		userinput.EventKeyboard{Key: k, Down: false},
	}
}

// translate bytes read from the terminal into events.
func translate(b []byte) []userinput.Event {
	var evs []userinput.Event

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case keyInterrupt:
			evs = append(evs, userinput.EventQuit{})

		case keyEsc:
			if i+1 >= len(b) || b[i+1] != keyCursor {
				evs = append(evs, userinput.EventQuit{})
				continue
			}

			// skip the parameter bytes of the sequence and stop on the final
			// byte, which is in the range 0x40 to 0x7e
			i += 2
			for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
				i++
			}
			if i >= len(b) {
				break
			}

			switch b[i] {
			case 'A':
				evs = append(evs, press(userinput.KeyUp)...)
			case 'B':
				evs = append(evs, press(userinput.KeyDown)...)
			case 'C':
				evs = append(evs, press(userinput.KeyRight)...)
			case 'D':
				evs = append(evs, press(userinput.KeyLeft)...)
			}

		case keyEnter:
			evs = append(evs, press(userinput.KeyReturn)...)

		default:
			evs = append(evs, press(userinput.KeyFromRune(rune(b[i])))...)
		}
	}

	return evs
}
