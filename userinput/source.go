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

package userinput

// Source is implemented by anything that produces events. Poll() must never
// block. It returns false when there are no more events pending, in which case
// the Event value is nil.
type Source interface {
	Poll() (Event, bool)
}

// Queue is a FIFO Source. Events are added with Push() and removed with
// Poll(). The zero value is an empty queue ready for use.
//
// Queue is useful for injecting events from outside of a device source and for
// testing.
type Queue struct {
	events []Event
}

// Push adds events to the end of the queue.
func (q *Queue) Push(ev ...Event) {
	q.events = append(q.events, ev...)
}

// Poll implements the Source interface.
func (q *Queue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

// Flush discards all pending events.
func (q *Queue) Flush() {
	q.events = q.events[:0]
}

// Sources combines several sources into one. Each source is drained in turn,
// so events from the first source are always delivered before events from the
// second source.
type Sources []Source

// Poll implements the Source interface.
func (s Sources) Poll() (Event, bool) {
	for _, src := range s {
		if ev, ok := src.Poll(); ok {
			return ev, true
		}
	}
	return nil, false
}

// Drain discards all pending events in the source.
func Drain(src Source) {
	for {
		if _, ok := src.Poll(); !ok {
			return
		}
	}
}
