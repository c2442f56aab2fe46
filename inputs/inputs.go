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

package inputs

import (
	"github.com/rcmapper/rcmapper/channels"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// InvariantBroken is the pattern of the error used to panic when a behavior
// refers to a channel that does not exist. The Add*() functions check channel
// indexes so this should never happen.
const InvariantBroken = "inputs: invariant broken: %v"

// Inputs maps events from a userinput.Source onto a bank of channels.
type Inputs struct {
	bank *channels.Bank
	reg  Registry
	src  userinput.Source

	// called at the end of every cycle with the biased channel values
	consumer func([]int)
	snapshot []int
}

// NewInputs is the preferred method of initialisation for the Inputs type. The
// source can be nil, in which case no events are processed until a source is
// set with SetSource().
func NewInputs(numChannels int, src userinput.Source) (*Inputs, error) {
	bank, err := channels.NewBank(numChannels)
	if err != nil {
		return nil, curated.Errorf("inputs: %v", err)
	}

	return &Inputs{
		bank: bank,
		src:  src,
	}, nil
}

// SetSource changes the source of events.
func (inp *Inputs) SetSource(src userinput.Source) {
	inp.src = src
}

// SetConsumer sets the function to be called at the end of every cycle. The
// function receives the biased channel values. The slice is reused on the next
// cycle and should not be retained.
func (inp *Inputs) SetConsumer(consumer func([]int)) {
	inp.consumer = consumer
}

// Bank returns the channel bank. The bank can be used to change the bias,
// limit and bound type of a channel.
func (inp *Inputs) Bank() *channels.Bank {
	return inp.bank
}

// Registry returns a copy of the behaviors currently in use.
func (inp *Inputs) Registry() Registry {
	return inp.reg.Clone()
}

// Cycle runs one cycle. It returns false if a quit event was seen, in which
// case any events queued after the quit event remain in the source.
func (inp *Inputs) Cycle() bool {
	raw := inp.bank.Raw()
	for _, b := range inp.reg.Cycle {
		mustApply(b.Apply(raw))
	}

	running := inp.drain()

	inp.bank.ApplyBounds()

	if inp.consumer != nil {
		inp.snapshot = inp.bank.Snapshot(inp.snapshot)
		inp.consumer(inp.snapshot)
	}

	return running
}

// CycleInto runs one cycle and writes the biased channel values to buf. See
// ChannelsInto() for how buf is used.
func (inp *Inputs) CycleInto(buf []int) ([]int, bool) {
	running := inp.Cycle()
	return inp.bank.Snapshot(buf), running
}

// Channels returns a new slice containing the biased channel values.
func (inp *Inputs) Channels() []int {
	return inp.bank.Snapshot(nil)
}

// ChannelsInto writes the biased channel values into buf. If buf is not long
// enough a new slice is allocated. The slice that was written to is returned.
func (inp *Inputs) ChannelsInto(buf []int) []int {
	return inp.bank.Snapshot(buf)
}

// drain all pending events from the source. returns false if a quit event was
// seen.
func (inp *Inputs) drain() bool {
	if inp.src == nil {
		return true
	}

	for {
		ev, ok := inp.src.Poll()
		if !ok {
			return true
		}
		if inp.HandleEvent(ev) {
			logger.Log(logger.Allow, "inputs", "quit event")
			return false
		}
	}
}

func mustApply(err error) {
	if err != nil {
		panic(curated.Errorf(InvariantBroken, err))
	}
}
