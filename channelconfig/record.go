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

package channelconfig

import (
	"fmt"
	"io"

	"github.com/rcmapper/rcmapper/behavior"
	"github.com/rcmapper/rcmapper/channels"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/inputs"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// InvalidRecord is the pattern of the error returned when a record cannot be
// used.
const InvalidRecord = "channelconfig: invalid record: %v"

// Channel is the recorded state of a single channel. The Channel field of
// each behavior is ignored in favour of the Channel field of this type.
type Channel struct {
	Channel int
	Bias    int
	Limit   int
	Bound   channels.BoundType
	Value   int

	Cycle      []behavior.Behavior
	KeyDown    []behavior.Key
	KeyUp      []behavior.Key
	ButtonDown []behavior.Button
	ButtonUp   []behavior.Button
	Axis       []behavior.Axis
}

// NewChannel returns a Channel with the default settings and no behaviors.
func NewChannel(channel int) Channel {
	return Channel{
		Channel: channel,
		Bias:    channels.DefaultBias,
		Limit:   channels.DefaultLimit,
		Bound:   channels.Clamp,
	}
}

func (c Channel) numBehaviors() int {
	return len(c.Cycle) + len(c.KeyDown) + len(c.KeyUp) +
		len(c.ButtonDown) + len(c.ButtonUp) + len(c.Axis)
}

// Record is the recorded state of a set of channels.
type Record struct {
	Channels []Channel
}

// Capture the state of every channel. Channels are captured in index order
// and the behaviors of each channel keep the order in which they are applied.
func Capture(inp *inputs.Inputs) Record {
	bank := inp.Bank()
	reg := inp.Registry()

	var rec Record
	for i := range bank.Len() {
		c := Channel{Channel: i}
		c.Bias, _ = bank.Bias(i)
		c.Limit, _ = bank.Limit(i)
		c.Bound, _ = bank.Bound(i)
		c.Value, _ = bank.Value(i)

		for _, b := range reg.Cycle {
			if b.Channel == i {
				c.Cycle = append(c.Cycle, b)
			}
		}
		for _, b := range reg.KeyDown {
			if b.Channel == i {
				c.KeyDown = append(c.KeyDown, b)
			}
		}
		for _, b := range reg.KeyUp {
			if b.Channel == i {
				c.KeyUp = append(c.KeyUp, b)
			}
		}
		for _, b := range reg.ButtonDown {
			if b.Channel == i {
				c.ButtonDown = append(c.ButtonDown, b)
			}
		}
		for _, b := range reg.ButtonUp {
			if b.Channel == i {
				c.ButtonUp = append(c.ButtonUp, b)
			}
		}
		for _, b := range reg.Axis {
			if b.Channel == i {
				c.Axis = append(c.Axis, b)
			}
		}

		rec.Channels = append(rec.Channels, c)
	}

	return rec
}

// Restore the recorded state. All behaviors are removed and the raw value of
// every channel is set to zero before the record is applied. The settings of
// channels not in the record are not changed.
//
// The record is checked before anything is changed. If the record refers to a
// channel that does not exist, or has an invalid setting or behavior, an error
// is returned and the Inputs instance is left as it was.
func Restore(inp *inputs.Inputs, rec Record) error {
	bank := inp.Bank()

	for _, c := range rec.Channels {
		if err := bank.Check(c.Channel); err != nil {
			logger.Logf(logger.Allow, "channelconfig", "rejected record: %v", err)
			return curated.Errorf(InvalidRecord, err)
		}
		if c.Limit < 0 {
			return curated.Errorf(InvalidRecord, curated.Errorf(channels.InvalidLimit, c.Limit))
		}
		if err := c.check(); err != nil {
			logger.Logf(logger.Allow, "channelconfig", "rejected record: channel %d: %v", c.Channel, err)
			return curated.Errorf(InvalidRecord, err)
		}
	}

	inp.Clear()
	raw := bank.Raw()
	for i := range raw {
		raw[i] = 0
	}

	for _, c := range rec.Channels {
		_ = bank.SetBias(c.Channel, c.Bias)
		_ = bank.SetLimit(c.Channel, c.Limit)
		_ = bank.SetBound(c.Channel, c.Bound)
		_ = bank.SetValue(c.Channel, c.Value)

		for _, b := range c.Cycle {
			_ = inp.Add(c.Channel, userinput.KeyUnknown, b.Value, b.Mode, false)
		}
		for _, b := range c.KeyDown {
			_ = inp.Add(c.Channel, b.Key, b.Value, b.Mode, false)
		}
		for _, b := range c.KeyUp {
			_ = inp.Add(c.Channel, b.Key, b.Value, b.Mode, true)
		}
		for _, b := range c.ButtonDown {
			_ = inp.AddButton(c.Channel, b.Button, b.ID, b.Value, b.Mode, false)
		}
		for _, b := range c.ButtonUp {
			_ = inp.AddButton(c.Channel, b.Button, b.ID, b.Value, b.Mode, true)
		}
		for _, b := range c.Axis {
			_ = inp.AddAxis(c.Channel, b.Axis, b.ID, b.Value, b.Digital, b.Threshold, b.Mode)
		}
	}

	return nil
}

// check every behavior in the channel.
func (c Channel) check() error {
	for _, b := range c.Cycle {
		if err := b.Check(); err != nil {
			return err
		}
	}
	for _, b := range c.KeyDown {
		if err := b.Check(); err != nil {
			return err
		}
	}
	for _, b := range c.KeyUp {
		if err := b.Check(); err != nil {
			return err
		}
	}
	for _, b := range c.ButtonDown {
		if err := b.Check(); err != nil {
			return err
		}
	}
	for _, b := range c.ButtonUp {
		if err := b.Check(); err != nil {
			return err
		}
	}
	for i := range c.Axis {
		if err := c.Axis[i].Check(); err != nil {
			return err
		}
	}
	return nil
}

// Write a readable summary of the record to the io.Writer. Channels with no
// behaviors are omitted.
func (rec Record) Write(output io.Writer) {
	rec.WriteNamed(output, nil)
}

// WriteNamed is the same as Write() but keys are named with the keyName
// function. If keyName is nil, or returns the empty string, the name from
// userinput.Key is used.
func (rec Record) WriteNamed(output io.Writer, keyName func(userinput.Key) string) {
	key := func(k userinput.Key) string {
		if keyName != nil {
			if n := keyName(k); n != "" {
				return fmt.Sprintf("Key %s", n)
			}
		}
		return userinput.KeyTrigger(k).String()
	}

	for _, c := range rec.Channels {
		if c.numBehaviors() == 0 {
			continue
		}

		fmt.Fprintf(output, "channel %d: bias %d, limit %d, %s\n", c.Channel, c.Bias, c.Limit, c.Bound)
		for _, b := range c.Cycle {
			fmt.Fprintf(output, "  %s: %s %g\n", inputs.ClassCycle, b.Mode, b.Value)
		}
		for _, b := range c.KeyDown {
			fmt.Fprintf(output, "  %s %s: %s %g\n", inputs.ClassKeyDown, key(b.Key), b.Mode, b.Value)
		}
		for _, b := range c.KeyUp {
			fmt.Fprintf(output, "  %s %s: %s %g\n", inputs.ClassKeyUp, key(b.Key), b.Mode, b.Value)
		}
		for _, b := range c.ButtonDown {
			fmt.Fprintf(output, "  %s %s: %s %g\n", inputs.ClassButtonDown, userinput.ButtonTrigger(b.Button, b.ID), b.Mode, b.Value)
		}
		for _, b := range c.ButtonUp {
			fmt.Fprintf(output, "  %s %s: %s %g\n", inputs.ClassButtonUp, userinput.ButtonTrigger(b.Button, b.ID), b.Mode, b.Value)
		}
		for _, b := range c.Axis {
			trig := userinput.AxisTrigger(b.Axis, b.ID, b.Threshold)
			if b.Digital == behavior.DigitalNone {
				fmt.Fprintf(output, "  %s %s: scale %g\n", inputs.ClassAxis, trig, b.Value)
			} else {
				fmt.Fprintf(output, "  %s %s %s %g: %s %g\n", inputs.ClassAxis, trig, b.Digital, b.Threshold, b.Mode, b.Value)
			}
		}
	}
}
