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
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/rcmapper/rcmapper/behavior"
	"github.com/rcmapper/rcmapper/channels"
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/inputs"
	"github.com/rcmapper/rcmapper/userinput"
)

// Marshal the record to JSON.
func (rec Record) Marshal() ([]byte, error) {
	doc := `{"channels":[]}`

	for _, c := range rec.Channels {
		ch, err := marshalChannel(c)
		if err != nil {
			return nil, curated.Errorf("channelconfig: %v", err)
		}
		doc, err = sjson.SetRaw(doc, "channels.-1", ch)
		if err != nil {
			return nil, curated.Errorf("channelconfig: %v", err)
		}
	}

	return []byte(doc), nil
}

// setter accumulates the first error from a sequence of sjson calls.
type setter struct {
	doc string
	err error
}

func (s *setter) set(path string, value any) {
	if s.err == nil {
		s.doc, s.err = sjson.Set(s.doc, path, value)
	}
}

func (s *setter) setRaw(path string, value string) {
	if s.err == nil {
		s.doc, s.err = sjson.SetRaw(s.doc, path, value)
	}
}

func (s *setter) entry(path string, fields ...any) {
	e := setter{doc: "{}"}
	for i := 0; i+1 < len(fields); i += 2 {
		e.set(fields[i].(string), fields[i+1])
	}
	if e.err != nil {
		s.err = e.err
		return
	}
	s.setRaw(path, e.doc)
}

// sjson path that appends to the list of behaviors for the trigger class
func appendPath(cl inputs.TriggerClass) string {
	return cl.String() + ".-1"
}

func marshalChannel(c Channel) (string, error) {
	s := setter{doc: "{}"}
	s.set("channel", c.Channel)
	s.set("bias", c.Bias)
	s.set("limit", c.Limit)
	s.set("bound", c.Bound.String())
	s.set("value", c.Value)

	for cl := inputs.ClassCycle; cl <= inputs.ClassAxis; cl++ {
		s.setRaw(cl.String(), "[]")
	}

	for _, b := range c.Cycle {
		s.entry(appendPath(inputs.ClassCycle), "value", b.Value, "mode", b.Mode.String())
	}
	for _, b := range c.KeyDown {
		s.entry(appendPath(inputs.ClassKeyDown), "key", int32(b.Key), "value", b.Value, "mode", b.Mode.String())
	}
	for _, b := range c.KeyUp {
		s.entry(appendPath(inputs.ClassKeyUp), "key", int32(b.Key), "value", b.Value, "mode", b.Mode.String())
	}
	for _, b := range c.ButtonDown {
		s.entry(appendPath(inputs.ClassButtonDown), "button", int(b.Button), "device", int(b.ID), "value", b.Value, "mode", b.Mode.String())
	}
	for _, b := range c.ButtonUp {
		s.entry(appendPath(inputs.ClassButtonUp), "button", int(b.Button), "device", int(b.ID), "value", b.Value, "mode", b.Mode.String())
	}
	for _, b := range c.Axis {
		s.entry(appendPath(inputs.ClassAxis), "axis", int(b.Axis), "device", int(b.ID), "value", b.Value, "mode", b.Mode.String(),
			"digital", b.Digital.String(), "threshold", b.Threshold)
	}

	return s.doc, s.err
}

// Unmarshal a record from JSON. Missing settings take the default value and a
// missing mode is taken to be set. Unknown bound types are treated as clamp.
// Unknown modes are an error.
func Unmarshal(data []byte) (Record, error) {
	var rec Record

	if !gjson.ValidBytes(data) {
		return rec, curated.Errorf(InvalidRecord, "not valid JSON")
	}

	chs := gjson.GetBytes(data, "channels")
	if !chs.IsArray() {
		return rec, curated.Errorf(InvalidRecord, "no channels array")
	}

	for i, r := range chs.Array() {
		c, err := unmarshalChannel(r)
		if err != nil {
			return Record{}, curated.Errorf(InvalidRecord, fmt.Sprintf("entry %d: %v", i, err))
		}
		rec.Channels = append(rec.Channels, c)
	}

	return rec, nil
}

func intOr(r gjson.Result, path string, def int) int {
	v := r.Get(path)
	if !v.Exists() {
		return def
	}
	return int(v.Int())
}

func unmarshalBehavior(r gjson.Result) (behavior.Behavior, error) {
	m := behavior.Set
	if mode := r.Get("mode"); mode.Exists() {
		var err error
		m, err = behavior.ParseMode(mode.String())
		if err != nil {
			return behavior.Behavior{}, err
		}
	}
	return behavior.Behavior{Value: r.Get("value").Float(), Mode: m}, nil
}

func unmarshalChannel(r gjson.Result) (Channel, error) {
	if !r.IsObject() {
		return Channel{}, curated.Errorf("not an object")
	}

	idx := r.Get("channel")
	if !idx.Exists() {
		return Channel{}, curated.Errorf("no channel index")
	}

	c := NewChannel(int(idx.Int()))
	c.Bias = intOr(r, "bias", channels.DefaultBias)
	c.Limit = intOr(r, "limit", channels.DefaultLimit)
	c.Bound = channels.ParseBoundType(r.Get("bound").String())
	c.Value = intOr(r, "value", 0)

	for _, e := range r.Get(inputs.ClassCycle.String()).Array() {
		b, err := unmarshalBehavior(e)
		if err != nil {
			return c, err
		}
		b.Channel = c.Channel
		c.Cycle = append(c.Cycle, b)
	}

	keys := func(path string) ([]behavior.Key, error) {
		var l []behavior.Key
		for _, e := range r.Get(path).Array() {
			b, err := unmarshalBehavior(e)
			if err != nil {
				return nil, err
			}
			b.Channel = c.Channel
			l = append(l, behavior.Key{Behavior: b, Key: userinput.Key(e.Get("key").Int())})
		}
		return l, nil
	}

	buttons := func(path string) ([]behavior.Button, error) {
		var l []behavior.Button
		for _, e := range r.Get(path).Array() {
			b, err := unmarshalBehavior(e)
			if err != nil {
				return nil, err
			}
			b.Channel = c.Channel
			l = append(l, behavior.Button{
				Behavior: b,
				Button:   userinput.Button(e.Get("button").Int()),
				ID:       userinput.DeviceID(e.Get("device").Int()),
			})
		}
		return l, nil
	}

	var err error
	if c.KeyDown, err = keys(inputs.ClassKeyDown.String()); err != nil {
		return c, err
	}
	if c.KeyUp, err = keys(inputs.ClassKeyUp.String()); err != nil {
		return c, err
	}
	if c.ButtonDown, err = buttons(inputs.ClassButtonDown.String()); err != nil {
		return c, err
	}
	if c.ButtonUp, err = buttons(inputs.ClassButtonUp.String()); err != nil {
		return c, err
	}

	for _, e := range r.Get(inputs.ClassAxis.String()).Array() {
		b, err := unmarshalBehavior(e)
		if err != nil {
			return c, err
		}
		b.Channel = c.Channel

		d, err := behavior.ParseDigital(e.Get("digital").String())
		if err != nil {
			return c, err
		}

		c.Axis = append(c.Axis, behavior.Axis{
			Behavior:  b,
			Axis:      userinput.Axis(e.Get("axis").Int()),
			ID:        userinput.DeviceID(e.Get("device").Int()),
			Digital:   d,
			Threshold: e.Get("threshold").Float(),
		})
	}

	return c, nil
}

// Load a record from a file.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, curated.Errorf("channelconfig: %v", err)
	}
	return Unmarshal(data)
}

// Save the record to a file. The file is replaced if it already exists.
func (rec Record) Save(path string) error {
	data, err := rec.Marshal()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, pretty.Pretty(data), 0o644)
	if err != nil {
		return curated.Errorf("channelconfig: %v", err)
	}

	return nil
}
