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

package main

import (
	"fmt"

	"github.com/rcmapper/rcmapper/channels"
	"github.com/rcmapper/rcmapper/paths"
	"github.com/rcmapper/rcmapper/prefs"
)

// name of the preferences file in the resource directory.
const prefsFile = "preferences"

// preferences of the application. Values can be overridden on the command
// line with the -prefs flag.
type preferences struct {
	dsk *prefs.Disk

	channels prefs.Int
	bias     prefs.Int
	limit    prefs.Int
	hz       prefs.Int
	bindings prefs.String
	sdl      prefs.Bool
	joystick prefs.Bool
	terminal prefs.Bool
	colour   prefs.Bool
}

func newPreferences() (*preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}
	return loadPreferences(pth)
}

func loadPreferences(pth string) (*preferences, error) {
	p := &preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("value must be positive: %d", v.(int))
		}
		return nil
	}
	p.channels.SetHookPre(positive)
	p.hz.SetHookPre(positive)
	p.limit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("limit must not be negative: %d", v.(int))
		}
		return nil
	})

	if err := p.setDefaults(); err != nil {
		return nil, err
	}

	if err := p.dsk.Add("inputs.channels", &p.channels); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("inputs.bias", &p.bias); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("inputs.limit", &p.limit); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("poll.hz", &p.hz); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("bindings.file", &p.bindings); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("source.sdl", &p.sdl); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("source.joystick", &p.joystick); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("source.terminal", &p.terminal); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("monitor.colour", &p.colour); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	for _, err := range []error{
		p.channels.Set(16),
		p.bias.Set(channels.DefaultBias),
		p.limit.Set(channels.DefaultLimit),
		p.hz.Set(50),
		p.bindings.Set("bindings.json"),
		p.sdl.Set(true),
		p.joystick.Set(false),
		p.terminal.Set(false),
		p.colour.Set(true),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// apply the default channel settings to every channel in the bank.
func (p *preferences) applyBank(bank *channels.Bank) {
	bias := p.bias.Get().(int)
	limit := p.limit.Get().(int)
	for i := range bank.Len() {
		_ = bank.SetBias(i, bias)
		_ = bank.SetLimit(i, limit)
	}
}

// bindingsPath returns the path to the bindings file. An explicit path takes
// precedence over the preference value.
func (p *preferences) bindingsPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return paths.ResourcePath("", p.bindings.String())
}
