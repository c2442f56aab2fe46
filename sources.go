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
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/joystick"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/sdlinput"
	"github.com/rcmapper/rcmapper/termsource"
	"github.com/rcmapper/rcmapper/userinput"
)

const noSources = "no input sources available"

// openSources opens every input source enabled in the preferences. The
// returned function closes them all and must be called even if the sources
// were never polled.
//
// sources that fail to open are logged and skipped. an error is only
// returned if nothing could be opened.
func openSources(p *preferences) (userinput.Sources, func(), error) {
	var srcs userinput.Sources
	var closers []func()

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// the terminal source is polled first so that ctrl-c in the terminal is
	// seen before anything else pending in the cycle
	if p.terminal.Get().(bool) {
		tty, err := termsource.NewSource("")
		if err != nil {
			logger.Log(logger.Allow, "sources", err)
		} else {
			srcs = append(srcs, tty)
			closers = append(closers, func() {
				if err := tty.Close(); err != nil {
					logger.Log(logger.Allow, "sources", err)
				}
			})
		}
	}

	if p.sdl.Get().(bool) {
		// a window is required for keyboard events. it is not needed if the
		// terminal is providing the keyboard
		sdl, err := sdlinput.NewSource(!p.terminal.Get().(bool))
		if err != nil {
			logger.Log(logger.Allow, "sources", err)
		} else {
			srcs = append(srcs, sdl)
			closers = append(closers, sdl.Close)
		}
	}

	if p.joystick.Get().(bool) {
		js, err := joystick.NewSource()
		if err != nil {
			logger.Log(logger.Allow, "sources", err)
		} else {
			srcs = append(srcs, js)
			closers = append(closers, js.Close)
		}
	}

	if len(srcs) == 0 {
		closeAll()
		return nil, func() {}, curated.Errorf(noSources)
	}

	return srcs, closeAll, nil
}
