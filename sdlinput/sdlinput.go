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

package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// Source reads events from SDL.
type Source struct {
	window *sdl.Window
	pads   map[sdl.JoystickID]*sdl.GameController
}

// NewSource is the preferred method of initialisation for the Source type. If
// window is true a window is opened so that keyboard events can be received.
func NewSource(window bool) (*Source, error) {
	err := sdl.Init(sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	src := &Source{
		pads: make(map[sdl.JoystickID]*sdl.GameController),
	}

	if window {
		src.window, err = sdl.CreateWindow("rcmapper", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 320, 80, sdl.WINDOW_SHOWN)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		src.open(i)
	}

	if len(src.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	return src, nil
}

// open the game controller at the device index. devices that are not game
// controllers are ignored.
func (src *Source) open(idx int) {
	if !sdl.IsGameController(idx) {
		return
	}

	pad := sdl.GameControllerOpen(idx)
	if pad == nil || !pad.Attached() {
		logger.Logf(logger.Allow, "sdl", "cannot open gamepad %d", idx)
		return
	}

	id := pad.Joystick().InstanceID()
	if _, ok := src.pads[id]; ok {
		pad.Close()
		return
	}

	src.pads[id] = pad
	logger.Logf(logger.Allow, "sdl", "gamepad %d: %s", id, pad.Name())
}

func (src *Source) close(id sdl.JoystickID) {
	if pad, ok := src.pads[id]; ok {
		pad.Close()
		delete(src.pads, id)
		logger.Logf(logger.Allow, "sdl", "gamepad %d removed", id)
	}
}

// Close all game controllers and shut down SDL.
func (src *Source) Close() {
	for id := range src.pads {
		src.close(id)
	}
	if src.window != nil {
		_ = src.window.Destroy()
		src.window = nil
	}
	sdl.Quit()
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() (userinput.Event, bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if dev, ok := ev.(*sdl.ControllerDeviceEvent); ok {
			switch dev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// the Which field is the device index for added events
				src.open(int(dev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				src.close(dev.Which)
			}
			continue
		}

		if uev, ok := translate(ev); ok {
			return uev, true
		}
	}
	return nil, false
}

// translate an SDL event to a userinput event. returns false if the event is
// of no interest.
func translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil, false
		}
		return userinput.EventKeyboard{
			Key:  userinput.Key(ev.Keysym.Sym),
			Down: ev.Type == sdl.KEYDOWN,
		}, true

	case *sdl.ControllerButtonEvent:
		return userinput.EventGamepadButton{
			ID:     userinput.DeviceID(ev.Which),
			Button: userinput.Button(ev.Button),
			Down:   ev.Type == sdl.CONTROLLERBUTTONDOWN,
		}, true

	case *sdl.ControllerAxisEvent:
		return userinput.EventGamepadAxis{
			ID:    userinput.DeviceID(ev.Which),
			Axis:  userinput.Axis(ev.Axis),
			Value: ev.Value,
		}, true
	}

	return nil, false
}

// KeyName returns the name SDL uses for the key.
func KeyName(key userinput.Key) string {
	return sdl.GetKeyName(sdl.Keycode(key))
}
