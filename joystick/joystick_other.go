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

//go:build !linux

package joystick

import (
	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/userinput"
)

// Source is not available on this platform.
type Source struct{}

// NewSource always returns an error on this platform.
func NewSource(paths ...string) (*Source, error) {
	return nil, curated.Errorf(Unsupported)
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() (userinput.Event, bool) {
	return nil, false
}

// Close does nothing on this platform.
func (src *Source) Close() {
}
