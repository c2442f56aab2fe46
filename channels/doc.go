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

// Package channels implements the channel bank. A bank is a fixed number of
// channels, each with a raw value, a bias, a limit and a bound type.
//
// The raw values are changed by behaviors (see the behavior package) through
// the slice returned by Raw(). Once per cycle ApplyBounds() brings every raw
// value back into range according to the channel's bound type. The value
// presented to a consumer is the raw value plus the bias.
//
// The number of channels is decided when the bank is created and never
// changes.
package channels
