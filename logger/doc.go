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

// Package logger is the central log for rcmapper. Entries are tagged with the
// name of the package making the entry and a detail, which can be a string, an
// error, a fmt.Stringer or any other value that can be formatted with the %v
// verb.
//
// Adjacent entries with the same tag and detail are collapsed into one entry
// with a repeat count. The number of entries is capped, older entries being
// dropped first.
//
// Whether an entry is made depends on the Permission argument. The Allow
// value should be used when an entry should always be made.
//
// The package level functions use a single central logger. Independent
// instances can be created with NewLogger(), which is useful for testing.
package logger
