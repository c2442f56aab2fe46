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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCAN", "LIST")
//	p, err := md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, each with its own flags and arguments. The first
// sub-mode given to AddSubModes() is the default and is selected when the
// first argument after the flags is not a listed mode. Sub-mode comparisons
// are case insensitive.
//
// After a successful Parse() the selected mode is returned by Mode(). The
// caller then calls NewMode(), adds the flags for that mode and calls Parse()
// again:
//
//	switch md.Mode() {
//	case "SCAN":
//		md.NewMode()
//		threshold := md.AddFloat64("threshold", 0.5, "axis threshold")
//		p, err := md.Parse()
//		...
//	}
//
// Arguments that are not flags or a listed sub-mode are returned by
// RemainingArgs() and GetArg().
//
// Help is printed automatically when the -help flag is given, in which case
// Parse() returns ParseHelp.
package modalflag
