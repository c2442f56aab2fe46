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

// Package prefs stores application preferences.
//
// Preferences are typed values (Bool, String, Int, Float and Generic) that are
// grouped by a Disk instance. Each value is added to the Disk under a key:
//
//	dsk, _ := prefs.NewDisk(path)
//	var hz prefs.Int
//	_ = dsk.Add("poll.hz", &hz)
//	_ = dsk.Load(true)
//
// The file used by Disk is a plain text file with one "key :: value" entry per
// line. Entries in the file that were not added to the Disk instance are kept
// when the file is saved, so more than one Disk instance can share a file.
//
// Values can be overridden from the command line with the command line stack.
// See PushCommandLineStack().
package prefs
