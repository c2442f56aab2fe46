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
//go:build linux

package joystick

import (
	"encoding/binary"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/rcmapper/rcmapper/curated"
)

// directory that joystick device files are created in
const inputPath = "/dev/input"

// watcher reports joystick device files as they appear in the input
// directory. the inotify descriptor is non-blocking so it can be checked
// from Poll().
type watcher struct {
	fd  int
	buf [4096]byte
}

func newWatcher() (*watcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, curated.Errorf(BadDevice, inputPath, err)
	}

	// device files are created before their permissions are set. IN_ATTRIB
	// gives a second chance to open a device that failed on IN_CREATE
	_, err = unix.InotifyAddWatch(fd, inputPath, unix.IN_CREATE|unix.IN_ATTRIB)
	if err != nil {
		_ = unix.Close(fd)
		return nil, curated.Errorf(BadDevice, inputPath, err)
	}

	return &watcher{fd: fd}, nil
}

// paths of joystick device files that have been created or changed since the
// previous call. never blocks.
func (w *watcher) changed() []string {
	var paths []string
	for {
		n, err := unix.Read(w.fd, w.buf[:])
		if err != nil || n <= 0 {
			return paths
		}
		for _, name := range inotifyNames(w.buf[:n]) {
			if _, err := deviceID(name); err == nil {
				paths = append(paths, filepath.Join(inputPath, name))
			}
		}
	}
}

func (w *watcher) close() {
	_ = unix.Close(w.fd)
}

// inotifyNames returns the file names in a buffer of inotify events. records
// without a name, and a truncated final record, are skipped.
func inotifyNames(b []byte) []string {
	var names []string
	for len(b) >= unix.SizeofInotifyEvent {
		l := int(binary.NativeEndian.Uint32(b[12:]))
		end := unix.SizeofInotifyEvent + l
		if end > len(b) {
			break
		}
		if l > 0 {
			names = append(names, unix.ByteSliceToString(b[unix.SizeofInotifyEvent:end]))
		}
		b = b[end:]
	}
	return names
}
