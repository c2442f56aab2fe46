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
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/logger"
	"github.com/rcmapper/rcmapper/userinput"
)

// JSIOCGNAME(128)
const ioctlName = 0x80006a13 + (128 << 16)

type device struct {
	fd   int
	id   userinput.DeviceID
	path string
	buf  [eventSize]byte
}

// Source reads events from one or more joystick devices.
type Source struct {
	devices []*device

	// nil if the source was created with an explicit list of paths
	watch *watcher
}

// NewSource opens the joystick devices at the paths.
//
// If no paths are given every /dev/input/js* device is opened and the input
// directory is watched for devices that are plugged in later. A device that
// is unplugged and plugged back in is opened again.
func NewSource(paths ...string) (*Source, error) {
	src := &Source{}

	if len(paths) == 0 {
		paths, _ = filepath.Glob(filepath.Join(inputPath, "js*"))

		var err error
		src.watch, err = newWatcher()
		if err != nil {
			logger.Log(logger.Allow, "joystick", err)
		}
	}

	for _, p := range paths {
		src.add(p)
	}

	if len(src.devices) == 0 {
		if src.watch == nil {
			return nil, curated.Errorf(NoDevices)
		}
		logger.Logf(logger.Allow, "joystick", "waiting for devices in %s", inputPath)
	}

	return src, nil
}

// add the device at path unless it is already open.
func (src *Source) add(path string) {
	for _, dev := range src.devices {
		if dev.path == path {
			return
		}
	}

	dev, err := open(path)
	if err != nil {
		logger.Log(logger.Allow, "joystick", err)
		return
	}
	src.devices = append(src.devices, dev)
}

func open(path string) (*device, error) {
	id, err := deviceID(path)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, curated.Errorf(BadDevice, path, err)
	}

	logger.Logf(logger.Allow, "joystick", "%d: %s", id, name(fd))

	return &device{fd: fd, id: id, path: path}, nil
}

// name of device as reported by the driver
func name(fd int) string {
	var b [128]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), ioctlName, uintptr(unsafe.Pointer(&b[0])))
	if errno != 0 {
		return "unknown device"
	}
	return unix.ByteSliceToString(b[:])
}

// Poll implements the userinput.Source interface. A device that can no longer
// be read is closed and removed from the source.
func (src *Source) Poll() (userinput.Event, bool) {
	if src.watch != nil {
		for _, p := range src.watch.changed() {
			src.add(p)
		}
	}

	for i := 0; i < len(src.devices); i++ {
		dev := src.devices[i]
		for {
			n, err := unix.Read(dev.fd, dev.buf[:])
			if err == unix.EAGAIN || err == unix.EINTR {
				break
			}
			if err != nil || n != eventSize {
				logger.Logf(logger.Allow, "joystick", "%d: removed", dev.id)
				_ = unix.Close(dev.fd)
				src.devices = append(src.devices[:i], src.devices[i+1:]...)
				i--
				break
			}
			if ev, ok := translate(dev.id, decode(dev.buf[:])); ok {
				return ev, true
			}
		}
	}
	return nil, false
}

// Close all devices.
func (src *Source) Close() {
	for _, dev := range src.devices {
		_ = unix.Close(dev.fd)
	}
	src.devices = src.devices[:0]

	if src.watch != nil {
		src.watch.close()
		src.watch = nil
	}
}
