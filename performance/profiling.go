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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/rcmapper/rcmapper/curated"
)

// ProfileError is the pattern for errors returned by RunProfiler().
const ProfileError = "performance: %v"

// Profile specifies which profiles RunProfiler() should generate.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileAll  Profile = ProfileCPU | ProfileMem
)

// ParseProfile converts a string to a Profile value. Valid strings are NONE,
// CPU, MEM and ALL in any letter case.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "", "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile type: %s", s))
}

// RunProfiler runs the function and writes the profiles requested. Profile
// files are named with the header followed by the type of profile.
//
// The error returned by run() takes precedence over any profiling error.
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	err := cpuProfile(profile&ProfileCPU == ProfileCPU, fmt.Sprintf("%s_cpu.profile", filenameHeader), run)
	if err != nil {
		return err
	}
	return memProfile(profile&ProfileMem == ProfileMem, fmt.Sprintf("%s_mem.profile", filenameHeader))
}

func cpuProfile(profile bool, outFile string, run func() error) error {
	if !profile {
		return run()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

func memProfile(profile bool, outFile string) error {
	if !profile {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}
