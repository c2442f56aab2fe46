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

package paths

import (
	"os"
	"path/filepath"

	"github.com/rcmapper/rcmapper/curated"
)

// the base path for all resources when it is present in the current
// directory.
const baseResourcePath = ".rcmapper"

// the name of the directory in the user's config directory.
const configDir = "rcmapper"

// ResourcePath returns the path to the file in the sub-directory of the base
// resource path. Either subPth or file can be empty. The directories in the
// path are created if they do not exist but the file is not.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return filepath.Join(base, file), nil
}

// returns the base path with the sub-path appended, creating the directories
// if necessary.
func getBasePath(subPth string) (string, error) {
	pth := filepath.Join(baseResourcePath, subPth)

	if _, err := os.Stat(baseResourcePath); err != nil {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, configDir, subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
