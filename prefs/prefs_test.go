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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcmapper/rcmapper/curated"
	"github.com/rcmapper/rcmapper/prefs"
	"github.com/rcmapper/rcmapper/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "rcmapper_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	err = v.Set(1)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestFloat(t *testing.T) {
	var f prefs.Float
	test.ExpectSuccess(t, f.Set("0.25"))
	test.ExpectEquality(t, f.String(), "0.250")
	test.ExpectSuccess(t, f.Set(2))
	test.ExpectEquality(t, f.Get(), prefs.Value(2.0))
	test.ExpectFailure(t, f.Set(true))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// the pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(5))
	test.ExpectEquality(t, post, 5)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0

	// reload from disk
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	// new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	contents := fmt.Sprintf("%s\ninputs.channels :: 8\ninputs.deadzone :: 12\nother :: value\n", prefs.WarningBoilerPlate)
	test.ExpectSuccess(t, os.WriteFile(fn, []byte(contents), 0o644))

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var n prefs.Int
	var hz prefs.Int
	test.ExpectSuccess(t, dsk.Add("inputs.channels", &n))
	test.ExpectSuccess(t, dsk.Add("poll.hz", &hz))
	test.ExpectSuccess(t, hz.Set(50))

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, n.Get(), prefs.Value(8))
	test.ExpectEquality(t, hz.Get(), prefs.Value(50))

	// defunct keys are dropped and unknown keys kept
	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "inputs.channels :: 8\nother :: value\npoll.hz :: 50\n")
}

func TestLoadCommandLine(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("inputs.channels", &n))
	test.ExpectSuccess(t, n.Set(16))

	prefs.PushCommandLineStack("inputs.channels::4; unused::1")
	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, n.Get(), prefs.Value(4))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	// the missing file was created
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestLoadBadFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	test.ExpectSuccess(t, os.WriteFile(fn, []byte("garbage\n"), 0o644))

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))

	test.ExpectFailure(t, dsk.Load(false))

	// the file is replaced when saveOnFail is true
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.ExpectSuccess(t, err)

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &a))
	test.ExpectSuccess(t, curated.Is(dsk.Add("key", &b), prefs.DuplicateKey))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
