// This file is part of Zephyrus.
//
// Zephyrus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zephyrus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zephyrus.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/logger"
)

// DefaultPrefsFile is the default filename of the preferences file. It is
// resolved with paths.ResourcePath() by the caller.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while zephyrus is running ***"

// the separator between key and value on each line of a preferences file
const separator = " :: "

// Sentinal error patterns.
const (
	InvalidPrefsFile = "prefs: not a valid prefs file: %s"
	InvalidKey       = "prefs: invalid key: %s"
	DuplicateKey     = "prefs: key already added: %s"
	BadValue         = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, curated.Errorf(InvalidPrefsFile, "no filename")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add a preference value to the disk under key. Keys cannot contain white
// space or the separator.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, strings.TrimSpace(separator)) {
		return curated.Errorf(InvalidKey, key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p

	return nil
}

// Reset all preference values to their reset value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(BadValue, k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk are preserved.
func (dsk *Disk) Save() error {
	values, err := read(dsk.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if isDefunct(k) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and saveOnFail
// is true then the current values are saved to create the file.
//
// Values in the current command line group (see PushCommandLineStack())
// override values on disk.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, err := read(dsk.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		values = make(map[string]string)
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(BadValue, k, err)
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(BadValue, k, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set to %v from command line", k, v)
		}
	}

	return nil
}

// read the preferences file into a map of unparsed values. the error from
// os.Open() is returned unchanged so that the caller can test for a missing
// file
func read(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFile, path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return values, nil
}
