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

package macroio

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/gdreplay"
	"github.com/zephyrusbot/zephyrus/logger"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/macrofile"
)

// Sentinal error patterns.
const (
	NotFound    = "macroio: file not found: %s"
	ReadFailed  = "macroio: cannot read %s: %v"
	WriteFailed = "macroio: cannot write %s: %v"
)

// Format of a macro file.
type Format int

// List of valid Format values.
const (
	Native Format = iota
	GDR
)

func (f Format) String() string {
	switch f {
	case Native:
		return "native"
	case GDR:
		return "gdr"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions that are treated specially.
// Files with any other extension are native macro files.
var FileExtensions = [...]string{".GDR"}

// FormatForPath returns the format that will be used by Load() and Save() for
// the filename.
func FormatForPath(path string) Format {
	ext := strings.ToUpper(filepath.Ext(path))
	switch ext {
	case ".GDR":
		return GDR
	}
	return Native
}

// Load the macro in the named file.
func Load(path string) (*macro.Macro, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotFound, path)
		}
		return nil, curated.Errorf(ReadFailed, path, err)
	}

	var m *macro.Macro

	switch FormatForPath(path) {
	case GDR:
		var dialect gdreplay.Dialect
		m, dialect, err = gdreplay.DecodeDialect(data)
		if err == nil {
			logger.Logf(logger.Allow, "macroio", "%s: gdr document (%s dialect)", filepath.Base(path), dialect)
		}
	default:
		m, err = macrofile.Decode(bytes.NewReader(data))
	}

	if err != nil {
		return nil, curated.Errorf(ReadFailed, path, err)
	}

	logger.Logf(logger.Allow, "macroio", "loaded %s: %s", filepath.Base(path), m)

	return m, nil
}

// SaveOptions control how Save() writes a file.
type SaveOptions struct {
	// write native files in the legacy format
	Legacy bool

	// options used when writing a GDR document
	GDR gdreplay.Options
}

// Save the macro to the named file. The macro is encoded in full before the
// file is touched so an encoding error leaves any existing file unchanged.
func Save(path string, m *macro.Macro, opts SaveOptions) error {
	var data []byte

	switch FormatForPath(path) {
	case GDR:
		var err error
		data, err = gdreplay.Encode(m, opts.GDR)
		if err != nil {
			return curated.Errorf(WriteFailed, path, err)
		}
	default:
		version := macrofile.VersionCurrent
		if opts.Legacy {
			version = macrofile.VersionLegacy
		}

		var b bytes.Buffer
		if err := macrofile.EncodeVersion(&b, m, version); err != nil {
			return curated.Errorf(WriteFailed, path, err)
		}
		data = b.Bytes()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return curated.Errorf(WriteFailed, path, err)
	}

	logger.Logf(logger.Allow, "macroio", "saved %s: %s", filepath.Base(path), m)

	return nil
}
