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

package macroio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/gdreplay"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/macrofile"
	"github.com/zephyrusbot/zephyrus/macroio"
	"github.com/zephyrusbot/zephyrus/random"
	"github.com/zephyrusbot/zephyrus/test"
)

func sample() *macro.Macro {
	m := macro.NewMacro()
	m.AddAction(10, macro.Player1, macro.Jump, true)
	m.AddAction(14, macro.Player1, macro.Jump, false)
	m.AddFixSnapshot(macro.NewFixSnapshot(10, macro.PlayerState{X: 1, Y: 2, YSpeed: 3}))
	m.AddFixSnapshot(macro.NewFixSnapshot(14, macro.PlayerState{X: 4, Y: 5, YSpeed: 6}))
	return m
}

func TestFormatForPath(t *testing.T) {
	test.ExpectEquality(t, macroio.FormatForPath("level.gdr"), macroio.GDR)
	test.ExpectEquality(t, macroio.FormatForPath("LEVEL.GDR"), macroio.GDR)
	test.ExpectEquality(t, macroio.FormatForPath("dir/level.Gdr"), macroio.GDR)
	test.ExpectEquality(t, macroio.FormatForPath("level.zr"), macroio.Native)
	test.ExpectEquality(t, macroio.FormatForPath("level"), macroio.Native)
	test.ExpectEquality(t, macroio.FormatForPath("level.gdr.bak"), macroio.Native)
}

func TestNotFound(t *testing.T) {
	m, err := macroio.Load(filepath.Join(t.TempDir(), "missing.zr"))
	test.ExpectSuccess(t, curated.Is(err, macroio.NotFound))
	test.ExpectEquality(t, m, nil)
}

func TestNative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.zr")

	m := sample()
	test.DemandSuccess(t, macroio.Save(path, m, macroio.SaveOptions{}))

	f, err := os.Open(path)
	test.DemandSuccess(t, err)
	h, err := macrofile.PeekHeader(f)
	f.Close()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Version, macrofile.VersionCurrent)

	l, err := macroio.Load(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l.Equal(m))
}

func TestNativeLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.zr")

	m := sample()
	test.DemandSuccess(t, macroio.Save(path, m, macroio.SaveOptions{Legacy: true}))

	f, err := os.Open(path)
	test.DemandSuccess(t, err)
	h, err := macrofile.PeekHeader(f)
	f.Close()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Version, macrofile.VersionLegacy)
	test.ExpectEquality(t, h.RecordedTickRate, macrofile.TargetTickRate)

	l, err := macroio.Load(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l.Equal(m))
}

func TestGDR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.GDR")

	m := sample()
	opts := macroio.SaveOptions{GDR: gdreplay.Options{Seed: random.Fixed(42)}}
	test.DemandSuccess(t, macroio.Save(path, m, opts))

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data[0], '{')

	l, err := macroio.Load(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l.Equal(m))
}

func TestBadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "garbage.zr")
	test.DemandSuccess(t, os.WriteFile(path, []byte("garbage garbage garbage"), 0o644))
	m, err := macroio.Load(path)
	test.ExpectSuccess(t, curated.Is(err, macroio.ReadFailed))
	test.ExpectSuccess(t, curated.Has(err, macrofile.BadMagicOrVersion))
	test.ExpectEquality(t, m, nil)

	path = filepath.Join(dir, "garbage.gdr")
	test.DemandSuccess(t, os.WriteFile(path, []byte("{"), 0o644))
	m, err = macroio.Load(path)
	test.ExpectSuccess(t, curated.Has(err, gdreplay.MalformedDocument))
	test.ExpectEquality(t, m, nil)
}

func TestWriteFailed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no such directory", "level.zr")
	err := macroio.Save(path, sample(), macroio.SaveOptions{})
	test.ExpectSuccess(t, curated.Is(err, macroio.WriteFailed))
}

func TestUnencodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.zr")
	test.DemandSuccess(t, os.WriteFile(path, []byte("original"), 0o644))

	m := macro.NewMacro()
	m.AddAction(1, macro.Player1, macro.Button(7), true)
	err := macroio.Save(path, m, macroio.SaveOptions{})
	test.ExpectSuccess(t, curated.Is(err, macroio.WriteFailed))
	test.ExpectSuccess(t, curated.Has(err, macrofile.Unencodable))

	// existing file is untouched
	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "original")
}
