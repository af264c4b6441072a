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

package main

import (
	"bytes"
	"errors"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/macroio"
	"github.com/zephyrusbot/zephyrus/test"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand(environment{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeMacro(t *testing.T, dir string) string {
	t.Helper()

	m := macro.NewMacro()
	m.AddAction(3, macro.Player1, macro.Jump, true)
	m.AddAction(5, macro.Player1, macro.Jump, false)
	m.AddAction(9, macro.Player2, macro.Left, true)
	m.AddFixSnapshot(macro.NewFixSnapshot(3, macro.PlayerState{X: 3}))
	m.AddFixSnapshot(macro.NewTwoPlayerFixSnapshot(5, macro.PlayerState{X: 5}, macro.PlayerState{X: 50}))
	m.AddFixSnapshot(macro.NewFixSnapshot(9, macro.PlayerState{X: 9}))

	path := filepath.Join(dir, "level.zr")
	test.DemandSuccess(t, macroio.Save(path, m, macroio.SaveOptions{}))
	return path
}

func TestInfo(t *testing.T) {
	path := writeMacro(t, t.TempDir())

	out, err := run(t, "info", path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "format: native version 2"))
	test.ExpectSuccess(t, strings.Contains(out, "3 actions, 3 fix snapshots, ticks 3 to 9"))
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	path := writeMacro(t, dir)
	gdr := filepath.Join(dir, "level.gdr")

	_, err := run(t, "convert", path, gdr)
	test.DemandSuccess(t, err)

	out, err := run(t, "info", gdr)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "format: gdr (hack-replay dialect)"))

	// legacy output
	legacy := filepath.Join(dir, "legacy.zr")
	_, err = run(t, "convert", "--legacy", path, legacy)
	test.DemandSuccess(t, err)

	out, err = run(t, "info", legacy)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "format: native version 1"))

	// legacy is meaningless for GDR
	_, err = run(t, "convert", "--legacy", path, gdr)
	test.ExpectSuccess(t, errors.Is(err, errUsage))
}

func TestDump(t *testing.T) {
	path := writeMacro(t, t.TempDir())

	out, err := run(t, "dump", path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "  3: P1 Jump press\n"))
	test.ExpectSuccess(t, strings.Contains(out, "  9: P2 Left press\n"))

	out, err = run(t, "dump", "--yaml", path)
	test.DemandSuccess(t, err)

	var doc dumpDocument
	test.DemandSuccess(t, yaml.Unmarshal([]byte(out), &doc))
	test.DemandEquality(t, len(doc.Actions), 3)
	test.ExpectEquality(t, doc.Actions[2], dumpAction{Tick: 9, Player: "P2", Button: "Left", Press: true})
	test.DemandEquality(t, len(doc.FixSnapshots), 3)
	test.ExpectEquality(t, doc.FixSnapshots[0].Player2, nil)
	test.ExpectEquality(t, *doc.FixSnapshots[1].Player2, dumpState{X: 50})
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	path := writeMacro(t, dir)
	prefsFile := filepath.Join(dir, "preferences")

	out, err := run(t, "--prefs", prefsFile, "simulate", "--step", "4", "--fix", "frame", "--metrics", path)
	test.DemandSuccess(t, err)

	// ticks 4, 8, 9. tick 0 is the engine's starting tick and the host catches
	// up on skipped ticks
	test.ExpectSuccess(t, strings.Contains(out, "4: P1 Jump press\n8: P1 Jump release\n9: P2 Left press\n9: correct P1"))
	test.ExpectSuccess(t, strings.Contains(out, "3 actions dispatched, 1 corrections applied over 9 ticks"))
	test.ExpectSuccess(t, strings.Contains(out, `zephyrus_engine_ticks_processed_total{state="playing"} 3`))

	// one tick at a time with every action fixed
	out, err = run(t, "--prefs", prefsFile, "simulate", "--fix", "action", path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "5: correct P2"))
	test.ExpectSuccess(t, strings.Contains(out, "3 actions dispatched, 4 corrections applied over 9 ticks"))
}

func TestSimulatePrefsOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeMacro(t, dir)
	prefsFile := filepath.Join(dir, "preferences")

	out, err := run(t, "--prefs", prefsFile, "--set", "recorder.fixMode::none", "simulate", path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "3 actions dispatched, 0 corrections applied"))
}

func TestUsage(t *testing.T) {
	_, err := run(t, "info")
	test.ExpectSuccess(t, errors.Is(err, errUsage))

	_, err = run(t, "simulate", "--no-such-flag", "x")
	test.ExpectSuccess(t, errors.Is(err, errUsage))

	dir := t.TempDir()
	path := writeMacro(t, dir)
	_, err = run(t, "--prefs", filepath.Join(dir, "preferences"), "simulate", "--fix", "sometimes", path)
	test.ExpectSuccess(t, errors.Is(err, errUsage))

	_, err = run(t, "simulate", "--step", "0", path)
	test.ExpectSuccess(t, errors.Is(err, errUsage))
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "dump", filepath.Join(t.TempDir(), "missing.zr"))
	test.ExpectSuccess(t, curated.Is(err, macroio.NotFound))
}

func TestGraph(t *testing.T) {
	dir := t.TempDir()
	path := writeMacro(t, dir)
	dot := filepath.Join(dir, "level.dot")

	_, err := run(t, "graph", path, dot)
	test.DemandSuccess(t, err)

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "digraph"))
}

// every source file in the module is in canonical gofmt form
func TestSourceFormatting(t *testing.T) {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted, err := format.Source(src)
		if err != nil {
			return err
		}
		test.ExpectSuccess(t, bytes.Equal(src, formatted), path)
		return nil
	})
	test.ExpectSuccess(t, err)
}
