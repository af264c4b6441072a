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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/gdreplay"
	"github.com/zephyrusbot/zephyrus/logger"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/macrofile"
	"github.com/zephyrusbot/zephyrus/macroio"
	"github.com/zephyrusbot/zephyrus/paths"
	"github.com/zephyrusbot/zephyrus/prefs"
	"github.com/zephyrusbot/zephyrus/recorder"
	"github.com/zephyrusbot/zephyrus/version"
)

// exit values
const (
	exitUsage = 10
	exitError = 20
)

// environment overrides for the persistent flags
type environment struct {
	Prefs string `env:"ZEPHYRUS_PREFS"`
	Log   bool   `env:"ZEPHYRUS_LOG"`
}

// values of the persistent flags
type options struct {
	prefs    string
	log      bool
	override string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cnf environment
	if err := env.Parse(&cnf); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(exitUsage)
	}

	root := newRootCommand(cnf)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(exitUsage)
		}
		os.Exit(exitError)
	}
}

var errUsage = errors.New("usage")

func newRootCommand(cnf environment) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "zephyrus",
		Short:         "Record, convert and replay input macros",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.log {
				logger.SetEcho(cmd.ErrOrStderr())
			} else {
				logger.SetEcho(nil)
			}
			if opts.override != "" {
				prefs.PushCommandLineStack(opts.override)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.override == "" {
				return nil
			}
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "zephyrus", "unused preferences: %s", unused)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.prefs, "prefs", cnf.Prefs, "preferences file (default is the zephyrus config directory)")
	root.PersistentFlags().BoolVar(&opts.log, "log", cnf.Log, "echo the log to stderr")
	root.PersistentFlags().StringVar(&opts.override, "set", "", `override preferences for this run ("key::value; key::value")`)

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	root.AddCommand(
		infoCommand(),
		convertCommand(),
		dumpCommand(),
		simulateCommand(opts),
		graphCommand(),
	)

	return root
}

// exactArgs wraps cobra.ExactArgs() so that argument errors are usage errors
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Describe a macro file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			m, err := macroio.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch macroio.FormatForPath(path) {
			case macroio.GDR:
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				_, dialect, err := gdreplay.DecodeDialect(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "format: gdr (%s dialect)\n", dialect)

			default:
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				h, err := macrofile.PeekHeader(f)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "format: native %s\n", h)
			}

			fmt.Fprintf(out, "macro: %s\n", m)

			return nil
		},
	}
}

func convertCommand() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a macro file to the format of the output filename",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := macroio.Load(args[0])
			if err != nil {
				return err
			}

			if legacy && macroio.FormatForPath(args[1]) != macroio.Native {
				return fmt.Errorf("%w: --legacy is only for native macro files", errUsage)
			}

			err = macroio.Save(args[1], m, macroio.SaveOptions{Legacy: legacy})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n", args[0], args[1], m)
			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "write a version 1 native file")

	return cmd
}

// the document written by dump --yaml
type dumpDocument struct {
	Actions      []dumpAction   `yaml:"actions"`
	FixSnapshots []dumpSnapshot `yaml:"fixSnapshots"`
}

type dumpAction struct {
	Tick   uint32 `yaml:"tick"`
	Player string `yaml:"player"`
	Button string `yaml:"button"`
	Press  bool   `yaml:"press"`
}

type dumpState struct {
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	YSpeed   float64 `yaml:"ySpeed"`
	Rotation float32 `yaml:"rotation"`
}

type dumpSnapshot struct {
	Tick    uint32     `yaml:"tick"`
	Player1 dumpState  `yaml:"player1"`
	Player2 *dumpState `yaml:"player2,omitempty"`
}

func newDumpState(s macro.PlayerState) dumpState {
	return dumpState{X: s.X, Y: s.Y, YSpeed: s.YSpeed, Rotation: s.Rotation}
}

func newDumpDocument(m *macro.Macro) dumpDocument {
	doc := dumpDocument{
		Actions:      make([]dumpAction, 0, m.NumActions()),
		FixSnapshots: make([]dumpSnapshot, 0, m.NumFixSnapshots()),
	}

	for _, a := range m.Actions() {
		doc.Actions = append(doc.Actions, dumpAction{
			Tick:   a.Tick,
			Player: a.Player.String(),
			Button: a.Button.String(),
			Press:  a.Press,
		})
	}

	for _, f := range m.FixSnapshots() {
		s := dumpSnapshot{
			Tick:    f.Tick(),
			Player1: newDumpState(f.Player1()),
		}
		if p, ok := f.Player2(); ok {
			p2 := newDumpState(p)
			s.Player2 = &p2
		}
		doc.FixSnapshots = append(doc.FixSnapshots, s)
	}

	return doc
}

func dumpCommand() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "List the actions and fix snapshots in a macro file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := macroio.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(newDumpDocument(m)); err != nil {
					return curated.Errorf("dump: %v", err)
				}
				return enc.Close()
			}

			fmt.Fprintln(out, "actions")
			for _, a := range m.Actions() {
				fmt.Fprintf(out, "  %s\n", a)
			}
			fmt.Fprintln(out, "fix snapshots")
			for _, f := range m.FixSnapshots() {
				fmt.Fprintf(out, "  %s\n", f)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write the macro as YAML")

	return cmd
}

func graphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <file> [out.dot]",
		Short: "Write a Graphviz graph of the decoded macro",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := macroio.Load(args[0])
			if err != nil {
				return err
			}

			var out string
			if len(args) == 2 {
				out = args[1]
			} else {
				name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				out = paths.UniqueFilename("graph", name, "dot")
			}

			f, err := os.Create(out)
			if err != nil {
				return curated.Errorf("graph: %v", err)
			}
			defer f.Close()

			memviz.Map(f, m)

			fmt.Fprintf(cmd.OutOrStdout(), "graph written to %s\n", out)
			return nil
		},
	}
}

// fixModeUsage is the help text for the --fix flag
var fixModeUsage = fmt.Sprintf("fix mode (%s). default is the recorder.fixMode preference", strings.Join(recorder.FixModes, ", "))
