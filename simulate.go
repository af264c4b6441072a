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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrusbot/zephyrus/logger"
	"github.com/zephyrusbot/zephyrus/metrics"
	"github.com/zephyrusbot/zephyrus/recorder"
	"github.com/zephyrusbot/zephyrus/statsview"
)

func simulateCommand(opts *options) *cobra.Command {
	var fix string
	var step uint32
	var withMetrics bool
	var withStats bool

	cmd := &cobra.Command{
		Use:   "simulate <file>",
		Short: "Play a macro against a headless host",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if step == 0 {
				return fmt.Errorf("%w: --step must be at least 1", errUsage)
			}
			if withStats && !statsview.Available() {
				return fmt.Errorf("%w: statsview is not available in this build", errUsage)
			}

			out := cmd.OutOrStdout()
			host := &headless{output: out}
			eng := recorder.NewEngine(host)
			eng.SetVerbose(opts.log)

			// the engine's fix mode is set by the preferences
			_, err := recorder.NewPreferences(eng, opts.prefs)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("fix") {
				mode, err := recorder.ParseFixMode(fix)
				if err != nil {
					return fmt.Errorf("%w: %v", errUsage, err)
				}
				eng.SetFixMode(mode)
			}

			var m *metrics.Metrics
			if withMetrics {
				m = metrics.NewMetrics()
				eng.AttachMetrics(m)
			}

			if withStats {
				statsview.Launch(cmd.Context(), out)
			}

			err = eng.LoadMacro(args[0])
			if err != nil {
				return err
			}

			last, ok := eng.Macro().LastAction()
			if !ok {
				fmt.Fprintln(out, "macro has no actions")
				return nil
			}

			eng.SetState(recorder.Playing)
			logger.Logf(logger.Allow, "zephyrus", "simulating %s", eng)

			for {
				eng.OnTick()
				if host.tick >= last.Tick {
					break
				}
				if last.Tick-host.tick < step {
					host.tick = last.Tick
				} else {
					host.tick += step
				}
			}

			eng.SetState(recorder.Idle)

			fmt.Fprintf(out, "%d actions dispatched, %d corrections applied over %d ticks\n",
				host.dispatched, host.corrections, host.tick)

			if m != nil {
				if err := m.Write(out); err != nil {
					return err
				}
			}

			if withStats {
				fmt.Fprintln(out, "press ctrl-c to stop the stats server")
				<-cmd.Context().Done()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fix, "fix", recorder.FixEveryAction.String(), fixModeUsage)
	cmd.Flags().Uint32Var(&step, "step", 1, "ticks advanced by the host between each engine update")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "print engine metrics when the simulation ends")
	cmd.Flags().BoolVar(&withStats, "statsview", false, "run the runtime statistics server (statsview builds only)")

	return cmd
}
