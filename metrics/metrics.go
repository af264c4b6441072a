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

package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "zephyrus"

const subsystem = "engine"

// Metrics for a single recorder.Engine.
type Metrics struct {
	reg *prometheus.Registry

	// ticks processed by the engine, by engine state (idle, recording, playing)
	TicksProcessed *prometheus.CounterVec

	// calls to OnTick() that were ignored because the tick did not advance
	TicksSkipped prometheus.Counter

	// button actions appended to the macro while recording
	ActionsRecorded prometheus.Counter

	// button actions sent to the host during playback
	ActionsDispatched prometheus.Counter

	// fix snapshots appended to the macro while recording
	SnapshotsRecorded prometheus.Counter

	// player corrections sent to the host during playback, by player
	CorrectionsApplied *prometheus.CounterVec
}

// NewMetrics is the preferred method of initialisation for the Metrics type.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		TicksProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ticks_processed_total",
			Help:      "Ticks processed by the engine",
		}, []string{"state"}),
		TicksSkipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ticks_skipped_total",
			Help:      "Tick notifications ignored because the tick did not advance",
		}),
		ActionsRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "actions_recorded_total",
			Help:      "Button actions recorded",
		}),
		ActionsDispatched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "actions_dispatched_total",
			Help:      "Button actions dispatched to the host",
		}),
		SnapshotsRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "snapshots_recorded_total",
			Help:      "Fix snapshots recorded",
		}),
		CorrectionsApplied: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "corrections_applied_total",
			Help:      "Player corrections applied by the host",
		}, []string{"player"}),
	}
}

// Registry returns the registry that the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Write all metrics in the Prometheus text format.
func (m *Metrics) Write(w io.Writer) error {
	families, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}
	return nil
}
