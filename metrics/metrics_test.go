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

package metrics_test

import (
	"strings"
	"testing"

	"github.com/zephyrusbot/zephyrus/metrics"
	"github.com/zephyrusbot/zephyrus/test"
)

// value returns the sum of every sample in the named metric family
func value(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	test.DemandSuccess(t, err)

	var v float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, s := range mf.GetMetric() {
			v += s.GetCounter().GetValue()
		}
	}
	return v
}

func TestCounters(t *testing.T) {
	m := metrics.NewMetrics()

	m.TicksProcessed.WithLabelValues("playing").Add(3)
	m.TicksProcessed.WithLabelValues("recording").Inc()
	m.TicksSkipped.Inc()
	m.ActionsDispatched.Add(2)
	m.CorrectionsApplied.WithLabelValues("P1").Inc()

	test.ExpectEquality(t, value(t, m, "zephyrus_engine_ticks_processed_total"), 4.0)
	test.ExpectEquality(t, value(t, m, "zephyrus_engine_ticks_skipped_total"), 1.0)
	test.ExpectEquality(t, value(t, m, "zephyrus_engine_actions_dispatched_total"), 2.0)
	test.ExpectEquality(t, value(t, m, "zephyrus_engine_actions_recorded_total"), 0.0)
	test.ExpectEquality(t, value(t, m, "zephyrus_engine_corrections_applied_total"), 1.0)
}

func TestSeparateRegistries(t *testing.T) {
	a := metrics.NewMetrics()
	b := metrics.NewMetrics()

	a.ActionsRecorded.Inc()
	test.ExpectEquality(t, value(t, a, "zephyrus_engine_actions_recorded_total"), 1.0)
	test.ExpectEquality(t, value(t, b, "zephyrus_engine_actions_recorded_total"), 0.0)
}

func TestWrite(t *testing.T) {
	m := metrics.NewMetrics()
	m.SnapshotsRecorded.Add(5)

	var b strings.Builder
	test.DemandSuccess(t, m.Write(&b))
	test.ExpectSuccess(t, strings.Contains(b.String(), "zephyrus_engine_snapshots_recorded_total 5"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "# HELP zephyrus_engine_snapshots_recorded_total"))
}
