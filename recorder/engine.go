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

package recorder

import (
	"fmt"

	"github.com/zephyrusbot/zephyrus/logger"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/macroio"
	"github.com/zephyrusbot/zephyrus/metrics"
)

// Engine records and plays back a macro. It must be created with NewEngine().
type Engine struct {
	host  Host
	macro *macro.Macro

	state   State
	fixMode FixMode

	// the most recent tick seen by OnTick(). zero until the host reports a
	// tick and unaffected by state changes
	lastTick uint32

	// options used by SaveMacro()
	saveOptions macroio.SaveOptions

	// log every dispatched action and correction
	verbose bool

	metrics *metrics.Metrics
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The Engine starts in the Idle state with an empty macro and the
// FixEveryAction fix mode.
func NewEngine(host Host) *Engine {
	return &Engine{
		host:    host,
		macro:   macro.NewMacro(),
		fixMode: FixEveryAction,
	}
}

func (e *Engine) String() string {
	return fmt.Sprintf("%s (fix %s) at tick %d: %s", e.state, e.fixMode, e.lastTick, e.macro)
}

// AllowLogging implements the logger.Permission interface.
func (e *Engine) AllowLogging() bool {
	return e.verbose
}

// SetVerbose turns on logging of every dispatched action and correction.
func (e *Engine) SetVerbose(verbose bool) {
	e.verbose = verbose
}

// AttachMetrics instruments the engine. A nil value detaches any existing
// metrics.
func (e *Engine) AttachMetrics(m *metrics.Metrics) {
	e.metrics = m
}

// SetState changes the state of the engine. The macro and the most recent
// tick are unchanged.
func (e *Engine) SetState(state State) {
	if state == e.state {
		return
	}
	logger.Logf(logger.Allow, "recorder", "%s -> %s", e.state, state)
	e.state = state
}

// State returns the current state of the engine.
func (e *Engine) State() State {
	return e.state
}

// SetFixMode changes when fix snapshots are applied during playback.
func (e *Engine) SetFixMode(mode FixMode) {
	e.fixMode = mode
}

// FixMode returns the current fix mode.
func (e *Engine) FixMode() FixMode {
	return e.fixMode
}

// SetMacro replaces the macro. A nil value is replaced with an empty macro.
func (e *Engine) SetMacro(m *macro.Macro) {
	if m == nil {
		m = macro.NewMacro()
	}
	e.macro = m
}

// Macro returns the macro being recorded or played back. The macro is not a
// copy.
func (e *Engine) Macro() *macro.Macro {
	return e.macro
}

// LastTick returns the most recent tick seen by OnTick().
func (e *Engine) LastTick() uint32 {
	return e.lastTick
}

// SetSaveOptions changes the options used by SaveMacro().
func (e *Engine) SetSaveOptions(opts macroio.SaveOptions) {
	e.saveOptions = opts
}

// LoadMacro replaces the current macro with the macro in the named file. The
// current macro is kept if the file cannot be loaded.
func (e *Engine) LoadMacro(path string) error {
	m, err := macroio.Load(path)
	if err != nil {
		return err
	}
	e.macro = m
	return nil
}

// SaveMacro writes the current macro to the named file.
func (e *Engine) SaveMacro(path string) error {
	return macroio.Save(path, e.macro, e.saveOptions)
}

// OnButtonPress should be called by the host whenever a button is pressed.
func (e *Engine) OnButtonPress(player macro.Player, button macro.Button) {
	e.record(player, button, true)
}

// OnButtonRelease should be called by the host whenever a button is released.
func (e *Engine) OnButtonRelease(player macro.Player, button macro.Button) {
	e.record(player, button, false)
}

func (e *Engine) record(player macro.Player, button macro.Button, press bool) {
	if e.state != Recording {
		return
	}

	if !player.Valid() || !button.Valid() {
		logger.Logf(logger.Allow, "recorder", "ignoring button event: player %d, button %d", player, button)
		return
	}

	e.macro.AddAction(e.lastTick, player, button, press)

	if e.metrics != nil {
		e.metrics.ActionsRecorded.Inc()
	}
}

// OnRewind should be called by the host when the game returns to an earlier
// tick, for example when the player restarts from a checkpoint. When
// recording, everything in the macro from the host's current tick onwards is
// removed. Rewinding has no effect in any other state.
func (e *Engine) OnRewind() {
	if e.state != Recording {
		return
	}
	tick := e.host.CurrentTick()
	e.macro.TruncateFrom(tick)
	logger.Logf(logger.Allow, "recorder", "rewind to tick %d: %s", tick, e.macro)
}

// OnTick should be called by the host once per iteration of its game loop.
// Calls where the host's tick is unchanged are ignored.
//
// When playing, every action after the previous tick up to and including the
// current tick is dispatched, so ticks skipped by the host are caught up. A
// tick earlier than the previous tick dispatches nothing.
func (e *Engine) OnTick() {
	tick := e.host.CurrentTick()

	if tick == e.lastTick {
		if e.metrics != nil {
			e.metrics.TicksSkipped.Inc()
		}
		return
	}

	prev := e.lastTick
	e.lastTick = tick

	if e.metrics != nil {
		e.metrics.TicksProcessed.WithLabelValues(e.state.String()).Inc()
	}

	switch e.state {
	case Recording:
		fix := e.host.SampleCorrection().WithTick(tick)
		e.macro.AddFixSnapshot(fix)
		if e.metrics != nil {
			e.metrics.SnapshotsRecorded.Inc()
		}
	case Playing:
		var actions []macro.Action
		switch {
		case tick == prev+1:
			actions = e.macro.ActionsAt(tick)
		case tick > prev:
			actions = e.macro.ActionsBetween(prev+1, tick)
		}
		e.play(actions, tick)
	}
}

// play dispatches the actions and then applies the fix snapshots for the
// tick as required by the fix mode
func (e *Engine) play(actions []macro.Action, tick uint32) {
	for _, a := range actions {
		e.host.DispatchButton(a.Player, a.Button, a.Press)
		logger.Logf(e, "recorder", "dispatch %s", a)
	}

	if e.metrics != nil {
		e.metrics.ActionsDispatched.Add(float64(len(actions)))
	}

	var apply bool
	switch e.fixMode {
	case FixEveryFrame:
		apply = true
	case FixEveryAction:
		apply = len(actions) > 0
	}

	if !apply {
		return
	}

	for _, f := range e.macro.FixSnapshotsAt(tick) {
		e.correct(macro.Player1, f.Player1())
		if p, ok := f.Player2(); ok {
			e.correct(macro.Player2, p)
		}
	}
}

func (e *Engine) correct(player macro.Player, state macro.PlayerState) {
	e.host.ApplyCorrection(player, state)
	logger.Logf(e, "recorder", "correct %s: %s", player, state)
	if e.metrics != nil {
		e.metrics.CorrectionsApplied.WithLabelValues(player.String()).Inc()
	}
}
