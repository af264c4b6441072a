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

package macro

import (
	"fmt"
	"slices"
)

// Macro is an ordered log of Actions and an ordered log of FixSnapshots.
//
// The zero value is an empty macro ready for use. A Macro is not safe for
// concurrent use.
type Macro struct {
	actions   []Action
	snapshots []FixSnapshot
}

// NewMacro is the preferred method of initialisation for the Macro type.
func NewMacro() *Macro {
	return &Macro{}
}

func (m *Macro) String() string {
	if len(m.actions) == 0 {
		return fmt.Sprintf("%d actions, %d fix snapshots", 0, len(m.snapshots))
	}
	return fmt.Sprintf("%d actions, %d fix snapshots, ticks %d to %d",
		len(m.actions), len(m.snapshots), m.actions[0].Tick, m.actions[len(m.actions)-1].Tick)
}

// AddAction appends a new action.
func (m *Macro) AddAction(tick uint32, player Player, button Button, press bool) {
	m.actions = append(m.actions, Action{
		Tick:   tick,
		Player: player,
		Button: button,
		Press:  press,
	})
}

// AddFixSnapshot appends a new fix snapshot.
func (m *Macro) AddFixSnapshot(fix FixSnapshot) {
	m.snapshots = append(m.snapshots, fix)
}

// TruncateFrom removes every action and snapshot with a tick equal to or
// later than the specified tick. The order of the remaining entries is
// unchanged.
func (m *Macro) TruncateFrom(tick uint32) {
	m.actions = slices.DeleteFunc(m.actions, func(a Action) bool {
		return a.Tick >= tick
	})
	m.snapshots = slices.DeleteFunc(m.snapshots, func(f FixSnapshot) bool {
		return f.tick >= tick
	})
}

// Clear removes everything from the macro.
func (m *Macro) Clear() {
	m.actions = m.actions[:0]
	m.snapshots = m.snapshots[:0]
}

// NumActions returns the number of actions in the macro.
func (m *Macro) NumActions() int {
	return len(m.actions)
}

// NumFixSnapshots returns the number of fix snapshots in the macro.
func (m *Macro) NumFixSnapshots() int {
	return len(m.snapshots)
}

// Actions returns a copy of every action in the macro.
func (m *Macro) Actions() []Action {
	return slices.Clone(m.actions)
}

// FixSnapshots returns a copy of every fix snapshot in the macro.
func (m *Macro) FixSnapshots() []FixSnapshot {
	return slices.Clone(m.snapshots)
}

// LastAction returns the most recently added action. The second return value
// is false if the macro has no actions.
func (m *Macro) LastAction() (Action, bool) {
	if len(m.actions) == 0 {
		return Action{}, false
	}
	return m.actions[len(m.actions)-1], true
}

// ActionsAt returns the actions at the specified tick.
func (m *Macro) ActionsAt(tick uint32) []Action {
	return m.ActionsBetween(tick, tick)
}

// ActionsBetween returns the actions with a tick between lo and hi inclusive.
func (m *Macro) ActionsBetween(lo uint32, hi uint32) []Action {
	var r []Action
	for _, a := range m.actions {
		if a.Tick >= lo && a.Tick <= hi {
			r = append(r, a)
		}
	}
	return r
}

// FixSnapshotsAt returns the fix snapshots at the specified tick.
func (m *Macro) FixSnapshotsAt(tick uint32) []FixSnapshot {
	return m.FixSnapshotsBetween(tick, tick)
}

// FixSnapshotsBetween returns the fix snapshots with a tick between lo and hi
// inclusive.
func (m *Macro) FixSnapshotsBetween(lo uint32, hi uint32) []FixSnapshot {
	var r []FixSnapshot
	for _, f := range m.snapshots {
		if f.tick >= lo && f.tick <= hi {
			r = append(r, f)
		}
	}
	return r
}

// Clone returns a deep copy of the macro.
func (m *Macro) Clone() *Macro {
	return &Macro{
		actions:   slices.Clone(m.actions),
		snapshots: slices.Clone(m.snapshots),
	}
}

// Equal returns true if both macros contain the same entries in the same
// order.
func (m *Macro) Equal(o *Macro) bool {
	return slices.Equal(m.actions, o.actions) && slices.Equal(m.snapshots, o.snapshots)
}
