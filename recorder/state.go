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
	"strings"

	"github.com/zephyrusbot/zephyrus/curated"
)

// State of the Engine.
type State int

// List of valid State values.
const (
	Idle State = iota
	Recording
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// FixMode decides when fix snapshots are applied during playback.
type FixMode int

// List of valid FixMode values.
const (
	// fix snapshots are never applied
	FixNone FixMode = iota

	// fix snapshots are applied on ticks where at least one action was
	// dispatched
	FixEveryAction

	// fix snapshots are applied on every tick
	FixEveryFrame
)

// the names used for FixMode values in preferences and on the command line
const (
	fixNone        = "none"
	fixEveryAction = "action"
	fixEveryFrame  = "frame"
)

func (m FixMode) String() string {
	switch m {
	case FixNone:
		return fixNone
	case FixEveryAction:
		return fixEveryAction
	case FixEveryFrame:
		return fixEveryFrame
	}
	return "unknown"
}

// Sentinal error returned by ParseFixMode().
const UnknownFixMode = "recorder: unknown fix mode: %s"

// ParseFixMode returns the FixMode for the name returned by FixMode.String().
// The name is not case sensitive.
func ParseFixMode(s string) (FixMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case fixNone:
		return FixNone, nil
	case fixEveryAction:
		return FixEveryAction, nil
	case fixEveryFrame:
		return FixEveryFrame, nil
	}
	return FixNone, curated.Errorf(UnknownFixMode, s)
}

// FixModes is the list of names accepted by ParseFixMode().
var FixModes = []string{fixNone, fixEveryAction, fixEveryFrame}
