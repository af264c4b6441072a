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
	"io"

	"github.com/zephyrusbot/zephyrus/macro"
)

// headless is a recorder.Host without a game. The clock is advanced by the
// caller and every callback from the engine is written to output.
type headless struct {
	output io.Writer
	tick   uint32

	dispatched  int
	corrections int
}

func (h *headless) CurrentTick() uint32 {
	return h.tick
}

func (h *headless) DispatchButton(player macro.Player, button macro.Button, press bool) {
	h.dispatched++
	state := "release"
	if press {
		state = "press"
	}
	fmt.Fprintf(h.output, "%d: %s %s %s\n", h.tick, player, button, state)
}

func (h *headless) ApplyCorrection(player macro.Player, state macro.PlayerState) {
	h.corrections++
	fmt.Fprintf(h.output, "%d: correct %s %s\n", h.tick, player, state)
}

// there is no game to sample so the snapshot is always the zero state
func (h *headless) SampleCorrection() macro.FixSnapshot {
	return macro.NewFixSnapshot(h.tick, macro.PlayerState{})
}
