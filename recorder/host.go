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

import "github.com/zephyrusbot/zephyrus/macro"

// Clock reports the host's current tick.
type Clock interface {
	CurrentTick() uint32
}

// Dispatcher performs a button action in the host.
type Dispatcher interface {
	DispatchButton(player macro.Player, button macro.Button, press bool)
}

// Corrector overwrites the physical state of a player in the host.
type Corrector interface {
	ApplyCorrection(player macro.Player, state macro.PlayerState)
}

// Sampler captures the physical state of the players in the host. The tick
// of the returned snapshot is ignored.
type Sampler interface {
	SampleCorrection() macro.FixSnapshot
}

// Host is the complete set of capabilities the Engine requires of the host.
type Host interface {
	Clock
	Dispatcher
	Corrector
	Sampler
}
