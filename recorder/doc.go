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

// Package recorder records and plays back macros against the tick clock of a
// host game. The Engine is driven entirely by the host: the host reports
// button presses and releases, new ticks and rewinds, and the Engine calls
// back into the host through the Host interface.
//
// While recording, every button event is added to the macro at the most
// recent tick and a fix snapshot of the players' physical state is sampled on
// every tick.
//
// While playing, the actions for each new tick are dispatched to the host.
// If the host skipped ticks since the previous notification then the actions
// for every skipped tick are dispatched too, in the order they were recorded.
// Fix snapshots are then applied according to the FixMode.
//
// The Engine is not safe for concurrent use. All calls are expected to come
// from the host's game loop.
package recorder
