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

// Package macro is the in-memory representation of a recorded macro. A Macro
// is two ordered logs: the button Actions made by the players and the
// FixSnapshots of the players' physical state, captured so that drift can be
// corrected during playback.
//
// Both logs are kept in the order entries were added, which during recording
// is the order of the simulation clock. Entries are keyed by tick but the two
// logs are not joined in any other way. Finding the snapshot for an action
// means searching the snapshot log for the same tick.
//
// There is no uniqueness constraint on entries. Duplicate or unmatched
// press/release pairs are legal and are preserved exactly as they were
// added.
package macro
