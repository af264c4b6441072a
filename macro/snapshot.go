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

import "fmt"

// PlayerState is the physical state of a player at a single tick.
type PlayerState struct {
	X        float32
	Y        float32
	YSpeed   float64
	Rotation float32
}

func (s PlayerState) String() string {
	return fmt.Sprintf("x=%g y=%g yspeed=%g rot=%g", s.X, s.Y, s.YSpeed, s.Rotation)
}

// FixSnapshot is the physical state of the players at a tick. The state of
// the second player is only present in two player snapshots.
//
// Create with NewFixSnapshot() or NewTwoPlayerFixSnapshot(). The zero value is
// a one player snapshot at tick zero.
type FixSnapshot struct {
	tick       uint32
	player1    PlayerState
	hasPlayer2 bool
	player2    PlayerState
}

// NewFixSnapshot creates a snapshot for a one player game.
func NewFixSnapshot(tick uint32, player1 PlayerState) FixSnapshot {
	return FixSnapshot{
		tick:    tick,
		player1: player1,
	}
}

// NewTwoPlayerFixSnapshot creates a snapshot for a two player game.
func NewTwoPlayerFixSnapshot(tick uint32, player1 PlayerState, player2 PlayerState) FixSnapshot {
	return FixSnapshot{
		tick:       tick,
		player1:    player1,
		hasPlayer2: true,
		player2:    player2,
	}
}

// Tick returns the tick the snapshot was taken at.
func (f FixSnapshot) Tick() uint32 {
	return f.tick
}

// WithTick returns a copy of the snapshot stamped with a different tick.
func (f FixSnapshot) WithTick(tick uint32) FixSnapshot {
	f.tick = tick
	return f
}

// Player1 returns the state of the first player.
func (f FixSnapshot) Player1() PlayerState {
	return f.player1
}

// Player2 returns the state of the second player. The second return value is
// false if the snapshot has no second player.
func (f FixSnapshot) Player2() (PlayerState, bool) {
	if !f.hasPlayer2 {
		return PlayerState{}, false
	}
	return f.player2, true
}

// HasPlayer2 returns true if the snapshot includes the second player.
func (f FixSnapshot) HasPlayer2() bool {
	return f.hasPlayer2
}

func (f FixSnapshot) String() string {
	if f.hasPlayer2 {
		return fmt.Sprintf("%d: P1 %s; P2 %s", f.tick, f.player1, f.player2)
	}
	return fmt.Sprintf("%d: P1 %s", f.tick, f.player1)
}
