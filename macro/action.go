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

// Player identifies which of the two players an event belongs to.
type Player int

// List of valid Player values. The numeric value is the index the host uses
// for the player.
const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	}
	return fmt.Sprintf("P?(%d)", int(p))
}

// Valid returns false if the Player value is not one of the defined values.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Button identifies the input button. The numeric value is the id used by the
// host and by the file formats.
type Button uint8

// List of valid Button values. ButtonNone does not correspond to a physical
// button but it can be represented in the file formats and is preserved if
// found.
const (
	ButtonNone Button = iota
	Jump
	Left
	Right
)

// MaxButton is the largest button id that can be stored.
const MaxButton = Right

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case Jump:
		return "Jump"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Button?(%d)", uint8(b))
}

// Valid returns false if the Button cannot be stored.
func (b Button) Valid() bool {
	return b <= MaxButton
}

// Action is a single button press or release.
type Action struct {
	Tick   uint32
	Player Player
	Button Button
	Press  bool
}

func (a Action) String() string {
	state := "release"
	if a.Press {
		state = "press"
	}
	return fmt.Sprintf("%d: %s %s %s", a.Tick, a.Player, a.Button, state)
}
