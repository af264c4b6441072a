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

package macrofile

import (
	"github.com/zephyrusbot/zephyrus/macro"
)

// bit layout of the action flags byte. the lower four bits are reserved and
// are always written as zero
const (
	flagPlayer2     = 0b10000000
	flagPress       = 0b01000000
	flagButtonMask  = 0b00110000
	flagButtonShift = 4
)

// actionRecord is the on-disk shape of an action
type actionRecord struct {
	Tick  uint32
	Flags uint8
}

func packAction(a macro.Action) (actionRecord, error) {
	if !a.Player.Valid() {
		return actionRecord{}, unencodable(a, "player out of range")
	}
	if !a.Button.Valid() {
		return actionRecord{}, unencodable(a, "button out of range")
	}

	rec := actionRecord{Tick: a.Tick}
	if a.Player == macro.Player2 {
		rec.Flags |= flagPlayer2
	}
	if a.Press {
		rec.Flags |= flagPress
	}
	rec.Flags |= (uint8(a.Button) << flagButtonShift) & flagButtonMask

	return rec, nil
}

func (rec actionRecord) unpack() macro.Action {
	a := macro.Action{
		Tick:   rec.Tick,
		Player: macro.Player1,
		Button: macro.Button((rec.Flags & flagButtonMask) >> flagButtonShift),
		Press:  rec.Flags&flagPress == flagPress,
	}
	if rec.Flags&flagPlayer2 == flagPlayer2 {
		a.Player = macro.Player2
	}
	return a
}
