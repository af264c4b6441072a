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
	"encoding/binary"
	"io"

	"github.com/zephyrusbot/zephyrus/macro"
)

// LegacyPlayerState is the state of a player as stored in a version 1 file.
// It is either a LegacyBasic or a LegacyExtended value.
type LegacyPlayerState interface {
	// PlayerState converts the legacy state to the current representation.
	// Fields that are absent in the legacy state are zero
	PlayerState() macro.PlayerState

	// GravityFlipped returns true if the player's gravity was flipped
	GravityFlipped() bool

	legacy()
}

// LegacyBasic is a legacy player state without speed or rotation
// information.
type LegacyBasic struct {
	X       float32
	Y       float32
	Flipped bool
}

// PlayerState implements the LegacyPlayerState interface.
func (s LegacyBasic) PlayerState() macro.PlayerState {
	return macro.PlayerState{X: s.X, Y: s.Y}
}

// GravityFlipped implements the LegacyPlayerState interface.
func (s LegacyBasic) GravityFlipped() bool {
	return s.Flipped
}

func (s LegacyBasic) legacy() {}

// LegacyExtended is a legacy player state that includes speed and rotation.
type LegacyExtended struct {
	LegacyBasic
	XSpeed   float32
	YSpeed   float32
	Rotation float32
}

// PlayerState implements the LegacyPlayerState interface.
func (s LegacyExtended) PlayerState() macro.PlayerState {
	return macro.PlayerState{
		X:        s.X,
		Y:        s.Y,
		YSpeed:   float64(s.YSpeed),
		Rotation: s.Rotation,
	}
}

func (s LegacyExtended) legacy() {}

// toLegacy converts a player state for writing to a version 1 file. the
// extended form is always used so that speed and rotation are kept
func toLegacy(s macro.PlayerState) LegacyExtended {
	return LegacyExtended{
		LegacyBasic: LegacyBasic{X: s.X, Y: s.Y},
		YSpeed:      float32(s.YSpeed),
		Rotation:    s.Rotation,
	}
}

// on-disk shapes of the legacy player state
type legacyBasicRecord struct {
	X                float32
	Y                float32
	FlipGravity      bool
	HasExtendedSpeed bool
}

type legacyExtendedRecord struct {
	XSpeed   float32
	YSpeed   float32
	Rotation float32
}

func readLegacyPlayer(r io.Reader) (LegacyPlayerState, error) {
	var b legacyBasicRecord
	if err := binary.Read(r, byteOrder, &b); err != nil {
		return nil, readError(err)
	}

	basic := LegacyBasic{X: b.X, Y: b.Y, Flipped: b.FlipGravity}
	if !b.HasExtendedSpeed {
		return basic, nil
	}

	var e legacyExtendedRecord
	if err := binary.Read(r, byteOrder, &e); err != nil {
		return nil, readError(err)
	}

	return LegacyExtended{
		LegacyBasic: basic,
		XSpeed:      e.XSpeed,
		YSpeed:      e.YSpeed,
		Rotation:    e.Rotation,
	}, nil
}

func writeLegacyPlayer(w io.Writer, s LegacyPlayerState) error {
	b := legacyBasicRecord{FlipGravity: s.GravityFlipped()}

	switch s := s.(type) {
	case LegacyBasic:
		b.X, b.Y = s.X, s.Y
		return binary.Write(w, byteOrder, b)

	case LegacyExtended:
		b.X, b.Y = s.X, s.Y
		b.HasExtendedSpeed = true
		if err := binary.Write(w, byteOrder, b); err != nil {
			return err
		}
		return binary.Write(w, byteOrder, legacyExtendedRecord{
			XSpeed:   s.XSpeed,
			YSpeed:   s.YSpeed,
			Rotation: s.Rotation,
		})
	}

	return unencodable(s, "unknown legacy player state")
}
