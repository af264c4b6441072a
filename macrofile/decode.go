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
	"bufio"
	"encoding/binary"
	"io"

	"github.com/zephyrusbot/zephyrus/macro"
)

// playerRecord is the on-disk shape of a version 2 player state
type playerRecord struct {
	X        float32
	Y        float32
	YSpeed   float64
	Rotation float32
}

func (rec playerRecord) state() macro.PlayerState {
	return macro.PlayerState{
		X:        rec.X,
		Y:        rec.Y,
		YSpeed:   rec.YSpeed,
		Rotation: rec.Rotation,
	}
}

// Decode reads a macro file of either version. A new Macro is returned only
// if the entire file was read successfully.
func Decode(r io.Reader) (*macro.Macro, error) {
	br := bufio.NewReader(r)

	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	switch h.Version {
	case VersionCurrent:
		return decodeCurrent(br, h)
	case VersionLegacy:
		return decodeLegacy(br, h)
	}

	return nil, badHeader(h)
}

func readActions(r io.Reader, h Header, m *macro.Macro, tick func(uint32) uint32) error {
	for i := uint32(0); i < h.NumActions; i++ {
		var rec actionRecord
		if err := binary.Read(r, byteOrder, &rec); err != nil {
			return readError(err)
		}
		a := rec.unpack()
		m.AddAction(tick(a.Tick), a.Player, a.Button, a.Press)
	}
	return nil
}

func decodeCurrent(r io.Reader, h Header) (*macro.Macro, error) {
	m := macro.NewMacro()

	identity := func(t uint32) uint32 { return t }
	if err := readActions(r, h, m, identity); err != nil {
		return nil, err
	}

	for i := uint32(0); i < h.NumFixSnapshots; i++ {
		var tick uint32
		var p1, p2 playerRecord
		var hasPlayer2 bool

		if err := binary.Read(r, byteOrder, &tick); err != nil {
			return nil, readError(err)
		}
		if err := binary.Read(r, byteOrder, &p1); err != nil {
			return nil, readError(err)
		}
		if err := binary.Read(r, byteOrder, &hasPlayer2); err != nil {
			return nil, readError(err)
		}

		if hasPlayer2 {
			if err := binary.Read(r, byteOrder, &p2); err != nil {
				return nil, readError(err)
			}
			m.AddFixSnapshot(macro.NewTwoPlayerFixSnapshot(tick, p1.state(), p2.state()))
		} else {
			m.AddFixSnapshot(macro.NewFixSnapshot(tick, p1.state()))
		}
	}

	return m, nil
}

func decodeLegacy(r io.Reader, h Header) (*macro.Macro, error) {
	m := macro.NewMacro()

	scale := func(t uint32) uint32 { return rescale(t, h.RecordedTickRate) }
	if err := readActions(r, h, m, scale); err != nil {
		return nil, err
	}

	for i := uint32(0); i < h.NumFixSnapshots; i++ {
		var tick uint32
		var hasPlayer2 bool

		if err := binary.Read(r, byteOrder, &tick); err != nil {
			return nil, readError(err)
		}
		p1, err := readLegacyPlayer(r)
		if err != nil {
			return nil, err
		}
		if err := binary.Read(r, byteOrder, &hasPlayer2); err != nil {
			return nil, readError(err)
		}

		tick = scale(tick)

		if hasPlayer2 {
			p2, err := readLegacyPlayer(r)
			if err != nil {
				return nil, err
			}
			m.AddFixSnapshot(macro.NewTwoPlayerFixSnapshot(tick, p1.PlayerState(), p2.PlayerState()))
		} else {
			m.AddFixSnapshot(macro.NewFixSnapshot(tick, p1.PlayerState()))
		}
	}

	return m, nil
}
