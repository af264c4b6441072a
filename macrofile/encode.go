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

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/macro"
)

// Encode writes the macro as a version 2 file.
func Encode(w io.Writer, m *macro.Macro) error {
	return EncodeVersion(w, m, VersionCurrent)
}

// EncodeVersion writes the macro using the specified file format version.
// The recorded tick rate is always TargetTickRate so a version 1 file written
// by this function is never rescaled when it is read back.
func EncodeVersion(w io.Writer, m *macro.Macro, version uint8) error {
	var writePlayer func(io.Writer, macro.PlayerState) error

	switch version {
	case VersionCurrent:
		writePlayer = func(w io.Writer, s macro.PlayerState) error {
			return binary.Write(w, byteOrder, playerRecord{
				X:        s.X,
				Y:        s.Y,
				YSpeed:   s.YSpeed,
				Rotation: s.Rotation,
			})
		}
	case VersionLegacy:
		writePlayer = func(w io.Writer, s macro.PlayerState) error {
			return writeLegacyPlayer(w, toLegacy(s))
		}
	default:
		return badHeader(Header{Magic: Magic, Version: version})
	}

	actions := m.Actions()
	snapshots := m.FixSnapshots()

	// pack every action before writing anything so that an unencodable
	// action doesn't leave a partial file
	records := make([]actionRecord, 0, len(actions))
	for _, a := range actions {
		rec, err := packAction(a)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	bw := bufio.NewWriter(w)

	h := Header{
		Magic:            Magic,
		Version:          version,
		RecordedTickRate: TargetTickRate,
		NumActions:       uint32(len(records)),
		NumFixSnapshots:  uint32(len(snapshots)),
	}
	if err := binary.Write(bw, byteOrder, h); err != nil {
		return curated.Errorf("macrofile: %v", err)
	}

	if err := binary.Write(bw, byteOrder, records); err != nil {
		return curated.Errorf("macrofile: %v", err)
	}

	for _, f := range snapshots {
		if err := binary.Write(bw, byteOrder, f.Tick()); err != nil {
			return curated.Errorf("macrofile: %v", err)
		}
		if err := writePlayer(bw, f.Player1()); err != nil {
			return curated.Errorf("macrofile: %v", err)
		}

		p2, ok := f.Player2()
		if err := binary.Write(bw, byteOrder, ok); err != nil {
			return curated.Errorf("macrofile: %v", err)
		}
		if ok {
			if err := writePlayer(bw, p2); err != nil {
				return curated.Errorf("macrofile: %v", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf("macrofile: %v", err)
	}

	return nil
}
