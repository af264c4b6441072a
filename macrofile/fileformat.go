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
	"fmt"
	"io"
	"math"
)

// Magic is the first value in every macro file.
const Magic uint16 = 0x525A

// List of file format versions.
const (
	VersionLegacy  uint8 = 1
	VersionCurrent uint8 = 2
)

// TargetTickRate is the tick rate of the simulation. Legacy files recorded
// at a different rate are rescaled to this rate when they are read.
const TargetTickRate uint32 = 240

// Sentinal error patterns returned by this package.
const (
	BadMagicOrVersion = "macrofile: unrecognised header (magic %#04x, version %d)"
	Truncated         = "macrofile: truncated data: %v"
	Unencodable       = "macrofile: cannot encode %v: %s"
)

// the byte order of every value in the file
var byteOrder = binary.LittleEndian

// Header is the header found at the start of every macro file.
type Header struct {
	Magic            uint16
	Version          uint8
	RecordedTickRate uint32
	NumActions       uint32
	NumFixSnapshots  uint32
}

func (h Header) String() string {
	return fmt.Sprintf("version %d, recorded at %d ticks/sec, %d actions, %d fix snapshots",
		h.Version, h.RecordedTickRate, h.NumActions, h.NumFixSnapshots)
}

// known returns true if the header is one that can be decoded. ticks in a
// legacy file cannot be rescaled from a recorded rate of zero
func (h Header) known() bool {
	if h.Magic != Magic {
		return false
	}
	switch h.Version {
	case VersionLegacy:
		return h.RecordedTickRate != 0
	case VersionCurrent:
		return true
	}
	return false
}

func readHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, byteOrder, &h); err != nil {
		return Header{}, readError(err)
	}
	if !h.known() {
		return Header{}, badHeader(h)
	}
	return h, nil
}

// PeekHeader reads and validates the header of a macro file without
// decoding the rest of the file.
func PeekHeader(r io.Reader) (Header, error) {
	return readHeader(r)
}

// rescale converts a tick recorded at the specified rate to TargetTickRate.
// the result is truncated towards zero
func rescale(tick uint32, rate uint32) uint32 {
	if rate == TargetTickRate {
		return tick
	}
	v := float64(tick) * (float64(TargetTickRate) / float64(rate))
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
