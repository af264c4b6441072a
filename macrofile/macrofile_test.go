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

package macrofile_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/macrofile"
	"github.com/zephyrusbot/zephyrus/test"
)

func exampleMacro() *macro.Macro {
	m := macro.NewMacro()
	m.AddAction(0, macro.Player1, macro.Jump, true)
	m.AddAction(12, macro.Player1, macro.Jump, false)
	m.AddAction(12, macro.Player2, macro.Left, true)
	m.AddAction(300, macro.Player2, macro.Right, false)
	m.AddAction(301, macro.Player1, macro.ButtonNone, true)
	m.AddFixSnapshot(macro.NewFixSnapshot(0, macro.PlayerState{X: 1.5, Y: -2.25, YSpeed: 0.1234567890123, Rotation: 45}))
	m.AddFixSnapshot(macro.NewTwoPlayerFixSnapshot(12,
		macro.PlayerState{X: 100, Y: 200, YSpeed: -11.000000001, Rotation: 270},
		macro.PlayerState{X: 101, Y: 201, YSpeed: 3.5, Rotation: 0},
	))
	return m
}

func TestRoundTrip(t *testing.T) {
	m := exampleMacro()

	var buf bytes.Buffer
	test.DemandSuccess(t, macrofile.Encode(&buf, m))

	d, err := macrofile.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.Equal(m))

	// the double precision speed value survives exactly
	test.ExpectEquality(t, d.FixSnapshots()[0].Player1().YSpeed, 0.1234567890123)
}

func TestRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, macrofile.Encode(&buf, macro.NewMacro()))

	// header only
	test.ExpectEquality(t, buf.Len(), 15)

	d, err := macrofile.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.NumActions(), 0)
	test.ExpectEquality(t, d.NumFixSnapshots(), 0)
}

func TestLayout(t *testing.T) {
	m := macro.NewMacro()
	m.AddAction(0x01020304, macro.Player2, macro.Right, true)
	m.AddFixSnapshot(macro.NewFixSnapshot(7, macro.PlayerState{}))

	var buf bytes.Buffer
	test.DemandSuccess(t, macrofile.Encode(&buf, m))

	b := buf.Bytes()
	test.DemandEquality(t, len(b), 15+5+4+20+1)

	// header
	test.ExpectEquality(t, b[0], 0x5a)
	test.ExpectEquality(t, b[1], 0x52)
	test.ExpectEquality(t, b[2], macrofile.VersionCurrent)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[3:]), macrofile.TargetTickRate)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[7:]), 1)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[11:]), 1)

	// action tick is little-endian
	test.ExpectEquality(t, b[15], 0x04)
	test.ExpectEquality(t, b[18], 0x01)

	// flags: player 2 | press | button 3
	test.ExpectEquality(t, b[19], 0b11110000)

	// fix snapshot has no second player
	test.ExpectEquality(t, b[len(b)-1], 0)
}

func TestUnencodable(t *testing.T) {
	m := macro.NewMacro()
	m.AddAction(1, macro.Player1, macro.Button(4), true)

	var buf bytes.Buffer
	err := macrofile.Encode(&buf, m)
	test.ExpectSuccess(t, curated.Is(err, macrofile.Unencodable))
	test.ExpectEquality(t, buf.Len(), 0)

	m = macro.NewMacro()
	m.AddAction(1, macro.Player(3), macro.Jump, true)
	err = macrofile.Encode(&buf, m)
	test.ExpectSuccess(t, curated.Is(err, macrofile.Unencodable))

	err = macrofile.EncodeVersion(&buf, macro.NewMacro(), 3)
	test.ExpectSuccess(t, curated.Is(err, macrofile.BadMagicOrVersion))
}

// legacyFile builds a version 1 file by hand
type legacyFile struct {
	bytes.Buffer
}

func (f *legacyFile) put(v any) {
	binary.Write(&f.Buffer, binary.LittleEndian, v)
}

func (f *legacyFile) header(rate uint32, actions uint32, fixes uint32) {
	f.put(macrofile.Magic)
	f.put(macrofile.VersionLegacy)
	f.put(rate)
	f.put(actions)
	f.put(fixes)
}

func TestLegacyRescale(t *testing.T) {
	var f legacyFile
	f.header(120, 1, 1)
	f.put(uint32(60))
	f.put(uint8(0b01010000))
	f.put(uint32(61))
	f.put(float32(1))
	f.put(float32(2))
	f.put(false)
	f.put(false)
	f.put(false)

	m, err := macrofile.Decode(&f)
	test.DemandSuccess(t, err)

	a := m.Actions()
	test.DemandEquality(t, len(a), 1)
	test.ExpectEquality(t, a[0].Tick, 120)
	test.ExpectEquality(t, a[0].Button, macro.Jump)
	test.ExpectEquality(t, a[0].Press, true)
	test.ExpectEquality(t, a[0].Player, macro.Player1)

	// snapshot ticks are rescaled too
	fx := m.FixSnapshots()
	test.DemandEquality(t, len(fx), 1)
	test.ExpectEquality(t, fx[0].Tick(), 122)
}

func TestLegacyRescaleTruncates(t *testing.T) {
	var f legacyFile
	f.header(144, 2, 0)
	f.put(uint32(1))
	f.put(uint8(0))
	f.put(uint32(100))
	f.put(uint8(0))

	m, err := macrofile.Decode(&f)
	test.DemandSuccess(t, err)

	// 1 * 240/144 = 1.67 and 100 * 240/144 = 166.67
	a := m.Actions()
	test.ExpectEquality(t, a[0].Tick, 1)
	test.ExpectEquality(t, a[1].Tick, 166)
}

func TestLegacyIdentity(t *testing.T) {
	var f legacyFile
	f.header(240, 1, 0)
	f.put(uint32(60))
	f.put(uint8(0b10100000))

	m, err := macrofile.Decode(&f)
	test.DemandSuccess(t, err)
	a := m.Actions()
	test.ExpectEquality(t, a[0].Tick, 60)
	test.ExpectEquality(t, a[0].Player, macro.Player2)
	test.ExpectEquality(t, a[0].Button, macro.Left)
	test.ExpectEquality(t, a[0].Press, false)
}

func TestLegacyPlayerState(t *testing.T) {
	var f legacyFile
	f.header(240, 0, 2)

	// basic player one only
	f.put(uint32(10))
	f.put(float32(3))
	f.put(float32(4))
	f.put(true)
	f.put(false)
	f.put(false)

	// extended player one and basic player two
	f.put(uint32(11))
	f.put(float32(5))
	f.put(float32(6))
	f.put(false)
	f.put(true)
	f.put(float32(7))
	f.put(float32(8))
	f.put(float32(9))
	f.put(true)
	f.put(float32(10))
	f.put(float32(11))
	f.put(false)
	f.put(false)

	m, err := macrofile.Decode(&f)
	test.DemandSuccess(t, err)

	fx := m.FixSnapshots()
	test.DemandEquality(t, len(fx), 2)

	test.ExpectEquality(t, fx[0].Player1(), macro.PlayerState{X: 3, Y: 4})
	test.ExpectFailure(t, fx[0].HasPlayer2())

	test.ExpectEquality(t, fx[1].Player1(), macro.PlayerState{X: 5, Y: 6, YSpeed: 8, Rotation: 9})
	p2, ok := fx[1].Player2()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p2, macro.PlayerState{X: 10, Y: 11})
}

func TestLegacyVariants(t *testing.T) {
	basic := macrofile.LegacyBasic{X: 1, Y: 2, Flipped: true}
	ext := macrofile.LegacyExtended{LegacyBasic: basic, XSpeed: 3, YSpeed: 4, Rotation: 5}

	var s macrofile.LegacyPlayerState = basic
	test.ExpectEquality(t, s.PlayerState(), macro.PlayerState{X: 1, Y: 2})
	test.ExpectSuccess(t, s.GravityFlipped())

	s = ext
	test.ExpectEquality(t, s.PlayerState(), macro.PlayerState{X: 1, Y: 2, YSpeed: 4, Rotation: 5})
	test.ExpectSuccess(t, s.GravityFlipped())
}

func TestLegacyWriter(t *testing.T) {
	m := exampleMacro()

	var buf bytes.Buffer
	test.DemandSuccess(t, macrofile.EncodeVersion(&buf, m, macrofile.VersionLegacy))

	h, err := macrofile.PeekHeader(bytes.NewReader(buf.Bytes()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Version, macrofile.VersionLegacy)
	test.ExpectEquality(t, h.RecordedTickRate, macrofile.TargetTickRate)

	d, err := macrofile.Decode(&buf)
	test.DemandSuccess(t, err)

	// actions are identical. the legacy format stores speed as single
	// precision so snapshots are only approximately the same
	test.ExpectEquality(t, len(d.Actions()), len(m.Actions()))
	for i, a := range d.Actions() {
		test.ExpectEquality(t, a, m.Actions()[i], i)
	}

	fx := d.FixSnapshots()
	test.DemandEquality(t, len(fx), 2)
	test.ExpectEquality(t, fx[1].Tick(), 12)
	test.ExpectApproximate(t, fx[1].Player1().YSpeed, -11.0, 0.0001)
	test.ExpectSuccess(t, fx[1].HasPlayer2())
}

func TestBadHeader(t *testing.T) {
	var f legacyFile
	f.put(uint16(0x1234))
	f.put(macrofile.VersionCurrent)
	f.put(uint32(240))
	f.put(uint32(0))
	f.put(uint32(0))

	m, err := macrofile.Decode(&f)
	test.ExpectSuccess(t, curated.Is(err, macrofile.BadMagicOrVersion))
	test.ExpectEquality(t, m, nil)

	f.Reset()
	f.put(macrofile.Magic)
	f.put(uint8(3))
	f.put(uint32(240))
	f.put(uint32(0))
	f.put(uint32(0))

	_, err = macrofile.Decode(&f)
	test.ExpectSuccess(t, curated.Is(err, macrofile.BadMagicOrVersion))

	// a legacy header with a recorded tick rate of zero
	f.Reset()
	f.header(0, 0, 0)
	m, err = macrofile.Decode(bytes.NewReader(f.Bytes()))
	test.ExpectSuccess(t, curated.Is(err, macrofile.BadMagicOrVersion))
	test.ExpectEquality(t, m, nil)

	_, err = macrofile.PeekHeader(&f)
	test.ExpectSuccess(t, curated.Is(err, macrofile.BadMagicOrVersion))
}

func TestTruncated(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, macrofile.Encode(&buf, exampleMacro()))
	b := buf.Bytes()

	// every possible truncation of the file fails
	for n := 0; n < len(b); n++ {
		m, err := macrofile.Decode(bytes.NewReader(b[:n]))
		test.ExpectFailure(t, err, n)
		test.ExpectEquality(t, m, nil, n)
	}

	// header claims more actions than there are
	var f legacyFile
	f.put(macrofile.Magic)
	f.put(macrofile.VersionCurrent)
	f.put(uint32(240))
	f.put(uint32(2))
	f.put(uint32(0))
	f.put(uint32(5))
	f.put(uint8(0))
	_, err := macrofile.Decode(&f)
	test.ExpectSuccess(t, curated.Is(err, macrofile.Truncated))
}
