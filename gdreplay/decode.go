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

package gdreplay

import (
	"bytes"
	"fmt"
	"math"
	"reflect"

	"github.com/ugorji/go/codec"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/logger"
	"github.com/zephyrusbot/zephyrus/macro"
)

// MalformedDocument is the sentinal error pattern returned when a document
// cannot be decoded.
const MalformedDocument = "gdreplay: malformed document: %v"

// Unencodable is the sentinal error pattern returned when a Macro contains an
// action that cannot be written.
const Unencodable = "gdreplay: cannot encode %v: %s"

var mapType = reflect.TypeOf(map[string]any(nil))

var jsonHandle = func() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = mapType
	h.Indent = 4
	h.HTMLCharsAsIs = true
	return h
}()

var msgpackHandle = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.MapType = mapType
	h.RawToString = true
	h.WriteExt = true
	return h
}()

// parse the document as JSON and then as MessagePack. the JSON parse fails if
// there is anything other than white space after the document
func parse(data []byte) (any, error) {
	var v any

	dec := codec.NewDecoderBytes(data, jsonHandle)
	jsonErr := dec.Decode(&v)
	if jsonErr == nil {
		if len(bytes.TrimSpace(data[dec.NumBytesRead():])) == 0 {
			return v, nil
		}
		jsonErr = fmt.Errorf("trailing data after JSON document")
	}

	v = nil
	if err := codec.NewDecoderBytes(data, msgpackHandle).Decode(&v); err != nil {
		return nil, fmt.Errorf("not JSON (%v) or MessagePack (%v)", jsonErr, err)
	}

	return v, nil
}

// Decode a GDR document. A new Macro is returned only if the entire document
// was decoded successfully.
func Decode(data []byte) (*macro.Macro, error) {
	m, _, err := DecodeDialect(data)
	return m, err
}

// DecodeDialect is the same as Decode() but also returns the dialect of the
// document.
func DecodeDialect(data []byte) (*macro.Macro, Dialect, error) {
	v, err := parse(data)
	if err != nil {
		return nil, Unknown, curated.Errorf(MalformedDocument, err)
	}

	m, dialect, err := decode(node{v: v})
	if err != nil {
		return nil, Unknown, curated.Errorf(MalformedDocument, err)
	}

	return m, dialect, nil
}

func decode(doc node) (*macro.Macro, Dialect, error) {
	bot, err := doc.get("bot")
	if err != nil {
		return nil, Unknown, err
	}
	name, err := bot.get("name")
	if err != nil {
		return nil, Unknown, err
	}
	botName, err := name.text()
	if err != nil {
		return nil, Unknown, err
	}

	dialect := DialectForBot(botName)
	if dialect == Unknown {
		logger.Logf(logger.Allow, "gdreplay", "unrecognised bot (%s): correction data will be ignored", botName)
	}

	m := macro.NewMacro()

	// a document with no inputs is an empty macro
	if !doc.has("inputs") {
		return m, dialect, nil
	}

	inputs, err := doc.get("inputs")
	if err != nil {
		return nil, Unknown, err
	}
	elements, err := inputs.array()
	if err != nil {
		return nil, Unknown, err
	}

	for _, in := range elements {
		a, err := decodeAction(in)
		if err != nil {
			return nil, Unknown, err
		}
		m.AddAction(a.Tick, a.Player, a.Button, a.Press)

		var fix macro.FixSnapshot
		var ok bool

		switch dialect {
		case HackReplay:
			fix, ok, err = decodeHackReplayFix(in, a.Tick)
		case Overlay:
			fix, ok, err = decodeOverlayFix(in)
		}
		if err != nil {
			return nil, Unknown, err
		}
		if ok {
			m.AddFixSnapshot(fix)
		}
	}

	return m, dialect, nil
}

func decodeAction(in node) (macro.Action, error) {
	var a macro.Action

	n, err := in.get("2p")
	if err != nil {
		return a, err
	}
	is2p, err := n.boolean()
	if err != nil {
		return a, err
	}

	n, err = in.get("btn")
	if err != nil {
		return a, err
	}
	btn, err := n.unsigned(uint64(macro.MaxButton))
	if err != nil {
		return a, err
	}

	n, err = in.get("down")
	if err != nil {
		return a, err
	}
	down, err := n.boolean()
	if err != nil {
		return a, err
	}

	n, err = in.get("frame")
	if err != nil {
		return a, err
	}
	frame, err := n.unsigned(math.MaxUint32)
	if err != nil {
		return a, err
	}

	a.Tick = uint32(frame)
	a.Button = macro.Button(btn)
	a.Press = down
	a.Player = macro.Player1
	if is2p {
		a.Player = macro.Player2
	}

	return a, nil
}

// floats reads each of the named keys from the node as a number
func floats(n node, keys ...string) ([]float64, error) {
	r := make([]float64, len(keys))
	for i, k := range keys {
		v, err := n.get(k)
		if err != nil {
			return nil, err
		}
		r[i], err = v.float()
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func decodeHackReplayFix(in node, tick uint32) (macro.FixSnapshot, bool, error) {
	if !in.has("mhr_meta") {
		return macro.FixSnapshot{}, false, nil
	}

	v, err := floats(in, "mhr_x", "mhr_y", "mhr_yvel")
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}

	return macro.NewFixSnapshot(tick, macro.PlayerState{
		X:      float32(v[0]),
		Y:      float32(v[1]),
		YSpeed: v[2],
	}), true, nil
}

func decodeOverlayFix(in node) (macro.FixSnapshot, bool, error) {
	if !in.has("correction") {
		return macro.FixSnapshot{}, false, nil
	}

	correction, err := in.get("correction")
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}

	n, err := correction.get("player2")
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}
	player2, err := n.boolean()
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}
	if player2 {
		return macro.FixSnapshot{}, false, nil
	}

	// the correction has its own frame which isn't necessarily the same as
	// the frame of the input
	n, err = correction.get("frame")
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}
	frame, err := n.unsigned(math.MaxUint32)
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}

	v, err := floats(correction, "xPos", "yPos", "yVel", "rotation")
	if err != nil {
		return macro.FixSnapshot{}, false, err
	}

	return macro.NewFixSnapshot(uint32(frame), macro.PlayerState{
		X:        float32(v[0]),
		Y:        float32(v[1]),
		YSpeed:   v[2],
		Rotation: float32(v[3]),
	}), true, nil
}
