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
	"github.com/ugorji/go/codec"

	"github.com/zephyrusbot/zephyrus/curated"
	"github.com/zephyrusbot/zephyrus/macro"
	"github.com/zephyrusbot/zephyrus/random"
)

// the document written by Encode(). fields are in alphabetical order
type document struct {
	Author      string  `codec:"author"`
	Bot         bot     `codec:"bot"`
	Coins       int     `codec:"coins"`
	Description string  `codec:"description"`
	Duration    uint32  `codec:"duration"`
	GameVersion float64 `codec:"gameVersion"`
	Inputs      []input `codec:"inputs"`
	LDM         bool    `codec:"ldm"`
	Level       level   `codec:"level"`
	Seed        int64   `codec:"seed"`
	Version     float64 `codec:"version"`
}

type bot struct {
	Name    string `codec:"name"`
	Version string `codec:"version"`
}

type level struct {
	ID   int    `codec:"id"`
	Name string `codec:"name"`
}

// the correction fields are pointers so that they are omitted when there is
// no correction but are written when the correction value is zero
type input struct {
	Player2 bool     `codec:"2p"`
	Button  uint8    `codec:"btn"`
	Down    bool     `codec:"down"`
	Frame   uint32   `codec:"frame"`
	Meta    *bool    `codec:"mhr_meta,omitempty"`
	X       *float32 `codec:"mhr_x,omitempty"`
	Y       *float32 `codec:"mhr_y,omitempty"`
	YVel    *float64 `codec:"mhr_yvel,omitempty"`
}

// placeholder values for metadata that isn't part of a Macro
const (
	gameVersion     = 2.204
	documentVersion = 1.0
)

// seeds documents encoded without a Seeder. shared so that successive
// documents have different seeds
var defaultSeed = random.NewRandom()

// Options for Encode().
type Options struct {
	// source of the seed value written to the document. if nil a seed is
	// taken from a random.Random shared by every call to Encode()
	Seed random.Seeder

	// write the document as MessagePack rather than JSON
	MessagePack bool
}

// Encode a Macro as a GDR document.
func Encode(m *macro.Macro, opts Options) ([]byte, error) {
	if opts.Seed == nil {
		opts.Seed = defaultSeed
	}

	doc := document{
		Bot: bot{
			Name:    BotName,
			Version: BotVersion,
		},
		GameVersion: gameVersion,
		Inputs:      make([]input, 0, m.NumActions()),
		Seed:        opts.Seed.Seed(),
		Version:     documentVersion,
	}

	// the duration is the frame of the last action. an empty macro has a
	// duration of zero
	if last, ok := m.LastAction(); ok {
		doc.Duration = last.Tick
	}

	// first fix snapshot at every tick
	fixes := make(map[uint32]macro.FixSnapshot)
	for _, f := range m.FixSnapshots() {
		if _, ok := fixes[f.Tick()]; !ok {
			fixes[f.Tick()] = f
		}
	}

	for _, a := range m.Actions() {
		if !a.Player.Valid() {
			return nil, curated.Errorf(Unencodable, a, "player out of range")
		}
		if !a.Button.Valid() {
			return nil, curated.Errorf(Unencodable, a, "button out of range")
		}

		// only the first action at a frame is written
		if n := len(doc.Inputs); n > 0 && doc.Inputs[n-1].Frame == a.Tick {
			continue
		}

		in := input{
			Player2: a.Player == macro.Player2,
			Button:  uint8(a.Button),
			Down:    a.Press,
			Frame:   a.Tick,
		}

		if f, ok := fixes[a.Tick]; ok {
			p := f.Player1()
			meta := true
			in.Meta = &meta
			in.X = &p.X
			in.Y = &p.Y
			in.YVel = &p.YSpeed
		}

		doc.Inputs = append(doc.Inputs, in)
	}

	var h codec.Handle = jsonHandle
	if opts.MessagePack {
		h = msgpackHandle
	}

	var b []byte
	if err := codec.NewEncoderBytes(&b, h).Encode(doc); err != nil {
		return nil, curated.Errorf("gdreplay: %v", err)
	}

	return b, nil
}
