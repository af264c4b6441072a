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

package recorder

import (
	"github.com/zephyrusbot/zephyrus/logger"
	"github.com/zephyrusbot/zephyrus/macroio"
	"github.com/zephyrusbot/zephyrus/paths"
	"github.com/zephyrusbot/zephyrus/prefs"
	"github.com/zephyrusbot/zephyrus/random"
)

// Preferences for the Engine. Changes to a value are applied to the Engine
// immediately.
type Preferences struct {
	e   *Engine
	dsk *prefs.Disk

	// one of the names returned by FixMode.String()
	FixMode prefs.String

	// use Seed rather than a random value when exporting GDR documents
	FixedSeed prefs.Bool
	Seed      prefs.Int

	// export GDR documents as MessagePack rather than JSON
	MessagePack prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are stored in the named file. If the filename
// is empty the default preferences file is used.
func NewPreferences(e *Engine, path string) (*Preferences, error) {
	p := &Preferences{e: e}

	// defaults
	p.FixMode.Set(FixEveryAction.String())
	p.FixedSeed.Set(false)
	p.Seed.Set(0)
	p.MessagePack.Set(false)

	var err error

	if path == "" {
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("recorder.fixMode", &p.FixMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.fixedSeed", &p.FixedSeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.seed", &p.Seed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.messagePack", &p.MessagePack)
	if err != nil {
		return nil, err
	}

	p.FixMode.SetHookPre(func(v prefs.Value) error {
		_, err := ParseFixMode(v.(string))
		return err
	})
	p.FixMode.SetHookPost(func(v prefs.Value) error {
		mode, _ := ParseFixMode(v.(string))
		p.e.SetFixMode(mode)
		logger.Logf(logger.Allow, "prefs", "fix mode: %s", mode)
		return nil
	})

	export := func(_ prefs.Value) error {
		p.e.SetSaveOptions(p.SaveOptions())
		return nil
	}
	p.FixedSeed.SetHookPost(export)
	p.Seed.SetHookPost(export)
	p.MessagePack.SetHookPost(export)

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	// values that were not in the file have not been through the hooks
	mode, err := ParseFixMode(p.FixMode.String())
	if err != nil {
		return nil, err
	}
	p.e.SetFixMode(mode)
	p.e.SetSaveOptions(p.SaveOptions())

	return p, nil
}

// SaveOptions returns the options for macroio.Save() described by the
// preferences.
func (p *Preferences) SaveOptions() macroio.SaveOptions {
	var opts macroio.SaveOptions
	opts.GDR.MessagePack = p.MessagePack.Get().(bool)
	if p.FixedSeed.Get().(bool) {
		opts.GDR.Seed = random.Fixed(p.Seed.Get().(int))
	}
	return opts
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
