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

// Dialect is the variant of the GDR format, decided by the bot name.
type Dialect int

// List of valid Dialect values.
const (
	Unknown Dialect = iota
	Overlay
	HackReplay
)

func (d Dialect) String() string {
	switch d {
	case Overlay:
		return "overlay"
	case HackReplay:
		return "hack-replay"
	}
	return "unknown"
}

// BotName is the name written to documents created by Encode().
const BotName = "Zephyrus"

// BotVersion is the version written to documents created by Encode().
const BotVersion = "2"

// DialectForBot returns the dialect used by the named bot.
func DialectForBot(name string) Dialect {
	switch name {
	case "Macrobot":
		return Overlay
	case "MH_REPLAY", BotName:
		return HackReplay
	}
	return Unknown
}
