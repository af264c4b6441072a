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

// Package gdreplay converts between a Macro and the GDR replay document
// format used by other replay bots (https://github.com/maxnut/GDReplayFormat).
//
// A GDR document is JSON or MessagePack. Decode() tries JSON first and only if
// that fails does it try MessagePack.
//
// The name of the bot that wrote the document decides the dialect. The
// dialects differ in how they attach drift correction data to an input:
//
//	Overlay ("Macrobot")
//		a "correction" object with its own frame, xPos, yPos, yVel and
//		rotation. Corrections for the second player are ignored.
//
//	HackReplay ("MH_REPLAY" and "Zephyrus")
//		the "mhr_meta" key marks an input as having mhr_x, mhr_y and
//		mhr_yvel values. The correction is for the frame of the input.
//
// Documents from any other bot are decoded for their inputs only.
//
// Encode() always writes the HackReplay dialect with Zephyrus as the bot
// name. Only the first action at any frame is written and only the first
// player's correction data.
package gdreplay
