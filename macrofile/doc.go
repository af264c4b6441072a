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

// Package macrofile reads and writes the native Zephyrus macro file format.
//
// A macro file is a fixed size header followed by the action records and
// then the fix snapshot records. All values are little-endian.
//
//	header:
//		magic            u16   always 0x525A
//		version          u8    1 (legacy) or 2 (current)
//		recordedTickRate u32
//		actionCount      u32
//		fixCount         u32
//
//	action:
//		tick  u32
//		flags u8    bit 7 player 2, bit 6 press, bits 5-4 button
//
// The two versions differ in the layout of a fix snapshot record. Version 2:
//
//	fix:
//		tick       u32
//		player1    x f32, y f32, ySpeed f64, rotation f32
//		hasPlayer2 u8
//		player2    (only if hasPlayer2)
//
// Version 1:
//
//	fix:
//		tick       u32
//		player1    x f32, y f32, flipGravity u8, hasExtendedSpeed u8,
//		           xSpeed f32, ySpeed f32, rotation f32 (only if hasExtendedSpeed)
//		hasPlayer2 u8
//		player2    (only if hasPlayer2)
//
// The version byte is the only thing that decides how the rest of the file
// is read. The recordedTickRate is informational for version 2 files. For
// version 1 files every tick is rescaled from the recorded rate to
// TargetTickRate.
//
// Files are only ever written as version 2 by Encode(). EncodeVersion() can
// write either version.
package macrofile
