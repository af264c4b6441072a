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

// Package prefs stores typed preference values and persists them to disk.
//
// A preference is one of the types Bool, Int, Float or String. Each is
// registered with a Disk under a key:
//
//	var fixMode prefs.String
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("recorder.fixMode", &fixMode)
//	err = dsk.Load(true)
//
// The preferences file is plain text. The first line is WarningBoilerPlate
// and each following line is a key and value separated by " :: ". Keys found
// in the file that have not been added to the Disk are kept when the file is
// saved, so more than one Disk can share the same file.
//
// Values can be overridden for the duration of a Load() by pushing a group of
// command line preferences with PushCommandLineStack().
//
// Hook functions can be attached to a value with SetHookPre() and
// SetHookPost(). These are called on every Set(), even if the value has not
// changed.
package prefs
