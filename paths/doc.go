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

// Package paths prepares paths to zephyrus resources.
//
// The ResourcePath() function prepends the resource with the base resource
// directory. For example, the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If a directory called ".zephyrus" is in the current directory then that is
// the base. Otherwise, the "zephyrus" directory in the user's config directory
// is used, as returned by os.UserConfigDir(). On a Linux system that is:
//
//	/home/user/.config/zephyrus/preferences
//
// Directories are created as required.
package paths
