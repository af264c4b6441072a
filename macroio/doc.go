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

// Package macroio loads and saves macros by filename. The format is decided by
// the file extension: files with the ".gdr" extension (in any case) are GDR
// documents handled by the gdreplay package, every other file is a native
// macro file handled by the macrofile package.
//
// Loading builds a new macro. A failed load never returns a partial macro so
// the caller's existing macro can be kept.
package macroio
