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

// Package logger is the logging system for Zephyrus. Entries are kept in
// memory, up to a maximum number, and can be written out on request. New
// entries can also be echoed to an io.Writer as they arrive.
//
// Every entry has a tag and a detail. The tag is usually the name of the
// package or sub-system that created the entry. An entry that is identical
// to the one before it is not added again. Instead, the earlier entry is
// marked as being repeated.
//
// Logging requires a Permission. The Allow value always allows logging. Types
// that want to control their own logging, for example the recorder Engine
// which is silent unless verbose, implement the Permission interface.
//
// The package level functions log to a central Logger instance. Tests and
// other code that want an isolated log can create their own with NewLogger().
package logger
