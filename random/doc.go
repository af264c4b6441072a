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

// Package random provides the seed values written to exported replay
// documents.
//
// The Seeder interface is what the exporters ask for a seed. The Random type
// is the usual implementation and returns a different value every time, based
// on the time the program started. Setting ZeroSeed makes the sequence of
// values the same every time, which is useful for testing. The Fixed type
// always returns the same value.
package random
