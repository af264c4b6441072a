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

// Package curated provides the error values used throughout Zephyrus.
//
// A curated error is created with Errorf(), which takes a pattern and a list
// of values in the same way as fmt.Errorf(). The pattern is remembered and
// can be tested for with the Is() and Has() functions. Packages that need to
// report a specific failure export the pattern as a string constant:
//
//	const NotFound = "macroio: file not found: %s"
//
//	err := curated.Errorf(NotFound, path)
//
//	if curated.Is(err, NotFound) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped curated
// errors. Errors are wrapped by passing them as a value to Errorf():
//
//	curated.Errorf("engine: load: %v", err)
//
// Message chains are parts separated by ": ". Adjacent duplicate parts are
// removed when the message is produced, so a package can prefix its name to
// an error that already carries the same prefix without stuttering.
//
// Curated errors also implement Unwrap() so errors.Is() and errors.As() from
// the standard library see any plain error values that were wrapped.
package curated
