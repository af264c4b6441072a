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

// Package test contains helper functions to remove common boilerplate from
// the tests in Zephyrus.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and stop the test.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type:
//
//	bool  -> success is true
//	error -> success is nil
//	nil   -> success
//
// The nil case is not obvious. Because a nil error is how Go indicates
// success, an untyped nil is always treated as success.
//
// The tags argument accepted by every function is printed before the failure
// message. It is useful for identifying which iteration of a loop failed.
package test
