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

package macrofile

import (
	"errors"
	"io"

	"github.com/zephyrusbot/zephyrus/curated"
)

// readError converts the result of a failed read into a curated error. a
// short read of any kind means the file is truncated
func readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return curated.Errorf(Truncated, io.ErrUnexpectedEOF)
	}
	return curated.Errorf("macrofile: %v", err)
}

func badHeader(h Header) error {
	return curated.Errorf(BadMagicOrVersion, h.Magic, h.Version)
}

func unencodable(v any, reason string) error {
	return curated.Errorf(Unencodable, v, reason)
}
