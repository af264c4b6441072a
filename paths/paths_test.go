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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/zephyrusbot/zephyrus/paths"
	"github.com/zephyrusbot/zephyrus/test"
)

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	// a local .zephyrus directory is preferred over the config directory
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".zephyrus", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".zephyrus", "foo", "bar", "baz"))

	fi, err := os.Stat(filepath.Join(".zephyrus", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".zephyrus", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".zephyrus")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("graph", "level", "dot")
	test.ExpectSuccess(t, regexp.MustCompile(`^graph_level_\d{8}_\d{6}\.dot$`).MatchString(fn))

	fn = paths.UniqueFilename("graph", " ", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^graph_\d{8}_\d{6}$`).MatchString(fn))
}
