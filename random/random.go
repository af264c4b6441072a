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

package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Seeder implementations return a seed value on request.
type Seeder interface {
	Seed() int64
}

// the base seed for all Random instances
var baseSeed = uint64(time.Now().UnixNano())

// Random is a Seeder that returns a new value on every call. It is safe for
// concurrent use.
type Random struct {
	// use zero as the base seed rather than the time derived base seed
	ZeroSeed bool

	crit sync.Mutex
	rng  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.rng == nil {
		var seed uint64
		if !rnd.ZeroSeed {
			seed = baseSeed
		}
		rnd.rng = rand.New(rand.NewPCG(seed, seed))
	}
	return rnd.rng
}

// Seed implements the Seeder interface. The value is always positive and
// fits in 31 bits.
func (rnd *Random) Seed() int64 {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return int64(rnd.rand().Int32())
}

// Fixed is a Seeder that always returns the same value.
type Fixed int64

// Seed implements the Seeder interface.
func (f Fixed) Seed() int64 {
	return int64(f)
}
