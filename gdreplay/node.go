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

package gdreplay

import (
	"fmt"
	"math"
)

// node is a decoded document value. objects are map[string]any and arrays
// are []any
type node struct {
	path string
	v    any
}

func (n node) object() (map[string]any, error) {
	if o, ok := n.v.(map[string]any); ok {
		return o, nil
	}
	return nil, fmt.Errorf("%s is not an object", n.path)
}

func (n node) has(key string) bool {
	o, ok := n.v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = o[key]
	return ok
}

func (n node) get(key string) (node, error) {
	o, err := n.object()
	if err != nil {
		return node{}, err
	}
	path := key
	if n.path != "" {
		path = fmt.Sprintf("%s.%s", n.path, key)
	}
	v, ok := o[key]
	if !ok {
		return node{}, fmt.Errorf("%s is missing", path)
	}
	return node{path: path, v: v}, nil
}

func (n node) array() ([]node, error) {
	a, ok := n.v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an array", n.path)
	}
	r := make([]node, len(a))
	for i, v := range a {
		r[i] = node{path: fmt.Sprintf("%s[%d]", n.path, i), v: v}
	}
	return r, nil
}

func (n node) text() (string, error) {
	switch v := n.v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("%s is not a string", n.path)
}

func (n node) boolean() (bool, error) {
	if b, ok := n.v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("%s is not a boolean", n.path)
}

// float returns any numeric value as a float64
func (n node) float() (float64, error) {
	switch v := n.v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%s is not a number", n.path)
}

// unsigned returns a numeric value that is a whole number between zero and
// max inclusive
func (n node) unsigned(max uint64) (uint64, error) {
	if u, ok := n.v.(uint64); ok {
		if u > max {
			return 0, fmt.Errorf("%s is out of range", n.path)
		}
		return u, nil
	}

	f, err := n.float()
	if err != nil {
		return 0, err
	}
	if f < 0 || f > float64(max) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is out of range", n.path)
	}
	return uint64(f), nil
}
