package options

import (
	"maps"
	"slices"
)

// Dict maps option names to raw values: bool, string, a number or nil.
type Dict map[string]any

// Clone returns a shallow copy. A nil Dict clones to an empty one.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	maps.Copy(out, d)
	return out
}

// Names returns the keys in sorted order.
func (d Dict) Names() []string {
	return slices.Sorted(maps.Keys(d))
}
