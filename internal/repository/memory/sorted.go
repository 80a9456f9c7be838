package memory

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// sortedValues returns the map's values ordered by key so listings are
// deterministic.
//
// Go Learning Note — Map Iteration Order:
// Ranging over a Go map yields keys in an unspecified, deliberately varying
// order. Anything that must be stable, like "the first available driver",
// has to sort explicitly.
func sortedValues[T any](m map[int]T) []T {
	keys := lo.Keys(m)
	slices.SortFunc(keys, cmp.Compare[int])
	return lo.Map(keys, func(k int, _ int) T {
		return m[k]
	})
}
