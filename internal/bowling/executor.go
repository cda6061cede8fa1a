package bowling

import (
	"fmt"
	"slices"
)

// Executor resolves one throw: given the standing pins it returns the
// subset knocked down. Implementations may be random, scripted or fixed.
type Executor interface {
	ExecuteThrow(standing []int) []int
}

// validateKnockdown checks that knocked is a duplicate-free subset of standing
// and returns it sorted.
func validateKnockdown(standing, knocked []int) ([]int, error) {
	out := make([]int, 0, len(knocked))
	seen := make(map[int]struct{}, len(knocked))
	for _, id := range knocked {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: pin %d named twice", ErrInvalidKnockdown, id)
		}
		if _, ok := slices.BinarySearch(standing, id); !ok {
			return nil, fmt.Errorf("%w: pin %d is not standing", ErrInvalidKnockdown, id)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	slices.Sort(out)
	return out, nil
}
