// Package thrower provides bowling.Executor implementations: a seeded random
// thrower for real games plus scripted and fixed throwers for replays and tests.
package thrower

import (
	"math/rand"
	"sync"
)

// Random knocks each standing pin independently with probability one half.
type Random struct {
	mtx sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random thrower. The same seed replays the same game.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ExecuteThrow(standing []int) []int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	knocked := make([]int, 0, len(standing))
	for _, id := range standing {
		if r.rng.Intn(2) == 1 {
			knocked = append(knocked, id)
		}
	}
	return knocked
}
