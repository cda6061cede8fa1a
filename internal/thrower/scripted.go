package thrower

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var ErrInvalidScript = errors.New("invalid throw script")

// Scripted replays a fixed sequence of knockdowns. Pins that are no longer
// standing are dropped from a scripted throw; once the script runs out every
// throw is a gutter ball.
type Scripted struct {
	mtx    sync.Mutex
	throws [][]int
	next   int
}

func NewScripted(throws ...[]int) *Scripted {
	copied := make([][]int, len(throws))
	for i, t := range throws {
		copied[i] = slices.Clone(t)
	}
	return &Scripted{throws: copied}
}

func (s *Scripted) ExecuteThrow(standing []int) []int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.next >= len(s.throws) {
		return []int{}
	}
	planned := s.throws[s.next]
	s.next++
	return keepStanding(standing, planned)
}

// Remaining is the number of scripted throws not yet played.
func (s *Scripted) Remaining() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.throws) - s.next
}

// ParseScript reads throws separated by ';', each a comma separated list of
// pin ids. An empty throw ("") is a gutter ball.
//
//	"0,1,2;3,4,5,6,7,8,9" -> [[0 1 2] [3 4 5 6 7 8 9]]
func ParseScript(script string) ([][]int, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var throws [][]int
	for i, part := range strings.Split(script, ";") {
		pins := []int{}
		for _, field := range strings.Split(part, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: throw %d: %q is not a pin id", ErrInvalidScript, i+1, field)
			}
			if id < 0 {
				return nil, fmt.Errorf("%w: throw %d: negative pin id %d", ErrInvalidScript, i+1, id)
			}
			pins = append(pins, id)
		}
		throws = append(throws, pins)
	}
	return throws, nil
}

func keepStanding(standing, planned []int) []int {
	out := make([]int, 0, len(planned))
	for _, id := range planned {
		if slices.Contains(standing, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
