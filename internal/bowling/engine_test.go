package bowling

import (
	"math/rand"
	"testing"

	"bowling_backend/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTen = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// FakeExecutor returns whatever the test queued for the next throw and
// remembers the standing pins it was offered.
type FakeExecutor struct {
	Next    []int
	Offered [][]int
}

func (f *FakeExecutor) ExecuteThrow(standing []int) []int {
	f.Offered = append(f.Offered, standing)
	return f.Next
}

type engineHarness struct {
	t      *testing.T
	engine *Engine
	exec   *FakeExecutor
}

func newHarness(t *testing.T, rules model.Rules) *engineHarness {
	t.Helper()
	exec := &FakeExecutor{}
	engine, err := NewEngine(exec, rules)
	require.NoError(t, err)
	engine.StartNewGame()
	return &engineHarness{t: t, engine: engine, exec: exec}
}

func (h *engineHarness) throw(pins ...int) model.GameStatus {
	h.t.Helper()
	h.exec.Next = pins
	status, err := h.engine.ThrowBall()
	require.NoError(h.t, err)
	return status
}

func (h *engineHarness) strike() model.GameStatus {
	h.t.Helper()
	return h.throw(allTen...)
}

func (h *engineHarness) spare(first, second []int) model.GameStatus {
	h.t.Helper()
	h.throw(first...)
	return h.throw(second...)
}

func sumFrames(status model.GameStatus) int {
	total := 0
	for _, f := range status.Frames {
		total += f.Points
	}
	return total
}

func TestNewEngineRejectsInvalidRules(t *testing.T) {
	_, err := NewEngine(&FakeExecutor{}, model.Rules{Frames: 0, Pins: 10})
	assert.ErrorIs(t, err, ErrInvalidRules)

	_, err = NewEngine(nil, model.DefaultRules())
	assert.ErrorIs(t, err, ErrInvalidRules)
}

func TestEngineRulesIsDefensiveCopy(t *testing.T) {
	custom := model.Rules{Frames: 8, Pins: 5, BonusSpareThrows: 3, BonusStrikeThrows: 2}
	engine, err := NewEngine(&FakeExecutor{}, custom)
	require.NoError(t, err)

	got := engine.Rules()
	assert.Equal(t, custom, got)

	got.Frames = 1
	assert.Equal(t, 8, engine.Rules().Frames)
}

func TestThrowBeforeStart(t *testing.T) {
	engine, err := NewEngine(&FakeExecutor{}, model.DefaultRules())
	require.NoError(t, err)

	_, err = engine.ThrowBall()
	assert.ErrorIs(t, err, ErrGameNotStarted)
	assert.False(t, engine.Started())
}

func TestStartNewGame(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	status := h.engine.GameStatus()
	assert.Equal(t, []model.FrameStatus{{Type: model.FrameRegular, Points: 0}}, status.Frames)
	assert.Equal(t, 9, status.FramesToFinish)
	assert.False(t, status.IsGameFinished)
	assert.Empty(t, status.BonusThrowsResults)
}

func TestFirstThrowScoresFrame(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	status := h.throw(0, 2, 5)
	assert.Equal(t, 3, status.Frames[0].Points)
	assert.Equal(t, 3, status.TotalPoints)
	assert.False(t, status.IsGameFinished)
}

func TestRegularFrameSumsBothThrows(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	status := h.throw(0, 1, 2)
	assert.Equal(t, 3, status.TotalPoints)

	status = h.throw(8, 9, 3)
	assert.Equal(t, 6, status.TotalPoints)
	assert.Equal(t, model.FrameRegular, status.Frames[0].Type)
	assert.Len(t, status.Frames, 2, "closing a frame opens the next one")
}

func TestSecondThrowOnlyOffersStandingPins(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	h.throw(0, 1, 2)
	h.throw(3)
	require.Len(t, h.exec.Offered, 2)
	assert.Equal(t, allTen, h.exec.Offered[0])
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9}, h.exec.Offered[1])
}

func TestSpareBonus(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	h.spare([]int{0, 1, 2}, []int{3, 4, 5, 6, 7, 8, 9})
	status := h.throw(0, 1, 2)

	assert.Equal(t, model.FrameSpare, status.Frames[0].Type)
	assert.Equal(t, 13, status.Frames[0].Points)
	assert.Equal(t, 16, status.TotalPoints)

	status = h.throw(3, 4)
	assert.Equal(t, 13, status.Frames[0].Points, "a spare only takes the next throw")
	assert.Equal(t, 18, status.TotalPoints)
}

func TestStrikeBonus(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	status := h.strike()
	assert.Equal(t, 10, status.TotalPoints)

	status = h.throw(0, 4, 5)
	assert.Equal(t, 16, status.TotalPoints)

	status = h.throw(1, 2, 3)
	assert.Equal(t, 22, status.TotalPoints)
	assert.Equal(t, 16, status.Frames[0].Points)

	status = h.throw(6)
	assert.Equal(t, 16, status.Frames[0].Points, "a strike only takes the next two throws")
}

func TestTwoStrikesThenRegularFrame(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	assert.Equal(t, 10, h.strike().TotalPoints)
	assert.Equal(t, 30, h.strike().TotalPoints)
	assert.Equal(t, 42, h.throw(1, 5, 7, 9).TotalPoints)

	status := h.throw(0, 2, 3, 4, 8)
	assert.Equal(t, 52, status.TotalPoints)
	assert.Equal(t, []model.FrameStatus{
		{Type: model.FrameStrike, Points: 24},
		{Type: model.FrameStrike, Points: 19},
		{Type: model.FrameRegular, Points: 9},
		{Type: model.FrameRegular, Points: 0},
	}, status.Frames)
}

func TestTenStrikesEnterBonusPhase(t *testing.T) {
	h := newHarness(t, model.DefaultRules())

	for i := 0; i < 10; i++ {
		h.strike()
	}
	status := h.engine.GameStatus()
	assert.Equal(t, 2, status.BonusThrowsToFinish)
	assert.Equal(t, 270, status.TotalPoints)
	assert.Equal(t, 0, status.FramesToFinish)
	assert.False(t, status.IsGameFinished)

	status = h.strike()
	assert.Equal(t, 1, status.BonusThrowsToFinish)
	assert.Equal(t, 290, status.TotalPoints)

	status = h.strike()
	assert.Equal(t, 0, status.BonusThrowsToFinish)
	assert.Equal(t, 300, status.TotalPoints)
	assert.True(t, status.IsGameFinished)
	assert.Len(t, status.Frames, 10, "bonus throws never add regular frames")

	want := []model.ThrowResult{
		{FrameID: 10, KnockedPinIDs: allTen, ThrowNumber: 11},
		{FrameID: 11, KnockedPinIDs: allTen, ThrowNumber: 12},
	}
	if diff := cmp.Diff(want, status.BonusThrowsResults); diff != "" {
		t.Fatalf("bonus throws mismatch (-want +got):\n%s", diff)
	}
}

func TestBonusFrameContinuesUntilCleared(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 10; i++ {
		h.strike()
	}

	h.throw(0, 1, 2, 3)
	status := h.throw(4, 5)
	require.True(t, status.IsGameFinished)

	require.Len(t, h.exec.Offered, 12)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, h.exec.Offered[11], "second bonus throw reuses the open bonus rack")
	assert.Equal(t, 10, status.BonusThrowsResults[1].FrameID)
	// Frame 9: 10 + 4 + 2. Frame 8: 10 + 10 + 4.
	assert.Equal(t, 16, status.Frames[9].Points)
	assert.Equal(t, 24, status.Frames[8].Points)
	assert.Equal(t, 240+24+16, status.TotalPoints)
}

func TestFinalSpareGetsOneBonusThrow(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 9; i++ {
		h.throw()
		h.throw()
	}
	status := h.spare([]int{0, 1, 2, 3, 4}, []int{5, 6, 7, 8, 9})
	assert.Equal(t, 1, status.BonusThrowsToFinish)
	assert.False(t, status.IsGameFinished)

	status = h.throw(0, 1, 2, 3, 4)
	assert.True(t, status.IsGameFinished, "the bonus budget ends the game even on an open bonus frame")
	assert.Equal(t, 15, status.TotalPoints)
	assert.Equal(t, 0, status.BonusThrowsToFinish)
}

func TestFinalOpenFrameEndsGame(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 9; i++ {
		h.throw(0)
		h.throw(1)
	}
	h.throw(0)
	status := h.throw(1)

	assert.True(t, status.IsGameFinished)
	assert.Equal(t, 20, status.TotalPoints)
	assert.Equal(t, 0, status.BonusThrowsToFinish)
	assert.Empty(t, status.BonusThrowsResults)
}

func TestGutterGame(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	var status model.GameStatus
	for i := 0; i < 20; i++ {
		status = h.throw()
	}
	assert.True(t, status.IsGameFinished)
	assert.Equal(t, 0, status.TotalPoints)
}

func TestThrowAfterFinishLeavesStateUnchanged(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 12; i++ {
		h.strike()
	}
	before := h.engine.GameStatus()
	require.True(t, before.IsGameFinished)

	h.exec.Next = allTen
	for i := 0; i < 3; i++ {
		_, err := h.engine.ThrowBall()
		assert.ErrorIs(t, err, ErrGameAlreadyFinished)
		assert.True(t, IsTerminal(err))
	}
	if diff := cmp.Diff(before, h.engine.GameStatus()); diff != "" {
		t.Fatalf("state changed after rejected throw (-before +after):\n%s", diff)
	}
}

func TestInvalidKnockdownIsRejectedBeforeMutation(t *testing.T) {
	tests := []struct {
		name string
		pins []int
	}{
		{name: "pin already knocked", pins: []int{0}},
		{name: "pin outside rack", pins: []int{10}},
		{name: "negative pin", pins: []int{-1}},
		{name: "duplicate pin", pins: []int{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, model.DefaultRules())
			h.throw(0, 1)
			before := h.engine.GameStatus()

			h.exec.Next = tt.pins
			_, err := h.engine.ThrowBall()
			assert.ErrorIs(t, err, ErrInvalidKnockdown)
			assert.Equal(t, before, h.engine.GameStatus())

			status := h.throw(2)
			assert.Equal(t, 3, status.TotalPoints, "the frame still accepts its second throw")
		})
	}
}

func TestInvalidBonusKnockdownKeepsBudget(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 10; i++ {
		h.strike()
	}

	h.exec.Next = []int{42}
	_, err := h.engine.ThrowBall()
	require.ErrorIs(t, err, ErrInvalidKnockdown)
	assert.Equal(t, 2, h.engine.GameStatus().BonusThrowsToFinish)
}

func TestThrowBallWithOverridesExecutor(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	h.exec.Next = []int{0}

	status, err := h.engine.ThrowBallWith(&FakeExecutor{Next: []int{4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalPoints)
	assert.Empty(t, h.exec.Offered)
}

func TestGameStatusIsIdempotentAndDetached(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 11; i++ {
		h.strike()
	}

	first := h.engine.GameStatus()
	second := h.engine.GameStatus()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("snapshots differ (-first +second):\n%s", diff)
	}

	first.Frames[0].Points = -1
	first.BonusThrowsResults[0].KnockedPinIDs[0] = 99
	third := h.engine.GameStatus()
	assert.Equal(t, second, third, "mutating a snapshot must not reach the engine")
}

func TestStartNewGameResets(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 12; i++ {
		h.strike()
	}
	require.True(t, h.engine.GameStatus().IsGameFinished)

	h.engine.StartNewGame()
	status := h.engine.GameStatus()
	assert.False(t, status.IsGameFinished)
	assert.Equal(t, 0, status.TotalPoints)
	assert.Len(t, status.Frames, 1)
	assert.Empty(t, status.BonusThrowsResults)

	status = h.throw(0)
	assert.Equal(t, 1, status.TotalPoints)
}

func TestCustomRules(t *testing.T) {
	rules := model.Rules{Frames: 3, Pins: 5, BonusSpareThrows: 3, BonusStrikeThrows: 2}
	h := newHarness(t, rules)
	five := []int{0, 1, 2, 3, 4}

	h.throw(five...)
	h.spare([]int{0, 1}, []int{2, 3, 4})
	status := h.spare([]int{0}, []int{1, 2, 3, 4})
	assert.Equal(t, 3, status.BonusThrowsToFinish)
	assert.Equal(t, 0, status.FramesToFinish)

	h.throw(0, 1)
	h.throw(2)
	status = h.throw(0)
	assert.True(t, status.IsGameFinished)
	assert.Len(t, status.BonusThrowsResults, 3)
	// Three bonus credits per spare: the middle spare takes both throws of the
	// last frame plus the first bonus throw, the last spare takes all three
	// bonus throws.
	assert.Equal(t, []model.FrameStatus{
		{Type: model.FrameStrike, Points: 5 + 2 + 3},
		{Type: model.FrameSpare, Points: 5 + 1 + 4 + 2},
		{Type: model.FrameSpare, Points: 5 + 2 + 1 + 1},
	}, status.Frames)
	assert.Equal(t, sumFrames(status), status.TotalPoints)
}

func TestZeroBonusBudgetEndsGame(t *testing.T) {
	rules := model.Rules{Frames: 1, Pins: 10, BonusSpareThrows: 0, BonusStrikeThrows: 0}
	h := newHarness(t, rules)

	status := h.strike()
	assert.True(t, status.IsGameFinished)
	assert.Equal(t, 10, status.TotalPoints)
}

func TestNoActiveFrameGuard(t *testing.T) {
	h := newHarness(t, model.DefaultRules())
	for i := 0; i < 10; i++ {
		h.strike()
	}
	// Force the inconsistent state the guard protects against.
	h.engine.bonusThrowsRemaining = 0

	_, err := h.engine.ThrowBall()
	assert.ErrorIs(t, err, ErrNoActiveFrame)
	assert.True(t, IsTerminal(err))
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 200; game++ {
		exec := executorFunc(func(standing []int) []int {
			var out []int
			for _, id := range standing {
				if rng.Intn(2) == 1 {
					out = append(out, id)
				}
			}
			return out
		})
		engine, err := NewEngine(exec, model.DefaultRules())
		require.NoError(t, err)
		engine.StartNewGame()

		throws := 0
		for !engine.GameStatus().IsGameFinished {
			status, err := engine.ThrowBall()
			require.NoError(t, err)
			throws++
			require.LessOrEqual(t, throws, 21)

			assert.Equal(t, sumFrames(status), status.TotalPoints)
			for _, f := range status.Frames {
				assert.GreaterOrEqual(t, f.Points, 0)
				switch f.Type {
				case model.FrameRegular:
					assert.LessOrEqual(t, f.Points, 10)
				case model.FrameSpare:
					assert.LessOrEqual(t, f.Points, 20)
				case model.FrameStrike:
					assert.LessOrEqual(t, f.Points, 30)
				}
			}
		}
		assert.LessOrEqual(t, engine.GameStatus().TotalPoints, 300)
	}
}

type executorFunc func(standing []int) []int

func (f executorFunc) ExecuteThrow(standing []int) []int { return f(standing) }
