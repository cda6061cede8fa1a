package stats_repo

import (
	"bowling_backend/internal/model"
	repoModel "bowling_backend/internal/repository/stats_repo/model"
	"sync"
)

// DefaultWindowSize is how many recent games the rolling average covers.
const DefaultWindowSize = 50

// StatsRepo keeps game statistics in memory. Nothing survives a restart.
type StatsRepo struct {
	mtx         sync.RWMutex
	state       repoModel.StatsState
	perfectGame int
}

// NewStatsRepository creates an empty repository. A non-positive window size
// falls back to DefaultWindowSize. perfectScore is the score counted as a
// perfect game for the configured rules.
func NewStatsRepository(windowSize, perfectScore int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.StatsState{
			GameWindow: make([]repoModel.GameResult, 0, windowSize),
			WindowSize: windowSize,
		},
		perfectGame: perfectScore,
	}
}

// RecordGame adds a finished game to the aggregate and the rolling window.
func (r *StatsRepo) RecordGame(rec model.GameRecord) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.GamesPlayed++
	r.state.TotalScore += rec.Score
	r.state.TotalStrikes += rec.Strikes
	r.state.TotalSpares += rec.Spares
	if rec.Score > r.state.BestScore {
		r.state.BestScore = rec.Score
	}
	if r.perfectGame > 0 && rec.Score >= r.perfectGame {
		r.state.PerfectGames++
	}
	r.state.LastGameID = rec.ID

	r.state.GameWindow = append(r.state.GameWindow, repoModel.GameResult{
		ID:         rec.ID,
		Score:      rec.Score,
		FinishedAt: rec.FinishedAt,
	})
	r.state.WindowScore += rec.Score

	// Keep the window bounded
	if len(r.state.GameWindow) > r.state.WindowSize {
		r.state.WindowScore -= r.state.GameWindow[0].Score
		r.state.GameWindow = r.state.GameWindow[1:]
	}
}

// Stats returns the current aggregate.
func (r *StatsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s := model.Stats{
		GamesPlayed:  r.state.GamesPlayed,
		BestScore:    r.state.BestScore,
		WindowSize:   r.state.WindowSize,
		TotalStrikes: r.state.TotalStrikes,
		TotalSpares:  r.state.TotalSpares,
		PerfectGames: r.state.PerfectGames,
		LastGameID:   r.state.LastGameID,
	}
	if r.state.GamesPlayed > 0 {
		s.AverageScore = float64(r.state.TotalScore) / float64(r.state.GamesPlayed)
	}
	if n := len(r.state.GameWindow); n > 0 {
		s.WindowAverage = float64(r.state.WindowScore) / float64(n)
	}
	return s
}
