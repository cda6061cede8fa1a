package converter

import (
	"bowling_backend/internal/api/dto/game"
	"bowling_backend/internal/model"
	"time"

	"github.com/google/uuid"
)

func ToThrowRequest(req game.ThrowRequest) model.ThrowRequest {
	return model.ThrowRequest{
		KnockedPins: req.KnockedPins,
	}
}

func ToGameResponse(g model.Game) game.GameResponse {
	return game.GameResponse{
		GameID:              g.ID.String(),
		StartedAt:           g.StartedAt.UTC().Format(time.RFC3339),
		Frames:              toFrames(g.Status.Frames),
		TotalPoints:         g.Status.TotalPoints,
		IsGameFinished:      g.Status.IsGameFinished,
		BonusThrowsResults:  toThrowResults(g.Status.BonusThrowsResults),
		BonusThrowsToFinish: g.Status.BonusThrowsToFinish,
		FramesToFinish:      g.Status.FramesToFinish,
	}
}

func toFrames(frames []model.FrameStatus) []game.Frame {
	result := make([]game.Frame, len(frames))
	for i, f := range frames {
		result[i] = game.Frame{
			Type:   string(f.Type),
			Points: f.Points,
		}
	}
	return result
}

func toThrowResults(throws []model.ThrowResult) []game.ThrowResult {
	result := make([]game.ThrowResult, len(throws))
	for i, t := range throws {
		pins := make([]int, len(t.KnockedPinIDs))
		copy(pins, t.KnockedPinIDs)
		result[i] = game.ThrowResult{
			FrameID:       t.FrameID,
			KnockedPinIDs: pins,
			ThrowNumber:   t.ThrowNumber,
		}
	}
	return result
}

func ToRulesResponse(r model.Rules) game.RulesResponse {
	return game.RulesResponse{
		Frames:            r.Frames,
		Pins:              r.Pins,
		BonusSpareThrows:  r.BonusSpareThrows,
		BonusStrikeThrows: r.BonusStrikeThrows,
	}
}

func ToStatsResponse(s model.Stats) game.StatsResponse {
	res := game.StatsResponse{
		GamesPlayed:   s.GamesPlayed,
		BestScore:     s.BestScore,
		AverageScore:  s.AverageScore,
		WindowAverage: s.WindowAverage,
		WindowSize:    s.WindowSize,
		TotalStrikes:  s.TotalStrikes,
		TotalSpares:   s.TotalSpares,
		PerfectGames:  s.PerfectGames,
	}
	if s.LastGameID != uuid.Nil {
		res.LastGameID = s.LastGameID.String()
	}
	return res
}
