package repository

import "bowling_backend/internal/model"

type StatsRepository interface {
	RecordGame(rec model.GameRecord)
	Stats() model.Stats
}
