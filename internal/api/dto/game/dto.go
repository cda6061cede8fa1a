package game

type ThrowRequest struct {
	KnockedPins []int `json:"knocked_pins"` // Optional; omitted means a random throw
}

type GameResponse struct {
	GameID              string        `json:"game_id"`
	StartedAt           string        `json:"started_at"` // RFC 3339
	Frames              []Frame       `json:"frames"`
	TotalPoints         int           `json:"total_points"`
	IsGameFinished      bool          `json:"is_game_finished"`
	BonusThrowsResults  []ThrowResult `json:"bonus_throws_results"`
	BonusThrowsToFinish int           `json:"bonus_throws_to_finish"`
	FramesToFinish      int           `json:"frames_to_finish"`
}

type Frame struct {
	Type   string `json:"type"` // regular, spare, strike
	Points int    `json:"points"`
}

type ThrowResult struct {
	FrameID       int   `json:"frame_id"`
	KnockedPinIDs []int `json:"knocked_pin_ids"`
	ThrowNumber   int   `json:"throw_number"`
}

type RulesResponse struct {
	Frames            int `json:"frames"`
	Pins              int `json:"pins"`
	BonusSpareThrows  int `json:"bonus_spare_throws"`
	BonusStrikeThrows int `json:"bonus_strike_throws"`
}

type StatsResponse struct {
	GamesPlayed   int     `json:"games_played"`
	BestScore     int     `json:"best_score"`
	AverageScore  float64 `json:"average_score"`
	WindowAverage float64 `json:"window_average"`
	WindowSize    int     `json:"window_size"`
	TotalStrikes  int     `json:"total_strikes"`
	TotalSpares   int     `json:"total_spares"`
	PerfectGames  int     `json:"perfect_games"`
	LastGameID    string  `json:"last_game_id,omitempty"`
}
