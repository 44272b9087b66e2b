package models

// DailyCompletion records one user's result for one daily quiz date.
// First completion wins; later attempts on the same date are rejected.
type DailyCompletion struct {
	Score       int     `json:"score"`
	Total       int     `json:"total"`
	Accuracy    float64 `json:"accuracy"`
	CompletedAt string  `json:"completed_at"`
}

// DailyQuizDoc is the persisted daily quiz document. DailyQuizzes maps
// ISO date → the question fixed for that date; Completions maps
// user id → date → result.
type DailyQuizDoc struct {
	DailyQuizzes map[string]*Question                   `json:"daily_quizzes"`
	Completions  map[string]map[string]*DailyCompletion `json:"completions"`
}

// DailyQuizStats is the read-side aggregate for one user.
type DailyQuizStats struct {
	TotalCompleted int     `json:"total_completed"`
	TotalCorrect   int     `json:"total_correct"`
	TotalAnswered  int     `json:"total_answered"`
	BestScore      float64 `json:"best_score"`
	CurrentStreak  int     `json:"current_streak"`
}

// LeaderboardEntry is one row of the daily quiz leaderboard.
type LeaderboardEntry struct {
	UserID         string  `json:"user_id"`
	TotalCompleted int     `json:"total_completed"`
	AvgAccuracy    float64 `json:"avg_accuracy"`
	TotalCorrect   int     `json:"total_correct"`
}
