package models

// UserAchievements is one user's unlocked badge set. Unlocked keeps append
// order; UnlockedAt holds the first-unlock timestamp per id and is never
// overwritten.
type UserAchievements struct {
	Unlocked   []string          `json:"unlocked"`
	UnlockedAt map[string]string `json:"unlocked_at"`
}

// AchievementsDoc maps user id → achievements.
type AchievementsDoc map[string]*UserAchievements

// StatsSnapshot is the fan-in of tracker aggregates that achievement
// conditions are evaluated against.
type StatsSnapshot struct {
	ReadingCompleted   int
	CurrentStreak      int
	QuizCorrect        int
	BestQuizScore      float64
	DailyQuizCompleted int
}
