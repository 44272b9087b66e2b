package models

// QuizScore is a user's cumulative quiz record. BestScore is a high-water
// mark over every accuracy value ever computed for the user and never
// decreases. BestSessionScore/Total track the single best completed session.
type QuizScore struct {
	TotalAnswered    int     `json:"total_answered"`
	TotalCorrect     int     `json:"total_correct"`
	QuizzesCompleted int     `json:"quizzes_completed"`
	BestScore        float64 `json:"best_score"`
	BestSessionScore int     `json:"best_session_score"`
	BestSessionTotal int     `json:"best_session_total"`
	Username         string  `json:"username,omitempty"`
	FirstName        string  `json:"first_name,omitempty"`
}

// ScoresDoc is the persisted cumulative score document.
type ScoresDoc struct {
	Scores map[string]*QuizScore `json:"scores"`
}

// QuizSession is one in-progress quiz attempt. Transient: deleted when the
// session ends.
type QuizSession struct {
	QuestionIndex int       `json:"question_index"`
	QuestionData  *Question `json:"question_data"`
	Score         int       `json:"score"`
	Total         int       `json:"total"`
	Difficulty    string    `json:"difficulty,omitempty"`
	Category      string    `json:"category,omitempty"`
	StartedAt     string    `json:"started_at,omitempty"`
}

// SessionsDoc maps user id → active session. At most one per user.
type SessionsDoc map[string]*QuizSession

// HistoryEntry is one completed session in a user's history log.
type HistoryEntry struct {
	ID          string  `json:"id"`
	Score       int     `json:"score"`
	Total       int     `json:"total"`
	Accuracy    float64 `json:"accuracy"`
	Difficulty  string  `json:"difficulty,omitempty"`
	Category    string  `json:"category,omitempty"`
	CompletedAt string  `json:"completed_at"`
}

// HistoryDoc maps user id → completed sessions, oldest first.
type HistoryDoc map[string][]*HistoryEntry
