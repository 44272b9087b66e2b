package store

import "fmt"

// Document names. Each maps to one JSON file in the storage directory.
const (
	DocSubscribers    = "subscribed_users"
	DocProgress       = "reading_progress"
	DocScores         = "quiz_scores"
	DocActiveQuizzes  = "active_quizzes"
	DocHistory        = "quiz_history"
	DocDailyQuiz      = "daily_quiz"
	DocAchievements   = "achievements"
	DocReminders      = "reminders"
	DocSchedulerState = "scheduler_state"
)

// DocNames lists every known document, used by Validate and Backup.
var DocNames = []string{
	DocSubscribers,
	DocProgress,
	DocScores,
	DocActiveQuizzes,
	DocHistory,
	DocDailyQuiz,
	DocAchievements,
	DocReminders,
	DocSchedulerState,
}

// Backing is the raw byte-level persistence behind the flat store.
// Read reports ok=false with a nil error when the document does not exist.
type Backing interface {
	Read(name string) (data []byte, ok bool, err error)
	Write(name string, data []byte) error
	Validate() error
}

// DirectoryError reports the deployment hazard where a document path exists
// as a directory (typically a volume-mount misconfiguration). The store
// degrades to empty-document behavior instead of crashing.
type DirectoryError struct {
	Path string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("storage path is a directory, not a file: %s", e.Path)
}
