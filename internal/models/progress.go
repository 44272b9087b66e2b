package models

// YearProgress holds one user's completed reading days for a single year.
// CompletedDays is kept sorted and free of duplicates; TotalCompleted always
// equals len(CompletedDays).
type YearProgress struct {
	CompletedDays  []int `json:"completed_days"`
	LastCompleted  *int  `json:"last_completed"`
	TotalCompleted int   `json:"total_completed"`
}

// ProgressDoc is the persisted reading progress document,
// keyed user id → year.
type ProgressDoc struct {
	Progress map[string]map[string]*YearProgress `json:"progress"`
}

// ProgressSummary is the read-side view of a user's year.
type ProgressSummary struct {
	CompletedDays        []int   `json:"completed_days"`
	LastCompleted        *int    `json:"last_completed"`
	TotalCompleted       int     `json:"total_completed"`
	CompletionPercentage float64 `json:"completion_percentage"`
}
