package models

// ReminderSettings holds one user's reminder configuration. Times are
// "HH:MM" strings, kept sorted and unique.
type ReminderSettings struct {
	Enabled bool     `json:"enabled"`
	Times   []string `json:"times"`
}

// RemindersDoc maps user id → reminder settings.
type RemindersDoc map[string]*ReminderSettings
