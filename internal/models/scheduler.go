package models

// SchedulerState survives restarts so a process bounce inside the send
// window cannot double-fire the daily delivery.
type SchedulerState struct {
	LastFiredDate   string `json:"last_fired_date"`
	LastFiredMinute int    `json:"last_fired_minute"`
}
