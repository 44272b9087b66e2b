package services

import (
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/store"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type ReminderServiceInterface interface {
	SetReminder(userID int64, hour, minute int) bool
	RemoveReminder(userID int64, hour, minute int) bool
	EnableReminders(userID int64) bool
	DisableReminders(userID int64) bool
	UserReminders(userID int64) *models.ReminderSettings
	UsersToRemind(hour, minute int) []int64
}

// ReminderService stores per-user "HH:MM" reminder times, dispatched by the
// scheduler tick that matches them.
type ReminderService struct {
	store  *store.FlatStore
	logger providers.Logger
	mu     sync.Mutex
}

func NewReminderService(flatStore *store.FlatStore, logger providers.Logger) ReminderServiceInterface {
	return &ReminderService{store: flatStore, logger: logger}
}

func formatReminderTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func (rs *ReminderService) load() models.RemindersDoc {
	doc := models.RemindersDoc{}
	rs.store.Load(store.DocReminders, &doc)
	return doc
}

func (rs *ReminderService) settings(doc models.RemindersDoc, userID int64, create bool) *models.ReminderSettings {
	userKey := strconv.FormatInt(userID, 10)
	settings := doc[userKey]
	if settings == nil && create {
		settings = &models.ReminderSettings{Times: []string{}}
		doc[userKey] = settings
	}
	return settings
}

// SetReminder adds a reminder time and enables reminders.
func (rs *ReminderService) SetReminder(userID int64, hour, minute int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	doc := rs.load()
	settings := rs.settings(doc, userID, true)

	t := formatReminderTime(hour, minute)
	found := false
	for _, existing := range settings.Times {
		if existing == t {
			found = true
			break
		}
	}
	if !found {
		settings.Times = append(settings.Times, t)
		sort.Strings(settings.Times)
	}
	settings.Enabled = true

	return rs.store.Save(store.DocReminders, doc)
}

// RemoveReminder deletes one time. Returns false when it was not set.
func (rs *ReminderService) RemoveReminder(userID int64, hour, minute int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	doc := rs.load()
	settings := rs.settings(doc, userID, false)
	if settings == nil {
		return false
	}

	t := formatReminderTime(hour, minute)
	for i, existing := range settings.Times {
		if existing == t {
			settings.Times = append(settings.Times[:i], settings.Times[i+1:]...)
			return rs.store.Save(store.DocReminders, doc)
		}
	}
	return false
}

func (rs *ReminderService) setEnabled(userID int64, enabled bool) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	doc := rs.load()
	settings := rs.settings(doc, userID, true)
	settings.Enabled = enabled
	return rs.store.Save(store.DocReminders, doc)
}

func (rs *ReminderService) EnableReminders(userID int64) bool {
	return rs.setEnabled(userID, true)
}

func (rs *ReminderService) DisableReminders(userID int64) bool {
	return rs.setEnabled(userID, false)
}

func (rs *ReminderService) UserReminders(userID int64) *models.ReminderSettings {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	settings := rs.settings(rs.load(), userID, false)
	if settings == nil {
		return &models.ReminderSettings{Times: []string{}}
	}
	return settings
}

// UsersToRemind lists users with an enabled reminder at exactly hour:minute.
func (rs *ReminderService) UsersToRemind(hour, minute int) []int64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	t := formatReminderTime(hour, minute)
	var users []int64
	for userKey, settings := range rs.load() {
		if settings == nil || !settings.Enabled {
			continue
		}
		for _, existing := range settings.Times {
			if existing == t {
				userID, err := strconv.ParseInt(userKey, 10, 64)
				if err != nil {
					rs.logger.Warnf(providers.TypeApp, "Skipping malformed reminder key %q", userKey)
					break
				}
				users = append(users, userID)
				break
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users
}

// ParseTimeString accepts "8", "8am", "14:30", "9:00pm" and similar. The
// am/pm suffix adjusts the hour into 24-hour form. Returns ok=false for
// anything unparseable or out of range; callers re-prompt the user.
func ParseTimeString(s string) (hour, minute int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "at ")

	pm := strings.HasSuffix(s, "pm")
	am := strings.HasSuffix(s, "am")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "pm"), "am")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, 0, false
	}

	hourPart, minutePart := s, "0"
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourPart, minutePart = s[:idx], s[idx+1:]
	}

	h, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, 0, false
	}

	if pm && h < 12 {
		h += 12
	}
	if am && h == 12 {
		h = 0
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
