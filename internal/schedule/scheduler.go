package schedule

import (
	"dbb/internal/bot"
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/schedule/interfaces"
	"dbb/internal/services"
	"dbb/internal/store"
	"dbb/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

const tickInterval = 60 * time.Second

// Scheduler polls once a minute and fires the daily delivery when the UTC
// clock matches the configured send time. The last fired slot is persisted,
// so a restart inside the send window cannot double-fire.
type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	daily     *bot.DailySender
	reminders services.ReminderServiceInterface
	flatStore *store.FlatStore
	backup    *store.BackupWriter
	cron      *gron.Cron
	opsMu     sync.Mutex
	state     models.SchedulerState
	ticks     atomic.Int64
	now       func() time.Time
}

func NewScheduler(
	config *structures.Config,
	logger providers.Logger,
	daily *bot.DailySender,
	reminders services.ReminderServiceInterface,
	flatStore *store.FlatStore,
	backup *store.BackupWriter,
) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		daily:     daily,
		reminders: reminders,
		flatStore: flatStore,
		backup:    backup,
		now:       time.Now,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(tickInterval), func() {
		s.Tick()
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduler started, daily send at %02d:%02d UTC", s.config.Daily.Hour, s.config.Daily.Minute)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Tick runs one poll iteration. Exported so a tick can be driven directly
// without waiting on the cron clock.
func (s *Scheduler) Tick() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	now := s.now().UTC()
	tick := s.ticks.Inc()

	if now.Minute() == 0 && tick > 1 {
		s.logger.Infof(providers.TypeApp, "Scheduler heartbeat: tick %d, daily send at %02d:%02d UTC", tick, s.config.Daily.Hour, s.config.Daily.Minute)
	}

	s.dispatchReminders(now)

	if now.Hour() != s.config.Daily.Hour || now.Minute() != s.config.Daily.Minute {
		return
	}

	date := now.Format("2006-01-02")
	minute := now.Hour()*60 + now.Minute()
	if s.state.LastFiredDate == date && s.state.LastFiredMinute == minute {
		s.logger.Debugf(providers.TypeApp, "Daily send already fired for %s, skipping", date)
		return
	}

	sent, failed := s.daily.SendToAll()
	s.logger.Infof(providers.TypeApp, "Daily delivery for %s done: %d sent, %d failed", date, sent, failed)

	s.state.LastFiredDate = date
	s.state.LastFiredMinute = minute
	s.persistLocked()

	if err := s.backup.Backup(date); err != nil {
		s.logger.Errorf(providers.TypeApp, "Backup after daily send failed: %s", err)
	}
}

func (s *Scheduler) dispatchReminders(now time.Time) {
	users := s.reminders.UsersToRemind(now.Hour(), now.Minute())
	for _, userID := range users {
		if err := s.daily.SendReminder(userID); err != nil {
			s.logger.Errorf(providers.TypeApp, "Reminder to user %d failed: %s", userID, err)
		}
	}
}

// Restore loads the last fired slot from the store.
func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	state := models.SchedulerState{}
	s.flatStore.Load(store.DocSchedulerState, &state)
	s.state = state
	if state.LastFiredDate != "" {
		s.logger.Infof(providers.TypeApp, "Restored scheduler state: last fired %s", state.LastFiredDate)
	}
	return nil
}

// Persist writes the last fired slot to the store.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.persistLocked()
}

func (s *Scheduler) persistLocked() error {
	if !s.flatStore.Save(store.DocSchedulerState, &s.state) {
		s.logger.Errorf(providers.TypeApp, "Failed to persist scheduler state")
	}
	return nil
}
