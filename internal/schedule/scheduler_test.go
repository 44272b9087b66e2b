package schedule

import (
	"dbb/internal/bot"
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/services"
	"dbb/internal/store"
	"dbb/internal/structures"
	"dbb/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedTestConfig() *structures.Config {
	return &structures.Config{
		Daily: structures.DailyConfig{Hour: 8, Minute: 0},
	}
}

type schedFixture struct {
	scheduler *Scheduler
	sender    *testutil.MockSender
	flatStore *store.FlatStore
	reminders services.ReminderServiceInterface
}

func newSchedFixture(t *testing.T, now time.Time) *schedFixture {
	t.Helper()
	conf := schedTestConfig()
	logger := &testutil.MockLogger{}
	metrics := providers.NewMetricsProvider(&structures.Config{})
	flatStore := store.NewFlatStore(store.NewMemoryBacking(), logger, metrics)

	subscribers := services.NewSubscriberService(flatStore, logger)
	require.True(t, subscribers.Add(100))
	require.True(t, subscribers.Add(200))

	sender := &testutil.MockSender{}
	daily := bot.NewDailySender(subscribers, sender, metrics, logger)
	reminders := services.NewReminderService(flatStore, logger)

	comp, err := store.NewZstdCompressor()
	require.NoError(t, err)
	backup := store.NewBackupWriter(store.NewMemoryBacking(), comp, "", logger)
	t.Cleanup(backup.Close)

	s := &Scheduler{
		config:    conf,
		logger:    logger,
		daily:     daily,
		reminders: reminders,
		flatStore: flatStore,
		backup:    backup,
		now:       func() time.Time { return now },
	}
	return &schedFixture{scheduler: s, sender: sender, flatStore: flatStore, reminders: reminders}
}

func TestScheduler_Tick_FiresAtConfiguredMinute(t *testing.T) {
	f := newSchedFixture(t, time.Date(2025, 7, 1, 8, 0, 30, 0, time.UTC))

	f.scheduler.Tick()
	assert.Len(t, f.sender.Sent, 2)
}

func TestScheduler_Tick_OutsideWindowDoesNothing(t *testing.T) {
	f := newSchedFixture(t, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))

	f.scheduler.Tick()
	assert.Empty(t, f.sender.Sent)
}

func TestScheduler_Tick_FiresOncePerDate(t *testing.T) {
	f := newSchedFixture(t, time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))

	f.scheduler.Tick()
	f.scheduler.Tick()
	assert.Len(t, f.sender.Sent, 2, "second tick in the same window is suppressed")

	// next day fires again
	f.scheduler.now = func() time.Time { return time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC) }
	f.scheduler.Tick()
	assert.Len(t, f.sender.Sent, 4)
}

func TestScheduler_RestartInsideWindowDoesNotDoubleFire(t *testing.T) {
	now := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	f := newSchedFixture(t, now)

	f.scheduler.Tick()
	require.Len(t, f.sender.Sent, 2)

	// simulate a process bounce sharing the same store
	restarted := &Scheduler{
		config:    f.scheduler.config,
		logger:    &testutil.MockLogger{},
		daily:     f.scheduler.daily,
		reminders: f.reminders,
		flatStore: f.flatStore,
		backup:    f.scheduler.backup,
		now:       func() time.Time { return now.Add(20 * time.Second) },
	}
	require.NoError(t, restarted.Restore())

	restarted.Tick()
	assert.Len(t, f.sender.Sent, 2, "restored state suppresses the re-fire")
}

func TestScheduler_PersistedState(t *testing.T) {
	f := newSchedFixture(t, time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC))

	f.scheduler.Tick()

	state := models.SchedulerState{}
	require.True(t, f.flatStore.Load(store.DocSchedulerState, &state))
	assert.Equal(t, "2025-07-01", state.LastFiredDate)
	assert.Equal(t, 8*60, state.LastFiredMinute)
}

func TestScheduler_Tick_DispatchesReminders(t *testing.T) {
	f := newSchedFixture(t, time.Date(2025, 7, 1, 19, 30, 0, 0, time.UTC))

	require.True(t, f.reminders.SetReminder(100, 19, 30))
	require.True(t, f.reminders.SetReminder(200, 6, 0))

	f.scheduler.Tick()

	assert.Len(t, f.sender.SentTo(100), 1)
	assert.Empty(t, f.sender.SentTo(200))
	assert.Contains(t, f.sender.SentTo(100)[0].Text, "Reading Reminder")
}

func TestScheduler_Restore_EmptyStore(t *testing.T) {
	f := newSchedFixture(t, time.Date(2025, 7, 1, 7, 0, 0, 0, time.UTC))
	require.NoError(t, f.scheduler.Restore())
	assert.Empty(t, f.scheduler.state.LastFiredDate)
}
