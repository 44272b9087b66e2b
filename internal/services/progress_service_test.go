package services

import (
	"dbb/internal/providers"
	"dbb/internal/store"
	"dbb/internal/structures"
	"dbb/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *store.FlatStore {
	metrics := providers.NewMetricsProvider(&structures.Config{})
	return store.NewFlatStore(store.NewMemoryBacking(), &testutil.MockLogger{}, metrics)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestProgress(now time.Time) *ProgressService {
	return &ProgressService{
		store:  newTestStore(),
		logger: &testutil.MockLogger{},
		now:    fixedClock(now),
	}
}

func TestProgressService_MarkDayCompleted_Idempotent(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	require.True(t, ps.MarkDayCompleted(1, 5, 2025))
	require.True(t, ps.MarkDayCompleted(1, 5, 2025))

	p := ps.UserProgress(1, 2025)
	assert.Equal(t, []int{5}, p.CompletedDays)
	assert.Equal(t, 1, p.TotalCompleted)
}

func TestProgressService_MarkDayCompleted_KeepsDaysSorted(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	for _, day := range []int{7, 3, 5, 1} {
		require.True(t, ps.MarkDayCompleted(1, day, 2025))
	}

	p := ps.UserProgress(1, 2025)
	assert.Equal(t, []int{1, 3, 5, 7}, p.CompletedDays)
	require.NotNil(t, p.LastCompleted)
	assert.Equal(t, 1, *p.LastCompleted, "last completed is the last marked, not the highest")
}

func TestProgressService_UserProgress_Percentage(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 1, 2025)
	ps.MarkDayCompleted(1, 2, 2025)
	ps.MarkDayCompleted(1, 3, 2025)

	p := ps.UserProgress(1, 2025)
	assert.InDelta(t, 3.0/365.0*100, p.CompletionPercentage, 0.0001)
}

func TestProgressService_UserProgress_LeapYear(t *testing.T) {
	ps := newTestProgress(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 366, 2024)

	p := ps.UserProgress(1, 2024)
	assert.InDelta(t, 1.0/366.0*100, p.CompletionPercentage, 0.0001)
}

func TestProgressService_CurrentStreak_FromToday(t *testing.T) {
	// 2025-01-10 is day 10
	ps := newTestProgress(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	for day := 8; day <= 10; day++ {
		ps.MarkDayCompleted(1, day, 2025)
	}
	assert.Equal(t, 3, ps.CurrentStreak(1, 2025))
}

func TestProgressService_CurrentStreak_TodayNotYetDone(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	for day := 7; day <= 9; day++ {
		ps.MarkDayCompleted(1, day, 2025)
	}
	// today (day 10) missing does not break the streak built before it
	assert.Equal(t, 3, ps.CurrentStreak(1, 2025))
}

func TestProgressService_CurrentStreak_BrokenByGap(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 10, 2025)
	ps.MarkDayCompleted(1, 8, 2025)
	assert.Equal(t, 1, ps.CurrentStreak(1, 2025))
}

func TestProgressService_CurrentStreak_NoData(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, ps.CurrentStreak(99, 2025))
}

func TestProgressService_CurrentStreak_StopsAtDayOne(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 1, 2025)
	ps.MarkDayCompleted(1, 2, 2025)
	assert.Equal(t, 2, ps.CurrentStreak(1, 2025))
}

func TestProgressService_LongestStreak(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, day := range []int{1, 2, 3, 10, 11, 12, 13, 14, 20} {
		ps.MarkDayCompleted(1, day, 2025)
	}
	assert.Equal(t, 5, ps.LongestStreak(1, 2025))
}

func TestProgressService_IsDayCompleted(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 42, 2025)
	assert.True(t, ps.IsDayCompleted(1, 42, 2025))
	assert.False(t, ps.IsDayCompleted(1, 41, 2025))
	assert.False(t, ps.IsDayCompleted(2, 42, 2025))
}

func TestProgressService_YearZeroMeansCurrentYear(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 5, 0)
	assert.True(t, ps.IsDayCompleted(1, 5, 2025))

	p := ps.UserProgress(1, 0)
	assert.Equal(t, 1, p.TotalCompleted)
}

func TestProgressService_YearsAreIsolated(t *testing.T) {
	ps := newTestProgress(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	ps.MarkDayCompleted(1, 100, 2024)
	ps.MarkDayCompleted(1, 200, 2025)

	assert.Equal(t, []int{100}, ps.UserProgress(1, 2024).CompletedDays)
	assert.Equal(t, []int{200}, ps.UserProgress(1, 2025).CompletedDays)
}
