package services

import (
	"dbb/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReminders() *ReminderService {
	return &ReminderService{store: newTestStore(), logger: &testutil.MockLogger{}}
}

func TestReminderService_SetAndList(t *testing.T) {
	rs := newTestReminders()

	require.True(t, rs.SetReminder(1, 7, 30))
	require.True(t, rs.SetReminder(1, 21, 0))
	require.True(t, rs.SetReminder(1, 7, 30), "duplicate time is a no-op")

	settings := rs.UserReminders(1)
	assert.True(t, settings.Enabled)
	assert.Equal(t, []string{"07:30", "21:00"}, settings.Times)
}

func TestReminderService_Remove(t *testing.T) {
	rs := newTestReminders()

	require.True(t, rs.SetReminder(1, 7, 30))
	require.True(t, rs.RemoveReminder(1, 7, 30))
	assert.False(t, rs.RemoveReminder(1, 7, 30), "already removed")
	assert.False(t, rs.RemoveReminder(2, 7, 30), "unknown user")

	assert.Empty(t, rs.UserReminders(1).Times)
}

func TestReminderService_EnableDisable(t *testing.T) {
	rs := newTestReminders()

	require.True(t, rs.SetReminder(1, 8, 0))
	require.True(t, rs.DisableReminders(1))
	assert.False(t, rs.UserReminders(1).Enabled)
	assert.Equal(t, []string{"08:00"}, rs.UserReminders(1).Times, "times survive disable")

	require.True(t, rs.EnableReminders(1))
	assert.True(t, rs.UserReminders(1).Enabled)
}

func TestReminderService_UsersToRemind(t *testing.T) {
	rs := newTestReminders()

	require.True(t, rs.SetReminder(3, 8, 0))
	require.True(t, rs.SetReminder(1, 8, 0))
	require.True(t, rs.SetReminder(2, 9, 0))
	require.True(t, rs.SetReminder(4, 8, 0))
	require.True(t, rs.DisableReminders(4))

	assert.Equal(t, []int64{1, 3}, rs.UsersToRemind(8, 0))
	assert.Equal(t, []int64{2}, rs.UsersToRemind(9, 0))
	assert.Empty(t, rs.UsersToRemind(10, 0))
}

func TestParseTimeString(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"8", 8, 0, true},
		{"08:15", 8, 15, true},
		{"8am", 8, 0, true},
		{"8pm", 20, 0, true},
		{"12am", 0, 0, true},
		{"12pm", 12, 0, true},
		{"9:00pm", 21, 0, true},
		{"14:30", 14, 30, true},
		{" at 7:45 ", 7, 45, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"-1", 0, 0, false},
		{"abc", 0, 0, false},
		{"", 0, 0, false},
		{"pm", 0, 0, false},
	}

	for _, tc := range cases {
		hour, minute, ok := ParseTimeString(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.hour, hour, "input %q", tc.in)
			assert.Equal(t, tc.minute, minute, "input %q", tc.in)
		}
	}
}
