package support

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/bizradar/pkg/logger"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reminders.log")
	return NewScheduler(path, logger.Default())
}

func TestAddReminder_LineFormat(t *testing.T) {
	s := newTestScheduler(t)

	entry, err := s.AddReminder("Call Acme", "2026-09-15", "follow up on proposal")
	require.NoError(t, err)

	parts := strings.Split(entry, " | ")
	require.Len(t, parts, 4)
	assert.True(t, strings.HasPrefix(parts[1], "DUE: 2026-09-15T00:00:00"))
	assert.Equal(t, "TASK: Call Acme", parts[2])
	assert.Equal(t, "NOTES: follow up on proposal", parts[3])
}

func TestAddReminder_DateFormats(t *testing.T) {
	s := newTestScheduler(t)

	for _, due := range []string{
		"2026-09-15T10:30:00Z",
		"2026-09-15T10:30:00",
		"2026-09-15",
	} {
		_, err := s.AddReminder("task", due, "")
		assert.NoError(t, err, "due date %q", due)
	}
}

func TestAddReminder_InvalidDate(t *testing.T) {
	s := newTestScheduler(t)

	_, err := s.AddReminder("task", "next tuesday", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid due date")

	// Nothing gets written on a parse failure.
	reminders, err := s.ViewReminders(10)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestViewReminders_MissingFile(t *testing.T) {
	s := newTestScheduler(t)

	reminders, err := s.ViewReminders(10)
	require.NoError(t, err)
	assert.Nil(t, reminders)
}

func TestViewReminders_LastNReversed(t *testing.T) {
	s := newTestScheduler(t)

	for _, task := range []string{"first", "second", "third", "fourth"} {
		_, err := s.AddReminder(task, "2026-09-15", "")
		require.NoError(t, err)
	}

	reminders, err := s.ViewReminders(3)
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	assert.Contains(t, reminders[0], "TASK: fourth")
	assert.Contains(t, reminders[1], "TASK: third")
	assert.Contains(t, reminders[2], "TASK: second")
}

func TestViewReminders_DefaultLimit(t *testing.T) {
	s := newTestScheduler(t)

	for i := 0; i < 12; i++ {
		_, err := s.AddReminder("task", "2026-09-15", "")
		require.NoError(t, err)
	}

	reminders, err := s.ViewReminders(0)
	require.NoError(t, err)
	assert.Len(t, reminders, 10)
}
