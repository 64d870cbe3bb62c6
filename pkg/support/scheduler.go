// Package support implements the business-support agent: topic sentiment,
// news digests, reminders and automated summary reports.
package support

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jordanlanch/bizradar/pkg/logger"
)

// Scheduler keeps reminders in an append-only log file, one line per
// reminder.
type Scheduler struct {
	path string
	log  logger.Logger
}

// NewScheduler creates a reminder scheduler writing to the given file.
func NewScheduler(path string, log logger.Logger) *Scheduler {
	return &Scheduler{path: path, log: log}
}

// AddReminder appends a reminder line and returns it. The due date accepts
// RFC 3339 or a bare YYYY-MM-DD date.
func (s *Scheduler) AddReminder(task, dueDate, notes string) (string, error) {
	due, err := parseDueDate(dueDate)
	if err != nil {
		return "", err
	}

	entry := fmt.Sprintf("%s | DUE: %s | TASK: %s | NOTES: %s\n",
		time.Now().Format(time.RFC3339), due.Format(time.RFC3339), task, notes)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed creating reminder log directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed opening reminder log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return "", fmt.Errorf("failed writing reminder: %w", err)
	}

	s.log.Info("reminder logged", "task", task, "due", due.Format(time.RFC3339))
	return strings.TrimRight(entry, "\n"), nil
}

// ViewReminders returns the last limit reminder lines, most recent first. A
// missing log file means no reminders, not an error.
func (s *Scheduler) ViewReminders(limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed reading reminder log: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	// newest last on disk, newest first for the caller
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or an RFC 3339 timestamp", raw)
}
