// Package testutil provides fixtures shared by taskboard tests.
package testutil

import (
	"testing"
	"time"

	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/seed"
	"github.com/Iron-Ham/taskboard/internal/store"
)

// TodayDate is the date tests treat as today. The sample reminders on
// 2026-01-20 and 2026-01-25 fall inside the default seven day window and
// the one on 2026-02-15 falls outside it.
const TodayDate = "2026-01-15"

// Clock returns a clock frozen on TodayDate.
func Clock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.January, 15, 9, 30, 0, 0, time.Local)
	}
}

// Today returns TodayDate as a calendar date.
func Today() project.Date {
	return project.MustParseDate(TodayDate)
}

// SeedStore returns a fresh store over the built-in sample dataset.
func SeedStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	ds := seed.Default()
	if len(ds.Projects) == 0 {
		t.Fatal("built-in dataset has no projects")
	}
	return store.New(ds.Projects, opts...)
}
