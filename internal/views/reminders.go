package views

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/taskboard/internal/project"
)

// DefaultReminderWindow is the number of days ahead a reminder counts as soon.
const DefaultReminderWindow = 7

// ReminderView is an upcoming reminder with its urgency flag.
type ReminderView struct {
	project.Reminder
	// Soon is set when the reminder falls within the window.
	Soon bool `json:"soon"`
	// DaysLeft counts days from today to the reminder date.
	DaysLeft int `json:"daysLeft"`
}

// When describes how far away the reminder is: "today", "tomorrow" or
// "in N days".
func (r ReminderView) When() string {
	switch r.DaysLeft {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", r.DaysLeft)
	}
}

// ReminderPartition splits a project's reminders around today.
type ReminderPartition struct {
	Upcoming  []ReminderView `json:"upcoming"`
	PastCount int            `json:"pastCount"`
}

// PartitionReminders returns the reminders dated today or later in
// ascending date order, and the number dated before today. Reminders on the
// same date keep their stored order. A reminder is Soon when its date is
// within windowDays of today, inclusive.
func PartitionReminders(p project.Project, today project.Date, windowDays int) ReminderPartition {
	sorted := slices.Clone(p.Reminders)
	slices.SortStableFunc(sorted, func(a, b project.Reminder) int {
		return a.Date.Time().Compare(b.Date.Time())
	})

	out := ReminderPartition{Upcoming: []ReminderView{}}
	for _, r := range sorted {
		if r.Date.Before(today) {
			out.PastCount++
			continue
		}
		days := today.DaysUntil(r.Date)
		out.Upcoming = append(out.Upcoming, ReminderView{
			Reminder: r,
			Soon:     days <= windowDays,
			DaysLeft: days,
		})
	}
	return out
}

// IsSoon reports whether date falls within [today, today+windowDays].
func IsSoon(date, today project.Date, windowDays int) bool {
	if date.Before(today) {
		return false
	}
	return today.DaysUntil(date) <= windowDays
}
