package rotation

import (
	"time"

	"github.com/mmynk/roommates/internal/models"
)

const day = 24 * time.Hour

// Scheduler moves a chore's active window to its next cycle.
// Each recurrence has its own implementation.
type Scheduler interface {
	Shift(start, end time.Time) (time.Time, time.Time)
}

// FixedScheduler shifts both bounds by the same number of days.
type FixedScheduler struct {
	Days int
}

// Shift adds Days×24h to both bounds, so the window width is preserved.
func (s FixedScheduler) Shift(start, end time.Time) (time.Time, time.Time) {
	step := time.Duration(s.Days) * day
	return start.Add(step), end.Add(step)
}

// MonthlyScheduler keeps windows aligned to month lengths rather than a
// fixed 30-day step.
//
// Each bound advances by the length of the calendar month containing that
// bound plus two days, looked up independently. Across months of different
// lengths the window width can drift by a few days between cycles; stored
// chores depend on this exact arithmetic, so it is kept as is.
type MonthlyScheduler struct{}

// Shift advances start and end independently by their month lengths.
func (MonthlyScheduler) Shift(start, end time.Time) (time.Time, time.Time) {
	return start.Add(time.Duration(daysInMonth(start.Add(2*day))) * day),
		end.Add(time.Duration(daysInMonth(end.Add(2*day))) * day)
}

// daysInMonth returns the number of days in t's calendar month (UTC).
func daysInMonth(t time.Time) int {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// schedulers maps recurrences to their window arithmetic.
// RecurrenceNone has no entry: non-recurring chores never advance.
var schedulers = map[models.Recurrence]Scheduler{
	models.RecurrenceDaily:   FixedScheduler{Days: 1},
	models.RecurrenceWeekly:  FixedScheduler{Days: 7},
	models.RecurrenceMonthly: MonthlyScheduler{},
}

// SchedulerFor returns the scheduler for a recurrence.
// ok is false for RecurrenceNone and unknown values.
func SchedulerFor(r models.Recurrence) (Scheduler, bool) {
	s, ok := schedulers[r]
	return s, ok
}
