// Package calendar resolves which calendar days are instructional days for a
// given timetable and holiday set. Everything here is a pure function of its
// inputs; no I/O, no mutation.
package calendar

import (
	"iter"
	"time"

	"github.com/Arnav-791/Attendence-calculator/internal/model"
)

// Resolver answers instructional-day questions against one consistent view of
// the timetable and holiday set.
type Resolver struct {
	timetable map[model.Weekday][]model.TimetableEntry
	holidays  map[string]struct{}
}

// New builds a Resolver over the given timetable and holiday dates.
func New(timetable map[model.Weekday][]model.TimetableEntry, holidays []string) *Resolver {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h] = struct{}{}
	}
	return &Resolver{timetable: timetable, holidays: set}
}

// DateOf truncates a timestamp to its calendar date (midnight, same location).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Days yields every calendar date in [from, to] inclusive. The sequence is
// finite and restartable; time-of-day on the bounds is ignored.
func Days(from, to time.Time) iter.Seq[time.Time] {
	first, last := DateOf(from), DateOf(to)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// IsInstructionalDay reports whether classes happen on the date: its weekday
// appears in the timetable and the date is not a holiday.
func (r *Resolver) IsInstructionalDay(date time.Time) bool {
	if _, ok := r.timetable[model.WeekdayOf(date)]; !ok {
		return false
	}
	_, holiday := r.holidays[DateOf(date).Format(model.DateLayout)]
	return !holiday
}

// OccurrencesOn counts how many timetable slots reference the subject on the
// date's weekday. A lab subject occupies two slots and so counts twice.
// Returns 0 when the date is not an instructional day.
func (r *Resolver) OccurrencesOn(code string, date time.Time) int {
	if !r.IsInstructionalDay(date) {
		return 0
	}
	n := 0
	for _, e := range r.timetable[model.WeekdayOf(date)] {
		if e.SubjectCode == code {
			n++
		}
	}
	return n
}

// RemainingOccurrences sums the subject's slot occurrences over every
// instructional day in [from, to] inclusive.
func (r *Resolver) RemainingOccurrences(code string, from, to time.Time) int {
	total := 0
	for d := range Days(from, to) {
		total += r.OccurrencesOn(code, d)
	}
	return total
}
