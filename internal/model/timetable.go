package model

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a timetable day name. Values match time.Weekday.String() so a
// calendar date maps straight onto its timetable key.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all valid weekday names in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday parses a weekday name case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf returns the timetable day a calendar date falls on.
func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday().String())
}

// Period is a typed timetable slot. Periods run 1..7 against a fixed
// time-range table; breaks are not periods and cannot hold classes.
type Period int

const (
	// FirstPeriod and LastPeriod bound the valid slot range.
	FirstPeriod Period = 1
	LastPeriod  Period = 7
)

type periodTime struct {
	start string
	end   string
}

// Fixed daily bell schedule. Tea break 10:20-10:40, lunch 12:30-13:25.
var periodTimes = map[Period]periodTime{
	1: {"08:30", "09:25"},
	2: {"09:25", "10:20"},
	3: {"10:40", "11:35"},
	4: {"11:35", "12:30"},
	5: {"13:25", "14:20"},
	6: {"14:20", "15:15"},
	7: {"15:15", "16:10"},
}

// Valid reports whether p is within the slot range.
func (p Period) Valid() bool {
	return p >= FirstPeriod && p <= LastPeriod
}

// Start returns the period start time as "HH:MM".
func (p Period) Start() string { return periodTimes[p].start }

// End returns the period end time as "HH:MM".
func (p Period) End() string { return periodTimes[p].end }

// Label renders the period for display, e.g. "Period 3 (10:40-11:35)".
func (p Period) Label() string {
	return fmt.Sprintf("Period %d (%s-%s)", int(p), p.Start(), p.End())
}

// TimetableEntry places a subject into one (weekday, period) slot. A lab
// subject is represented by two entries in chronologically adjacent periods.
type TimetableEntry struct {
	Period      Period `json:"period"`
	SubjectCode string `json:"subject_code"`
}
