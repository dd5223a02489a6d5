package model

import "sort"

// DateLayout is the ISO date format used for every date in the snapshot.
const DateLayout = "2006-01-02"

// Snapshot is the whole process-wide tracker state. It is loaded wholesale at
// startup and persisted wholesale after every mutation; nothing outside it
// carries tracker state. The JSON field names mirror the persisted layout.
type Snapshot struct {
	Subjects          map[string]Subject            `json:"subjects"`
	Timetable         map[Weekday][]TimetableEntry  `json:"timetable"`
	Holidays          []string                      `json:"holidays"`
	AttendanceRecords map[string][]AttendanceRecord `json:"attendance_records"`
	MinimumAttendance float64                       `json:"minimum_attendance"`
	AbsenceReasons    map[string]AbsenceReason      `json:"absence_reasons"`
	SemesterEndDate   string                        `json:"semester_end_date"`
	InitialAttendance map[string]InitialAttendance  `json:"initial_attendance"`
}

// NewSnapshot returns an empty snapshot with the given configuration values.
func NewSnapshot(minimumAttendance float64, semesterEnd string) *Snapshot {
	s := &Snapshot{
		MinimumAttendance: minimumAttendance,
		SemesterEndDate:   semesterEnd,
	}
	s.Normalize()
	return s
}

// Normalize replaces nil maps and slices left behind by JSON decoding, and
// keeps the holiday list sorted and deduplicated.
func (s *Snapshot) Normalize() {
	if s.Subjects == nil {
		s.Subjects = make(map[string]Subject)
	}
	if s.Timetable == nil {
		s.Timetable = make(map[Weekday][]TimetableEntry)
	}
	if s.AttendanceRecords == nil {
		s.AttendanceRecords = make(map[string][]AttendanceRecord)
	}
	if s.AbsenceReasons == nil {
		s.AbsenceReasons = make(map[string]AbsenceReason)
	}
	if s.InitialAttendance == nil {
		s.InitialAttendance = make(map[string]InitialAttendance)
	}
	if s.Holidays == nil {
		s.Holidays = []string{}
	} else {
		sort.Strings(s.Holidays)
		s.Holidays = dedupSorted(s.Holidays)
	}
}

// EntriesFor returns the timetable entries of a weekday, never nil.
func (s *Snapshot) EntriesFor(day Weekday) []TimetableEntry {
	return s.Timetable[day]
}

// SetEntries replaces a weekday's entries, dropping the key entirely when the
// day becomes empty so the weekday no longer counts as instructional.
func (s *Snapshot) SetEntries(day Weekday, entries []TimetableEntry) {
	if len(entries) == 0 {
		delete(s.Timetable, day)
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Period < entries[j].Period })
	s.Timetable[day] = entries
}

// IsHoliday reports whether the ISO date is in the holiday set.
func (s *Snapshot) IsHoliday(date string) bool {
	i := sort.SearchStrings(s.Holidays, date)
	return i < len(s.Holidays) && s.Holidays[i] == date
}

// AddHoliday inserts a date into the holiday set, keeping it sorted.
// Returns false when the date was already present.
func (s *Snapshot) AddHoliday(date string) bool {
	i := sort.SearchStrings(s.Holidays, date)
	if i < len(s.Holidays) && s.Holidays[i] == date {
		return false
	}
	s.Holidays = append(s.Holidays, "")
	copy(s.Holidays[i+1:], s.Holidays[i:])
	s.Holidays[i] = date
	return true
}

// RemoveHoliday deletes a date from the holiday set.
// Returns false when the date was not present.
func (s *Snapshot) RemoveHoliday(date string) bool {
	i := sort.SearchStrings(s.Holidays, date)
	if i >= len(s.Holidays) || s.Holidays[i] != date {
		return false
	}
	s.Holidays = append(s.Holidays[:i], s.Holidays[i+1:]...)
	return true
}

// RecordsFor returns a subject's ledger records in insertion order.
// The result may be nil for a subject with no records yet.
func (s *Snapshot) RecordsFor(code string) []AttendanceRecord {
	return s.AttendanceRecords[code]
}

// SeedFor returns a subject's initial attendance seed, zero-valued when the
// subject has no seed configured.
func (s *Snapshot) SeedFor(code string) InitialAttendance {
	return s.InitialAttendance[code]
}

// HasSubject reports whether a subject code is registered.
func (s *Snapshot) HasSubject(code string) bool {
	_, ok := s.Subjects[code]
	return ok
}

func dedupSorted(in []string) []string {
	out := in[:0]
	for i, v := range in {
		if i == 0 || in[i-1] != v {
			out = append(out, v)
		}
	}
	return out
}
