package dto

// AddTimetableEntryRequest places a subject into a (day, period) slot.
type AddTimetableEntryRequest struct {
	Day         string `json:"day"          binding:"required"`
	Period      int    `json:"period"       binding:"required,min=1,max=7"`
	SubjectCode string `json:"subject_code" binding:"required"`
}

// RemoveTimetableEntryRequest identifies the entry to delete (query params).
type RemoveTimetableEntryRequest struct {
	Day         string `form:"day"     binding:"required"`
	Period      int    `form:"period"  binding:"required,min=1,max=7"`
	SubjectCode string `form:"subject" binding:"required"`
}

// TimetableEntryResponse is one rendered slot of the timetable.
type TimetableEntryResponse struct {
	Period      int    `json:"period"`
	Label       string `json:"label"`
	Start       string `json:"start"`
	End         string `json:"end"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
}

// TimetableDayResponse groups a weekday's entries in period order.
type TimetableDayResponse struct {
	Day     string                   `json:"day"`
	Entries []TimetableEntryResponse `json:"entries"`
}

// PeriodResponse describes one slot of the fixed bell schedule.
type PeriodResponse struct {
	Period int    `json:"period"`
	Label  string `json:"label"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// WeeklyScheduleRequest selects the week to render; start defaults to today.
type WeeklyScheduleRequest struct {
	Start string `form:"start"`
}

// ScheduleDayResponse is one calendar day of the resolved schedule.
type ScheduleDayResponse struct {
	Date    string                   `json:"date"`
	Day     string                   `json:"day"`
	Holiday bool                     `json:"holiday"`
	Classes []TimetableEntryResponse `json:"classes"`
}
