package dto

import "github.com/Arnav-791/Attendence-calculator/internal/model"

// SubjectStats is the full projection output for one subject (§4.2 of the
// attendance arithmetic): held counts, running percentage, calendar forecast
// and the bunk/attend recommendation.
type SubjectStats struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	IsLab       bool   `json:"is_lab"`

	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Held       int     `json:"held"`
	Percentage float64 `json:"percentage"`

	// YetToGo is the manually seeded future-class count; Remaining is the
	// calendar-derived forecast, reported for display only.
	YetToGo       int `json:"yet_to_go"`
	Remaining     int `json:"remaining_classes"`
	TotalPossible int `json:"total_possible"`

	ClassesNeeded int              `json:"classes_needed"`
	Bunkable      int              `json:"bunkable"`
	Status        model.BunkStatus `json:"status"`
}

// BunkableSubject summarizes a subject with spare classes to skip.
type BunkableSubject struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Bunkable    int    `json:"bunkable"`
}

// CriticalSubject summarizes a subject where attendance is mandatory.
type CriticalSubject struct {
	SubjectCode   string `json:"subject_code"`
	SubjectName   string `json:"subject_name"`
	ClassesNeeded int    `json:"classes_needed"`
}

// AnalyticsOverview is the all-subjects projection with the bunkability
// summary lists.
type AnalyticsOverview struct {
	MinimumAttendance float64           `json:"minimum_attendance"`
	Subjects          []SubjectStats    `json:"subjects"`
	BunkableSubjects  []BunkableSubject `json:"bunkable_subjects"`
	CriticalSubjects  []CriticalSubject `json:"critical_subjects"`
}
