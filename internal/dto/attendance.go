package dto

// MarkAttendanceRequest upserts one (subject, date) ledger record.
type MarkAttendanceRequest struct {
	SubjectCode string `json:"subject_code" binding:"required"`
	Date        string `json:"date"         binding:"required"`
	Status      string `json:"status"       binding:"required,oneof=present absent"`
}

// DayAttendanceMark is one subject's status inside a bulk day marking.
type DayAttendanceMark struct {
	SubjectCode string `json:"subject_code" binding:"required"`
	Status      string `json:"status"       binding:"required,oneof=present absent"`
}

// MarkDayAttendanceRequest marks several subjects for one date in a single
// mutation (the "mark all of today's classes" flow).
type MarkDayAttendanceRequest struct {
	Date  string              `json:"date"  binding:"required"`
	Marks []DayAttendanceMark `json:"marks" binding:"required,min=1,dive"`
}

// AttendanceRecordResponse is one ledger record of a subject.
type AttendanceRecordResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// AddAbsenceReasonRequest notes why a day was missed.
type AddAbsenceReasonRequest struct {
	Date   string `json:"date"   binding:"required"`
	Type   string `json:"type"   binding:"required"`
	Reason string `json:"reason" binding:"required,max=200"`
}

// AbsenceReasonResponse is one dated absence note.
type AbsenceReasonResponse struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}
