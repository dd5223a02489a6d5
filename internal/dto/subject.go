package dto

// CreateSubjectRequest registers a new subject.
type CreateSubjectRequest struct {
	Code    string `json:"code"    binding:"required,max=20"`
	Name    string `json:"name"    binding:"required,max=100"`
	Credits int    `json:"credits" binding:"omitempty,min=1"` // defaults to 1
	IsLab   bool   `json:"is_lab"`
}

// SetInitialAttendanceRequest seeds counts for classes held before tracking
// started. Negative counts are rejected by the service.
type SetInitialAttendanceRequest struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	YetToGo int `json:"yet_to_go"`
}

// InitialAttendanceResponse echoes a subject's configured seed.
type InitialAttendanceResponse struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	YetToGo int `json:"yet_to_go"`
}

// SubjectResponse is the subject view returned by the API.
type SubjectResponse struct {
	Code              string                     `json:"code"`
	Name              string                     `json:"name"`
	Credits           int                        `json:"credits"`
	IsLab             bool                       `json:"is_lab"`
	InitialAttendance *InitialAttendanceResponse `json:"initial_attendance,omitempty"`
}
