package dto

// AddHolidayRequest adds one ISO date to the holiday set.
type AddHolidayRequest struct {
	Date string `json:"date" binding:"required"`
}

// UpdateSettingsRequest changes tracker settings; nil fields stay untouched.
type UpdateSettingsRequest struct {
	MinimumAttendance *float64 `json:"minimum_attendance"`
	SemesterEnd       *string  `json:"semester_end"`
}

// SettingsResponse is the current tracker configuration.
type SettingsResponse struct {
	MinimumAttendance float64 `json:"minimum_attendance"`
	SemesterEnd       string  `json:"semester_end"`
}
