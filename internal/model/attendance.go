package model

// AttendanceStatus is the presence state recorded for one class occurrence.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord is one dated presence/absence entry in a subject's ledger.
// At most one record exists per (subject, date); a later write replaces the
// status of the existing record.
type AttendanceRecord struct {
	Date   string           `json:"date"`
	Status AttendanceStatus `json:"status"`
}

// AbsenceType classifies why a day was missed.
type AbsenceType string

const (
	AbsenceMedical  AbsenceType = "Medical"
	AbsenceEvent    AbsenceType = "Event"
	AbsencePersonal AbsenceType = "Personal"
	AbsenceOther    AbsenceType = "Other"
)

// Valid reports whether t is a known absence type.
func (t AbsenceType) Valid() bool {
	switch t {
	case AbsenceMedical, AbsenceEvent, AbsencePersonal, AbsenceOther:
		return true
	}
	return false
}

// AbsenceReason is a dated note explaining an absence, keyed by date in the
// snapshot. Bookkeeping only; the projection engine ignores it.
type AbsenceReason struct {
	Type   AbsenceType `json:"type"`
	Reason string      `json:"reason"`
}

// BunkStatus is the recommendation bucket derived from a subject's projection.
// Purely display/alerting output, never stored.
type BunkStatus string

const (
	BunkNoData        BunkStatus = "no_data"
	BunkSafe          BunkStatus = "safe"
	BunkMustAttend    BunkStatus = "must_attend"
	BunkMedium        BunkStatus = "medium"
	BunkAttention     BunkStatus = "attention"
	BunkCritical      BunkStatus = "critical"
	BunkBlocking      BunkStatus = "blocking"
	BunkUnrecoverable BunkStatus = "unrecoverable"
)
