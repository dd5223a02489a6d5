package model

// Subject metadata, keyed by subject code in the snapshot.
type Subject struct {
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	IsLab   bool   `json:"is_lab"`
}

// InitialAttendance seeds per-subject counts for classes that happened before
// the tracker was adopted. The counts are added arithmetically to
// ledger-derived counts when computing statistics; YetToGo is the manually
// estimated number of classes still to come.
type InitialAttendance struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	YetToGo int `json:"yet_to_go"`
}
