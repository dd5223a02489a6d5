package store

import (
	"errors"

	"github.com/Arnav-791/Attendence-calculator/internal/model"
)

// ErrNoSnapshot is returned by Load when nothing has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot persisted")

// SnapshotStore persists the whole tracker state as one opaque snapshot.
// Save must be all-or-nothing: a failed or interrupted Save may leave the old
// snapshot in place but never a partially written one.
type SnapshotStore interface {
	Load() (*model.Snapshot, error)
	Save(*model.Snapshot) error
}
