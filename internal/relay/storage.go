package relay

import "errors"

// ErrCorrupted is returned when a persisted record exists but cannot be
// decoded. Callers treat it as fatal at startup: resuming from a half-read
// record would silently replay or drop a change.
var ErrCorrupted = errors.New("storage record corrupted")

// Storage is the durable single-record store the relayer resumes from. Both
// getters return found=false (and no error) when the store has no record
// yet, writers fully replace the previous record.
type Storage interface {
	GetLastProof() (record *ProofRecord, found bool, err error)
	SetLastProof(record *ProofRecord) error

	GetLastSnapshot() (snapshot *HealthSnapshot, found bool, err error)
	SetLastSnapshot(snapshot *HealthSnapshot) error

	// Reset drops every persisted record.
	Reset() error

	Close() error
}
