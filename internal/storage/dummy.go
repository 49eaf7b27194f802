package storage

import (
	"sync"

	"github.com/timewave-computer/proof-relayer/internal/relay"
)

// DummyStorage holds the records in memory. Everything is lost on restart,
// so it is only suitable for tests and local experiments.
type DummyStorage struct {
	sync.Mutex
	proof    *relay.ProofRecord
	snapshot *relay.HealthSnapshot
}

func NewDummyStorage() *DummyStorage {
	return new(DummyStorage)
}

func (s *DummyStorage) GetLastProof() (*relay.ProofRecord, bool, error) {
	s.Lock()
	defer s.Unlock()

	if s.proof == nil {
		return nil, false, nil
	}
	rec := *s.proof
	return &rec, true, nil
}

func (s *DummyStorage) SetLastProof(record *relay.ProofRecord) error {
	s.Lock()
	defer s.Unlock()

	rec := *record
	s.proof = &rec
	return nil
}

func (s *DummyStorage) GetLastSnapshot() (*relay.HealthSnapshot, bool, error) {
	s.Lock()
	defer s.Unlock()

	if s.snapshot == nil {
		return nil, false, nil
	}
	snap := *s.snapshot
	return &snap, true, nil
}

func (s *DummyStorage) SetLastSnapshot(snapshot *relay.HealthSnapshot) error {
	s.Lock()
	defer s.Unlock()

	snap := *snapshot
	s.snapshot = &snap
	return nil
}

func (s *DummyStorage) Reset() error {
	s.Lock()
	defer s.Unlock()

	s.proof = nil
	s.snapshot = nil
	return nil
}

func (s *DummyStorage) Close() error {
	return nil
}
