package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/timewave-computer/proof-relayer/internal/relay"
)

const ProofKey = "previous_proof"
const HealthCheckKey = "health_check"

// LevelDBStorage keeps at most one record per mode:
// ProofKey      -> last proof delivered to the registry
// HealthCheckKey -> last recorded health snapshot
// Writes replace the whole record, a reader sees either the old or the new
// value and never a mix.
type LevelDBStorage struct {
	sync.Mutex
	db *leveldb.DB
}

func NewLevelDBStorage(path string) (*LevelDBStorage, error) {
	database, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &LevelDBStorage{db: database}, nil
}

// GetLastProof returns the last delivered proof, found=false when none was
// delivered yet.
func (s *LevelDBStorage) GetLastProof() (record *relay.ProofRecord, found bool, err error) {
	s.Lock()
	defer s.Unlock()

	data, err := s.db.Get([]byte(ProofKey), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed getting data from db: %w", err)
	}

	var rec relay.ProofRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal stored ProofRecord: %w: %w", relay.ErrCorrupted, err)
	}

	return &rec, true, nil
}

// SetLastProof replaces the stored proof record.
func (s *LevelDBStorage) SetLastProof(record *relay.ProofRecord) error {
	s.Lock()
	defer s.Unlock()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal ProofRecord: %w", err)
	}

	if err := s.db.Put([]byte(ProofKey), data, nil); err != nil {
		return fmt.Errorf("failed to save ProofRecord: %w", err)
	}

	return nil
}

// GetLastSnapshot returns the last recorded health snapshot, found=false
// when none was recorded yet.
func (s *LevelDBStorage) GetLastSnapshot() (snapshot *relay.HealthSnapshot, found bool, err error) {
	s.Lock()
	defer s.Unlock()

	data, err := s.db.Get([]byte(HealthCheckKey), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed getting data from db: %w", err)
	}

	var snap relay.HealthSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal stored HealthSnapshot: %w: %w", relay.ErrCorrupted, err)
	}

	return &snap, true, nil
}

// SetLastSnapshot replaces the stored health snapshot.
func (s *LevelDBStorage) SetLastSnapshot(snapshot *relay.HealthSnapshot) error {
	s.Lock()
	defer s.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal HealthSnapshot: %w", err)
	}

	if err := s.db.Put([]byte(HealthCheckKey), data, nil); err != nil {
		return fmt.Errorf("failed to save HealthSnapshot: %w", err)
	}

	return nil
}

// Reset removes every stored record in a single transaction.
func (s *LevelDBStorage) Reset() error {
	s.Lock()
	defer s.Unlock()

	t, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("failed to open leveldb transaction: %w", err)
	}
	defer t.Discard()

	if err := t.Delete([]byte(ProofKey), nil); err != nil {
		return fmt.Errorf("failed to delete ProofRecord: %w", err)
	}

	if err := t.Delete([]byte(HealthCheckKey), nil); err != nil {
		return fmt.Errorf("failed to delete HealthSnapshot: %w", err)
	}

	return t.Commit()
}

func (s *LevelDBStorage) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}
