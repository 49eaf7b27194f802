package relay

import (
	"time"
)

// ChainState is a single observation of the proof source: the opaque proof
// payload plus the metadata extracted from its envelope. It only lives for
// the duration of one polling cycle.
type ChainState struct {
	// Payload is the proof bytes exactly as produced by the light client.
	Payload []byte
	// PublicValues carries the public inputs committed to by the proof,
	// empty when the light client does not expose them.
	PublicValues []byte
	Height       uint64
	Root         []byte
	ObservedAt   time.Time
}

// ProofRecord is the last proof that was successfully delivered to the
// registry. Exactly one of these is kept in storage.
type ProofRecord struct {
	ProofData    []byte    `json:"proof_data"`
	PublicValues []byte    `json:"public_values"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// HealthSnapshot is the last recorded chain observation in health-check
// mode. Exactly one of these is kept in storage.
type HealthSnapshot struct {
	Height     uint64    `json:"current_height"`
	Root       []byte    `json:"current_root"`
	RecordedAt time.Time `json:"recorded_at"`
}
