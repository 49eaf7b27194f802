package relay

import "context"

// Processor consumes one fetched state per polling cycle. The relayer owns
// when Process is called, the processor owns what happens to the state
// (change detection, forwarding, persistence).
type Processor interface {
	// Restore loads the last persisted record so change detection resumes
	// where the previous run stopped. Called once before the first cycle;
	// an error aborts startup.
	Restore() error

	// Process handles a single observation. Errors are per-cycle: the
	// caller logs them and keeps polling.
	Process(ctx context.Context, state *ChainState) error
}
