package relay

import "context"

// Proofer fetches the latest state from the proof source. One call per
// polling cycle, bounded by the context deadline.
type Proofer interface {
	FetchLatestState(ctx context.Context) (*ChainState, error)
}
