package relay

import "context"

// Submitter delivers a proof to the downstream registry. A nil error means
// the registry confirmed the submission; the relayer only then persists the
// record. Implementations do not retry internally, the polling cycle is the
// retry loop.
type Submitter interface {
	SubmitProof(ctx context.Context, record *ProofRecord) error
}
