package proofprocessor

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/metrics"
	"github.com/timewave-computer/proof-relayer/internal/relay"
)

// ProofProcessor is the relayer-mode implementation of relay.Processor. A
// changed proof is submitted to the registry first and persisted only after
// the registry confirmed it. The in-memory previous record advances
// together with the persisted one, so a failure anywhere in the
// submit-then-persist pair leaves both untouched and the next cycle retries
// the same proof.
type ProofProcessor struct {
	storage   relay.Storage
	submitter relay.Submitter
	logger    *zap.Logger

	// maxSubmitFailures caps consecutive failed submissions of one proof,
	// 0 means never give up
	maxSubmitFailures uint64

	prev           *relay.ProofRecord
	lastAttempted  []byte
	submitFailures uint64
}

func NewProofProcessor(
	storage relay.Storage,
	submitter relay.Submitter,
	maxSubmitFailures uint64,
	logger *zap.Logger,
) *ProofProcessor {
	return &ProofProcessor{
		storage:           storage,
		submitter:         submitter,
		maxSubmitFailures: maxSubmitFailures,
		logger:            logger,
	}
}

// Restore loads the last delivered proof so duplicate detection survives a
// restart.
func (p *ProofProcessor) Restore() error {
	record, found, err := p.storage.GetLastProof()
	if err != nil {
		return fmt.Errorf("failed to load last delivered proof: %w", err)
	}
	if !found {
		p.logger.Info("no previously delivered proof found, the first fetched proof will be forwarded")
		return nil
	}

	p.prev = record
	p.logger.Info("restored last delivered proof", zap.Time("recorded_at", record.RecordedAt))
	return nil
}

// Process submits the fetched proof when it differs from the last delivered
// one and persists it after a confirmed submission.
func (p *ProofProcessor) Process(ctx context.Context, state *relay.ChainState) error {
	if !relay.ProofChanged(p.prev, state) {
		p.logger.Debug("proof unchanged, nothing to do", zap.Uint64("height", state.Height))
		return nil
	}

	if !bytes.Equal(p.lastAttempted, state.Payload) {
		p.lastAttempted = state.Payload
		p.submitFailures = 0
	}

	record := &relay.ProofRecord{
		ProofData:    state.Payload,
		PublicValues: state.PublicValues,
		RecordedAt:   time.Now(),
	}

	start := time.Now()
	if err := p.submitter.SubmitProof(ctx, record); err != nil {
		metrics.AddFailedSubmit(time.Since(start).Seconds())
		p.noteSubmitFailure(state)
		return fmt.Errorf("failed to submit proof to registry: %w", err)
	}
	metrics.AddSuccessSubmit(time.Since(start).Seconds())

	if err := p.storage.SetLastProof(record); err != nil {
		// The registry has the proof but the storage does not. Keeping prev
		// untouched makes the next cycle submit the same proof again, a
		// duplicate the registry tolerates, instead of letting memory and
		// disk diverge.
		return fmt.Errorf("failed to persist delivered proof: %w", err)
	}

	p.prev = record
	p.submitFailures = 0
	p.logger.Info("new proof delivered and persisted", zap.Uint64("height", state.Height))
	return nil
}

// noteSubmitFailure counts consecutive failed submissions of one proof and,
// once the cap is reached, abandons the proof in memory only. Nothing is
// persisted, so a restart forgets the abandonment and the proof is tried
// again.
func (p *ProofProcessor) noteSubmitFailure(state *relay.ChainState) {
	p.submitFailures++
	if p.maxSubmitFailures == 0 || p.submitFailures < p.maxSubmitFailures {
		return
	}

	metrics.IncAbandonedSubmissions()
	p.logger.Error("abandoning proof after repeated failed submissions",
		zap.Uint64("height", state.Height),
		zap.Uint64("failed_attempts", p.submitFailures))

	p.prev = &relay.ProofRecord{
		ProofData:    state.Payload,
		PublicValues: state.PublicValues,
		RecordedAt:   time.Now(),
	}
	p.submitFailures = 0
}
