package relay

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/metrics"
)

// Relayer is the controller for the whole app:
// 1. fetches the latest state from the proof source on a fixed interval
// 2. hands each observation to the mode processor, which detects changes,
//    forwards and persists them
// 3. absorbs per-cycle failures so a bad cycle never kills the loop
type Relayer struct {
	proofer       Proofer
	processor     Processor
	pollInterval  time.Duration
	sourceTimeout time.Duration
	logger        *zap.Logger
}

func NewRelayer(
	proofer Proofer,
	processor Processor,
	pollInterval time.Duration,
	sourceTimeout time.Duration,
	logger *zap.Logger,
) *Relayer {
	return &Relayer{
		proofer:       proofer,
		processor:     processor,
		pollInterval:  pollInterval,
		sourceTimeout: sourceTimeout,
		logger:        logger,
	}
}

// Run polls until ctx is cancelled. The first cycle starts immediately, the
// rest on every tick. Only a failed Restore is returned as an error: the
// relayer must not start from persisted state it cannot read.
func (r *Relayer) Run(ctx context.Context) error {
	if err := r.processor.Restore(); err != nil {
		return fmt.Errorf("failed to restore last recorded state: %w", err)
	}

	r.logger.Info("polling started", zap.Duration("poll_interval", r.pollInterval))

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		r.pollOnce(ctx)

		select {
		case <-ctx.Done():
			r.logger.Info("context cancelled, stopping poll loop")
			return nil
		case <-ticker.C:
		}
	}
}

// pollOnce runs a single fetch-and-process cycle. The fetch is bounded by
// sourceTimeout; every failure is logged and swallowed so the next tick
// starts clean.
func (r *Relayer) pollOnce(ctx context.Context) {
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, r.sourceTimeout)
	defer cancel()

	state, err := r.proofer.FetchLatestState(fetchCtx)
	if err != nil {
		if ctx.Err() != nil {
			// shutdown in progress, not a source failure
			return
		}
		metrics.AddFailedFetch(time.Since(start).Seconds())
		r.logger.Error("failed to fetch state from proof source", zap.Error(err))
		return
	}
	metrics.AddSuccessFetch(time.Since(start).Seconds())
	metrics.SetLastObservedHeight(state.Height)

	r.logger.Debug("fetched state from proof source",
		zap.Uint64("height", state.Height),
		zap.String("root", hex.EncodeToString(state.Root)))

	if err := r.processor.Process(ctx, state); err != nil {
		r.logger.Error("failed to process fetched state",
			zap.Uint64("height", state.Height), zap.Error(err))
	}
}
