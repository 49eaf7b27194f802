package healthprocessor

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/metrics"
	"github.com/timewave-computer/proof-relayer/internal/relay"
)

// HealthProcessor is the health-check-mode implementation of
// relay.Processor: every change of the observed (height, root) pair is
// persisted as a snapshot for the status endpoint to serve.
type HealthProcessor struct {
	storage relay.Storage
	logger  *zap.Logger

	prev *relay.HealthSnapshot
}

func NewHealthProcessor(storage relay.Storage, logger *zap.Logger) *HealthProcessor {
	return &HealthProcessor{
		storage: storage,
		logger:  logger,
	}
}

// Restore loads the last recorded snapshot so change detection survives a
// restart.
func (p *HealthProcessor) Restore() error {
	snapshot, found, err := p.storage.GetLastSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load last recorded snapshot: %w", err)
	}
	if !found {
		p.logger.Info("no previously recorded snapshot found, the first fetched state will be recorded")
		return nil
	}

	p.prev = snapshot
	metrics.SetLastRecordedHeight(snapshot.Height)
	p.logger.Info("restored last recorded snapshot",
		zap.Uint64("height", snapshot.Height),
		zap.Time("recorded_at", snapshot.RecordedAt))
	return nil
}

// Process persists the fetched state when it differs from the last recorded
// snapshot.
func (p *HealthProcessor) Process(_ context.Context, state *relay.ChainState) error {
	if !relay.SnapshotChanged(p.prev, state) {
		p.logger.Debug("chain state unchanged, nothing to record", zap.Uint64("height", state.Height))
		return nil
	}

	if p.prev != nil && state.Height < p.prev.Height {
		// recorded anyway: the storage mirrors whatever the source reports,
		// the anomaly is surfaced through the log and the counter
		metrics.IncHeightRegressions()
		p.logger.Warn("observed height is below the recorded one",
			zap.Uint64("observed_height", state.Height),
			zap.Uint64("recorded_height", p.prev.Height))
	}

	snapshot := &relay.HealthSnapshot{
		Height:     state.Height,
		Root:       state.Root,
		RecordedAt: time.Now(),
	}

	if err := p.storage.SetLastSnapshot(snapshot); err != nil {
		return fmt.Errorf("failed to persist health snapshot: %w", err)
	}

	p.prev = snapshot
	metrics.SetLastRecordedHeight(snapshot.Height)
	p.logger.Info("recorded new health snapshot",
		zap.Uint64("height", snapshot.Height),
		zap.String("root", hex.EncodeToString(snapshot.Root)))
	return nil
}
