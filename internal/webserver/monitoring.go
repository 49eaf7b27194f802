package webserver

import (
	"net/http"
	"time"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/metrics"
	"github.com/timewave-computer/proof-relayer/internal/relay"
)

const MonitoringLoggerContext = "monitoring"

// PromWrapper refreshes the storage derived gauges right before every
// scrape so they stay meaningful even when no cycle ran recently.
type PromWrapper struct {
	promHandler http.Handler
	storage     relay.Storage
	logger      *zap.Logger
}

func NewPromWrapper(logRegistry *nlogger.Registry, storage relay.Storage) PromWrapper {
	return PromWrapper{
		promHandler: promhttp.Handler(),
		storage:     storage,
		logger:      logRegistry.Get(MonitoringLoggerContext),
	}
}

func (p PromWrapper) fillSnapshotMetrics() {
	snapshot, found, err := p.storage.GetLastSnapshot()
	if err != nil {
		p.logger.Error("failed to get last snapshot from storage", zap.Error(err))
		return
	}
	if !found {
		return
	}

	metrics.SetLastRecordedHeight(snapshot.Height)
	metrics.SetSnapshotAge(time.Since(snapshot.RecordedAt).Seconds())
}

func (p PromWrapper) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	p.fillSnapshotMetrics()
	p.promHandler.ServeHTTP(res, req)
}
