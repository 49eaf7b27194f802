package webserver

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/relay"
)

const (
	ServerContext     = "webserver"
	HealthResource    = "/health"
	RootResource      = "/"
	PrometheusMetrics = "/metrics"
)

const banner = "Proof Relayer API\nUse /health to get the latest health check data\n"

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusNoData    = "no_data"
)

// HealthResponse is the JSON document served on the health resource.
type HealthResponse struct {
	CurrentHeight uint64 `json:"current_height"`
	CurrentRoot   string `json:"current_root"`
	RecordedAt    string `json:"recorded_at"`
	Status        string `json:"status"`
}

// Run serves the given router until ctx is cancelled, then shuts the server
// down gracefully.
func Run(ctx context.Context, logRegistry *nlogger.Registry, router *mux.Router, port int) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}
	logger := logRegistry.Get(ServerContext)
	errch := make(chan error)

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				logger.Error("failed to serve http", zap.Error(err))
				errch <- err
			}
		}
	}()

	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down the api http")
	webserverCtx, cancelWebserverCtx := context.WithTimeout(context.Background(), time.Second*5)
	defer cancelWebserverCtx()
	if err := server.Shutdown(webserverCtx); err != nil {
		logger.Error("failed to shutdown api http gracefully: %w", zap.Error(err))
		return nil
	}

	logger.Info("api http shut down successfully")
	return nil
}

// Router builds the webserver routes. The health resource is only
// registered when healthEnabled is set, banner and metrics are always
// served.
func Router(logRegistry *nlogger.Registry, storage relay.Storage, healthyThreshold time.Duration, healthEnabled bool) *mux.Router {
	promHandler := NewPromWrapper(logRegistry, storage)
	router := mux.NewRouter().StrictSlash(true)
	if healthEnabled {
		router.HandleFunc(HealthResource, healthCheck(logRegistry.Get(ServerContext), storage, healthyThreshold))
	}
	router.Handle(PrometheusMetrics, promHandler)
	router.HandleFunc(RootResource, rootBanner())
	return router
}

// healthCheck serves the last recorded snapshot. The status field says how
// fresh it is: a snapshot older than healthyThreshold means the source
// stopped producing new states and the relayer is considered unhealthy.
func healthCheck(logger *zap.Logger, storage relay.Storage, healthyThreshold time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, found, err := storage.GetLastSnapshot()
		if err != nil {
			logger.Error("failed to get last snapshot from storage", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if !found {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(logger, w, HealthResponse{
				RecordedAt: time.Now().UTC().Format(time.RFC3339),
				Status:     StatusNoData,
			})
			return
		}

		status := StatusHealthy
		if time.Since(snapshot.RecordedAt) > healthyThreshold {
			status = StatusUnhealthy
		}

		writeJSON(logger, w, HealthResponse{
			CurrentHeight: snapshot.Height,
			CurrentRoot:   hex.EncodeToString(snapshot.Root),
			RecordedAt:    snapshot.RecordedAt.Format(time.RFC3339),
			Status:        status,
		})
	}
}

func rootBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, banner)
	}
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
