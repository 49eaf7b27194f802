package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/timewave-computer/proof-relayer/internal/app"
	"github.com/timewave-computer/proof-relayer/internal/config"
	"github.com/timewave-computer/proof-relayer/internal/relay"
	"github.com/timewave-computer/proof-relayer/internal/webserver"
)

const (
	mainContext = "main"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the proof relayer main app",
	Run: func(cmd *cobra.Command, args []string) {
		startRelayer()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func startRelayer() {
	logRegistry, err := nlogger.NewRegistry(
		mainContext,
		app.AppContext,
		app.RelayerContext,
		app.LightClientContext,
		app.RegistryContext,
		app.ProofProcessorContext,
		app.HealthProcessorContext,
		webserver.ServerContext,
		webserver.MonitoringLoggerContext,
	)
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)
	logger.Info("proof-relayer starts...")

	cfg, err := config.NewProofRelayerConfig()
	if err != nil {
		logger.Fatal("cannot initialize relayer config", zap.Error(err))
	}
	logger.Info("initialized config",
		zap.String("mode", cfg.Mode),
		zap.String("light_client", cfg.LightClient))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	// The storage has to be shared because of the LevelDB single process restriction.
	storage, err := app.NewDefaultStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create NewDefaultStorage", zap.Error(err))
	}
	defer func(storage relay.Storage) {
		if err := storage.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}(storage)

	relayer, err := app.NewDefaultRelayer(cfg, logRegistry, storage)
	if err != nil {
		logger.Fatal("Failed to get NewDefaultRelayer", zap.Error(err))
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		router := webserver.Router(logRegistry, storage, cfg.HealthyThreshold, cfg.Mode == config.ModeHealthCheck)
		if err := webserver.Run(ctx, logRegistry, router, cfg.WebserverPort); err != nil {
			logger.Error("WebServer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		// Run returns an error only on a failed state restore, never for
		// per-cycle failures.
		if err := relayer.Run(ctx); err != nil {
			logger.Fatal("Relayer exited with an error", zap.Error(err))
		}
	}()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		s := <-sigs
		logger.Info("Received termination signal, gracefully shutting down...",
			zap.String("signal", s.String()))
		cancel()
	}()

	wg.Wait()
}
