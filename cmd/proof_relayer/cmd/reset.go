package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/timewave-computer/proof-relayer/internal/app"
	"github.com/timewave-computer/proof-relayer/internal/config"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every recorded proof and health check from the storage",
	Run: func(cmd *cobra.Command, args []string) {
		resetStorage()
	},
}

func init() {
	RootCmd.AddCommand(resetCmd)
}

func resetStorage() {
	logRegistry, err := nlogger.NewRegistry(mainContext, app.AppContext)
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)

	cfg, err := config.NewProofRelayerConfig()
	if err != nil {
		logger.Fatal("cannot initialize relayer config", zap.Error(err))
	}

	storage, err := app.NewDefaultStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create NewDefaultStorage", zap.Error(err))
	}

	if err := storage.Reset(); err != nil {
		logger.Fatal("failed to reset storage", zap.Error(err))
	}
	if err := storage.Close(); err != nil {
		logger.Error("failed to close storage", zap.Error(err))
	}

	logger.Info("storage reset", zap.String("path", cfg.StoragePath))
}
