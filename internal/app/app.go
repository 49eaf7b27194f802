package app

import (
	"fmt"

	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/config"
	"github.com/timewave-computer/proof-relayer/internal/healthprocessor"
	"github.com/timewave-computer/proof-relayer/internal/lightclient/helios"
	"github.com/timewave-computer/proof-relayer/internal/lightclient/tendermint"
	"github.com/timewave-computer/proof-relayer/internal/proofprocessor"
	"github.com/timewave-computer/proof-relayer/internal/registry"
	"github.com/timewave-computer/proof-relayer/internal/relay"
	"github.com/timewave-computer/proof-relayer/internal/storage"
)

var (
	Version = ""
	Commit  = ""
)

const (
	AppContext             = "app"
	RelayerContext         = "relayer"
	LightClientContext     = "light_client"
	RegistryContext        = "registry"
	ProofProcessorContext  = "proof_processor"
	HealthProcessorContext = "health_processor"
)

// NewDefaultStorage returns a LevelDB backed storage at cfg.StoragePath.
func NewDefaultStorage(cfg config.Config, logger *zap.Logger) (relay.Storage, error) {
	leveldbStorage, err := storage.NewLevelDBStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create NewLevelDBStorage: %w", err)
	}

	logger.Debug("storage opened", zap.String("path", cfg.StoragePath))
	return leveldbStorage, nil
}

// NewDefaultProofer returns the proof source selected by cfg.LightClient.
func NewDefaultProofer(cfg config.Config, logRegistry *nlogger.Registry) (relay.Proofer, error) {
	logger := logRegistry.Get(LightClientContext)

	switch cfg.LightClient {
	case config.LightClientHelios:
		proofer, err := helios.NewClient(cfg.Helios.ProverEndpoint, cfg.SourceTimeout, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create helios client: %w", err)
		}
		return proofer, nil

	case config.LightClientTendermint:
		rpcClient, err := tendermint.NewRPCClient(cfg.Tendermint.RPCAddr, cfg.SourceTimeout)
		if err != nil {
			return nil, fmt.Errorf("could not initialize tendermint rpc client: %w", err)
		}
		return tendermint.NewClient(rpcClient, logger), nil

	default:
		return nil, fmt.Errorf("unknown light client backend %q", cfg.LightClient)
	}
}

// NewDefaultSubmitter returns the registry client proofs are forwarded to.
// The verification key only travels with proofs the registry can verify
// against it.
func NewDefaultSubmitter(cfg config.Config, logRegistry *nlogger.Registry) (relay.Submitter, error) {
	verificationKey := ""
	if cfg.LightClient == config.LightClientHelios {
		verificationKey = cfg.Helios.VerificationKey
	}

	submitter, err := registry.NewClient(
		cfg.RegistryEndpoint,
		verificationKey,
		cfg.RegistryTimeout,
		logRegistry.Get(RegistryContext),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry client: %w", err)
	}

	return submitter, nil
}

// NewDefaultProcessor returns the cycle processor for cfg.Mode.
func NewDefaultProcessor(cfg config.Config, logRegistry *nlogger.Registry, storage relay.Storage) (relay.Processor, error) {
	switch cfg.Mode {
	case config.ModeRelayer:
		submitter, err := NewDefaultSubmitter(cfg, logRegistry)
		if err != nil {
			return nil, err
		}
		return proofprocessor.NewProofProcessor(
			storage,
			submitter,
			cfg.MaxSubmitFailures,
			logRegistry.Get(ProofProcessorContext),
		), nil

	case config.ModeHealthCheck:
		return healthprocessor.NewHealthProcessor(storage, logRegistry.Get(HealthProcessorContext)), nil

	default:
		return nil, fmt.Errorf("unknown relayer mode %q", cfg.Mode)
	}
}

// NewDefaultRelayer returns a relayer built with cfg.
func NewDefaultRelayer(cfg config.Config, logRegistry *nlogger.Registry, storage relay.Storage) (*relay.Relayer, error) {
	proofer, err := NewDefaultProofer(cfg, logRegistry)
	if err != nil {
		return nil, err
	}

	processor, err := NewDefaultProcessor(cfg, logRegistry, storage)
	if err != nil {
		return nil, err
	}

	return relay.NewRelayer(
		proofer,
		processor,
		cfg.PollInterval,
		cfg.SourceTimeout,
		logRegistry.Get(RelayerContext),
	), nil
}
