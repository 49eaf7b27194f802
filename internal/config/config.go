package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "RELAYER"

// Run modes.
const (
	ModeRelayer     = "relayer"
	ModeHealthCheck = "health-check"
)

// Light client backends.
const (
	LightClientHelios     = "helios"
	LightClientTendermint = "tendermint"
)

// HeliosConfig describes the Helios SP1 prover the relayer can poll.
type HeliosConfig struct {
	ProverEndpoint string `split_words:"true" default:"http://127.0.0.1:7778/"`
	// VerificationKey is sent to the registry with every proof so it can
	// pick the right verifier.
	VerificationKey string `split_words:"true" default:"0x006beadaace48146e0389403f70b490980e612c439a9294877446cd583e50fce"`
}

// TendermintConfig describes the CometBFT node the relayer can poll.
type TendermintConfig struct {
	RPCAddr string `split_words:"true" default:"tcp://127.0.0.1:26657"`
}

// Config is the top level configuration of the relayer, read entirely from
// environment variables with the RELAYER prefix.
type Config struct {
	// Mode selects what happens to a changed state: relayer forwards it to
	// the registry, health-check records it for the status endpoint.
	Mode string `default:"health-check"`
	// LightClient selects the proof source backend.
	LightClient string `split_words:"true" default:"helios"`

	PollInterval  time.Duration `split_words:"true" default:"30s"`
	SourceTimeout time.Duration `split_words:"true" default:"10s"`
	StoragePath   string        `split_words:"true" default:"relayer_storage"`

	RegistryEndpoint string        `split_words:"true"`
	RegistryTimeout  time.Duration `split_words:"true" default:"10s"`
	// MaxSubmitFailures caps consecutive failed submissions of one proof
	// before the relayer stops retrying it, 0 retries forever.
	MaxSubmitFailures uint64 `split_words:"true" default:"0"`

	Helios     HeliosConfig
	Tendermint TendermintConfig

	WebserverPort    int           `split_words:"true" default:"9999"`
	HealthyThreshold time.Duration `split_words:"true" default:"30m"`
}

// NewProofRelayerConfig reads and validates the relayer config from the
// environment.
func NewProofRelayerConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Mode {
	case ModeRelayer, ModeHealthCheck:
	default:
		return fmt.Errorf("invalid RELAYER_MODE %q: must be %q or %q", cfg.Mode, ModeRelayer, ModeHealthCheck)
	}

	switch cfg.LightClient {
	case LightClientHelios, LightClientTendermint:
	default:
		return fmt.Errorf("invalid RELAYER_LIGHT_CLIENT %q: must be %q or %q",
			cfg.LightClient, LightClientHelios, LightClientTendermint)
	}

	if cfg.Mode == ModeRelayer && cfg.RegistryEndpoint == "" {
		return fmt.Errorf("RELAYER_REGISTRY_ENDPOINT must be set in relayer mode")
	}

	if cfg.PollInterval <= 0 {
		return fmt.Errorf("RELAYER_POLL_INTERVAL must be positive")
	}

	if cfg.SourceTimeout <= 0 {
		return fmt.Errorf("RELAYER_SOURCE_TIMEOUT must be positive")
	}

	if cfg.StoragePath == "" {
		return fmt.Errorf("RELAYER_STORAGE_PATH must be set")
	}

	return nil
}
