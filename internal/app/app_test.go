package app_test

import (
	"testing"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewave-computer/proof-relayer/internal/app"
	"github.com/timewave-computer/proof-relayer/internal/config"
	"github.com/timewave-computer/proof-relayer/internal/healthprocessor"
	"github.com/timewave-computer/proof-relayer/internal/proofprocessor"
	"github.com/timewave-computer/proof-relayer/internal/storage"
)

func newTestRegistry(t *testing.T) *nlogger.Registry {
	registry, err := nlogger.NewRegistry(
		app.AppContext,
		app.RelayerContext,
		app.LightClientContext,
		app.RegistryContext,
		app.ProofProcessorContext,
		app.HealthProcessorContext,
	)
	require.NoError(t, err)
	return registry
}

func TestNewDefaultProcessorByMode(t *testing.T) {
	st := storage.NewDummyStorage()
	logRegistry := newTestRegistry(t)

	processor, err := app.NewDefaultProcessor(config.Config{Mode: config.ModeHealthCheck}, logRegistry, st)
	require.NoError(t, err)
	assert.IsType(t, &healthprocessor.HealthProcessor{}, processor)

	processor, err = app.NewDefaultProcessor(config.Config{
		Mode:             config.ModeRelayer,
		LightClient:      config.LightClientHelios,
		RegistryEndpoint: "http://127.0.0.1:37281/api/registry/domain/ethereum-alpha",
	}, logRegistry, st)
	require.NoError(t, err)
	assert.IsType(t, &proofprocessor.ProofProcessor{}, processor)

	_, err = app.NewDefaultProcessor(config.Config{Mode: "banana"}, logRegistry, st)
	require.Error(t, err)
}

func TestNewDefaultProoferByLightClient(t *testing.T) {
	logRegistry := newTestRegistry(t)

	_, err := app.NewDefaultProofer(config.Config{
		LightClient: config.LightClientHelios,
		Helios:      config.HeliosConfig{ProverEndpoint: "http://127.0.0.1:7778/"},
	}, logRegistry)
	require.NoError(t, err)

	_, err = app.NewDefaultProofer(config.Config{
		LightClient: config.LightClientTendermint,
		Tendermint:  config.TendermintConfig{RPCAddr: "tcp://127.0.0.1:26657"},
	}, logRegistry)
	require.NoError(t, err)

	_, err = app.NewDefaultProofer(config.Config{LightClient: "solana"}, logRegistry)
	require.Error(t, err)
}
