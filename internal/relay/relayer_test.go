package relay_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/relay"
	mock_relay "github.com/timewave-computer/proof-relayer/testutil/mocks/relay"
)

func TestRunAbortsOnRestoreError(t *testing.T) {
	defer leaktest.Check(t)()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	proofer := mock_relay.NewMockProofer(ctrl)
	processor := mock_relay.NewMockProcessor(ctrl)
	processor.EXPECT().Restore().Return(fmt.Errorf("leveldb: unable to read the record"))

	r := relay.NewRelayer(proofer, processor, time.Hour, time.Second, logger)

	err = r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to restore last recorded state")
}

func TestRunHandsFetchedStateToProcessor(t *testing.T) {
	defer leaktest.Check(t)()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	state := &relay.ChainState{
		Payload: []byte{0x0a},
		Height:  42,
		Root:    []byte{0xde, 0xad},
	}

	proofer := mock_relay.NewMockProofer(ctrl)
	processor := mock_relay.NewMockProcessor(ctrl)
	processor.EXPECT().Restore().Return(nil)
	proofer.EXPECT().FetchLatestState(gomock.Any()).Return(state, nil)

	processed := make(chan struct{})
	processor.EXPECT().Process(gomock.Any(), state).DoAndReturn(func(context.Context, *relay.ChainState) error {
		close(processed)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- relay.NewRelayer(proofer, processor, time.Hour, time.Second, logger).Run(ctx)
	}()

	// the first cycle runs without waiting for a tick
	<-processed
	cancel()
	assert.NoError(t, <-done)
}

func TestRunKeepsPollingAfterFetchError(t *testing.T) {
	defer leaktest.Check(t)()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	state := &relay.ChainState{Payload: []byte{0x0a}, Height: 7}

	proofer := mock_relay.NewMockProofer(ctrl)
	processor := mock_relay.NewMockProcessor(ctrl)
	processor.EXPECT().Restore().Return(nil)

	failed := proofer.EXPECT().FetchLatestState(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))
	proofer.EXPECT().FetchLatestState(gomock.Any()).Return(state, nil).MinTimes(1).After(failed)

	var once sync.Once
	processed := make(chan struct{})
	processor.EXPECT().Process(gomock.Any(), state).DoAndReturn(func(context.Context, *relay.ChainState) error {
		once.Do(func() { close(processed) })
		return nil
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- relay.NewRelayer(proofer, processor, time.Millisecond*10, time.Second, logger).Run(ctx)
	}()

	<-processed
	cancel()
	assert.NoError(t, <-done)
}

func TestRunKeepsPollingAfterProcessError(t *testing.T) {
	defer leaktest.Check(t)()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	state := &relay.ChainState{Payload: []byte{0x0a}, Height: 7}

	proofer := mock_relay.NewMockProofer(ctrl)
	processor := mock_relay.NewMockProcessor(ctrl)
	processor.EXPECT().Restore().Return(nil)
	proofer.EXPECT().FetchLatestState(gomock.Any()).Return(state, nil).MinTimes(2)

	var (
		mu    sync.Mutex
		calls int
	)
	processed := make(chan struct{})
	processor.EXPECT().Process(gomock.Any(), state).DoAndReturn(func(context.Context, *relay.ChainState) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 2 {
			close(processed)
		}
		return fmt.Errorf("registry rejected the proof")
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- relay.NewRelayer(proofer, processor, time.Millisecond*10, time.Second, logger).Run(ctx)
	}()

	// a failed cycle must not kill the loop
	<-processed
	cancel()
	assert.NoError(t, <-done)
}
