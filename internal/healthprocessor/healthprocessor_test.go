package healthprocessor_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/healthprocessor"
	"github.com/timewave-computer/proof-relayer/internal/relay"
	mock_relay "github.com/timewave-computer/proof-relayer/testutil/mocks/relay"
)

func newTestProcessor(t *testing.T, storage *mock_relay.MockStorage) *healthprocessor.HealthProcessor {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	return healthprocessor.NewHealthProcessor(storage, logger)
}

func TestProcessRecordsFirstSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_relay.NewMockStorage(ctrl)
	p := newTestProcessor(t, storage)

	storage.EXPECT().GetLastSnapshot().Return(nil, false, nil)
	require.NoError(t, p.Restore())

	state := &relay.ChainState{Height: 100, Root: []byte{0xde, 0xad}}

	storage.EXPECT().SetLastSnapshot(gomock.Any()).DoAndReturn(
		func(snapshot *relay.HealthSnapshot) error {
			assert.Equal(t, state.Height, snapshot.Height)
			assert.Equal(t, state.Root, snapshot.Root)
			assert.False(t, snapshot.RecordedAt.IsZero())
			return nil
		})

	require.NoError(t, p.Process(context.Background(), state))
}

func TestProcessSkipsUnchangedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_relay.NewMockStorage(ctrl)
	p := newTestProcessor(t, storage)

	recorded := &relay.HealthSnapshot{Height: 100, Root: []byte{0xde, 0xad}}
	storage.EXPECT().GetLastSnapshot().Return(recorded, true, nil)
	require.NoError(t, p.Restore())

	// same height and root as the restored snapshot, no write expected
	state := &relay.ChainState{Height: 100, Root: []byte{0xde, 0xad}}
	require.NoError(t, p.Process(context.Background(), state))
}

func TestProcessRecordsHeightRegression(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_relay.NewMockStorage(ctrl)
	p := newTestProcessor(t, storage)

	storage.EXPECT().GetLastSnapshot().Return(nil, false, nil)
	require.NoError(t, p.Restore())

	var heights []uint64
	storage.EXPECT().SetLastSnapshot(gomock.Any()).DoAndReturn(
		func(snapshot *relay.HealthSnapshot) error {
			heights = append(heights, snapshot.Height)
			return nil
		}).Times(2)

	root := []byte{0xde, 0xad}
	for _, height := range []uint64{100, 100, 80} {
		state := &relay.ChainState{Height: height, Root: root}
		require.NoError(t, p.Process(context.Background(), state))
	}

	// the rollback is recorded like any other change
	assert.Equal(t, []uint64{100, 80}, heights)
}

func TestProcessReturnsPersistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_relay.NewMockStorage(ctrl)
	p := newTestProcessor(t, storage)

	storage.EXPECT().GetLastSnapshot().Return(nil, false, nil)
	require.NoError(t, p.Restore())

	state := &relay.ChainState{Height: 100, Root: []byte{0xde, 0xad}}

	firstWrite := storage.EXPECT().SetLastSnapshot(gomock.Any()).Return(fmt.Errorf("leveldb: closed"))
	storage.EXPECT().SetLastSnapshot(gomock.Any()).Return(nil).After(firstWrite)

	err := p.Process(context.Background(), state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist health snapshot")

	// nothing was recorded, the same state is retried on the next cycle
	require.NoError(t, p.Process(context.Background(), state))
}

func TestRestoreFailsOnCorruptedSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock_relay.NewMockStorage(ctrl)
	p := newTestProcessor(t, storage)

	storage.EXPECT().GetLastSnapshot().Return(nil, false, fmt.Errorf("%w: unexpected end of JSON input", relay.ErrCorrupted))

	err := p.Restore()
	require.Error(t, err)
	assert.ErrorIs(t, err, relay.ErrCorrupted)
}
