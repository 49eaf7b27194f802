package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewave-computer/proof-relayer/internal/relay"
	"github.com/timewave-computer/proof-relayer/internal/storage"
)

func TestDummyStorageRoundtripAndReset(t *testing.T) {
	st := storage.NewDummyStorage()
	defer st.Close()

	_, found, err := st.GetLastProof()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.SetLastProof(&relay.ProofRecord{ProofData: []byte{0xaa}}))
	require.NoError(t, st.SetLastSnapshot(&relay.HealthSnapshot{Height: 100, Root: []byte{0xde}}))

	record, found, err := st.GetLastProof()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte{0xaa}, record.ProofData)

	snapshot, found, err := st.GetLastSnapshot()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(100), snapshot.Height)

	require.NoError(t, st.Reset())

	_, found, err = st.GetLastProof()
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = st.GetLastSnapshot()
	require.NoError(t, err)
	assert.False(t, found)
}
