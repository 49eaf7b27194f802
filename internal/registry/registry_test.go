package registry_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/registry"
	"github.com/timewave-computer/proof-relayer/internal/relay"
)

func TestSubmitProofPostsExpectedBody(t *testing.T) {
	var got struct {
		Proof        string `json:"proof"`
		PublicValues string `json:"public_values"`
		VK           string `json:"vk"`
	}
	var contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := registry.NewClient(server.URL+"/api/submit-proof", "0xabc123", time.Second, zap.NewNop())
	require.NoError(t, err)

	record := &relay.ProofRecord{
		ProofData:    []byte{0xde, 0xad, 0xbe, 0xef},
		PublicValues: []byte{0x01, 0x02},
		RecordedAt:   time.Now(),
	}
	require.NoError(t, client.SubmitProof(context.Background(), record))

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, hex.EncodeToString(record.ProofData), got.Proof)
	assert.Equal(t, hex.EncodeToString(record.PublicValues), got.PublicValues)
	assert.Equal(t, "0xabc123", got.VK)
}

func TestSubmitProofOmitsEmptyVerificationKey(t *testing.T) {
	var raw map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := registry.NewClient(server.URL, "", time.Second, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, client.SubmitProof(context.Background(), &relay.ProofRecord{ProofData: []byte{0x01}}))

	assert.Contains(t, raw, "proof")
	assert.NotContains(t, raw, "vk")
}

func TestSubmitProofRejectedByRegistry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid proof", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client, err := registry.NewClient(server.URL, "", time.Second, zap.NewNop())
	require.NoError(t, err)

	err = client.SubmitProof(context.Background(), &relay.ProofRecord{ProofData: []byte{0x01}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid proof")
}

func TestSubmitProofRegistryUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := registry.NewClient(server.URL, "", time.Second, zap.NewNop())
	require.NoError(t, err)

	err = client.SubmitProof(context.Background(), &relay.ProofRecord{ProofData: []byte{0x01}})
	assert.Error(t, err)
}

func TestSubmitProofTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client, err := registry.NewClient(server.URL, "", 50*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	err = client.SubmitProof(context.Background(), &relay.ProofRecord{ProofData: []byte{0x01}})
	assert.Error(t, err)
}

func TestNewClientRejectsUnsupportedScheme(t *testing.T) {
	_, err := registry.NewClient("ftp://registry.local", "", time.Second, zap.NewNop())
	assert.Error(t, err)

	_, err = registry.NewClient("registry.local", "", time.Second, zap.NewNop())
	assert.Error(t, err)
}
