package helios

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/relay"
)

// the prover wraps the whole envelope into one hex string, cap what we are
// willing to decode
const maxEnvelopeBytes = 16 << 20

// proofEnvelope is the JSON document inside the prover's hex response. The
// prover lifts height and root out of the public values, the relayer never
// has to understand the proof itself.
type proofEnvelope struct {
	Proof        string `json:"proof"`
	PublicValues string `json:"public_values"`
	Height       uint64 `json:"height"`
	Root         string `json:"root"`
}

// Client fetches the latest proof from a Helios SP1 prover. It implements
// relay.Proofer.
type Client struct {
	endpoint *url.URL
	client   http.Client
	logger   *zap.Logger
}

// NewClient takes the prover endpoint in <scheme>://<host>[:<port>][/path]
// form, e.g. http://127.0.0.1:7778/.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint parsing error: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported prover endpoint scheme %q", u.Scheme)
	}

	return &Client{
		endpoint: u,
		client: http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// FetchLatestState GETs the prover endpoint and decodes the hex wrapped
// proof envelope.
func (c *Client) FetchLatestState(ctx context.Context) (*relay.ChainState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make http request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("got unexpected http response status code: %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxEnvelopeBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	raw, err := hex.DecodeString(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex response: %w", err)
	}

	var envelope proofEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal proof envelope: %w", err)
	}

	payload, err := decodeHexField("proof", envelope.Proof)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("proof envelope carries an empty proof")
	}

	publicValues, err := decodeHexField("public_values", envelope.PublicValues)
	if err != nil {
		return nil, err
	}

	root, err := decodeHexField("root", envelope.Root)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched proof envelope from prover",
		zap.Uint64("height", envelope.Height),
		zap.Int("proof_size", len(payload)))

	return &relay.ChainState{
		Payload:      payload,
		PublicValues: publicValues,
		Height:       envelope.Height,
		Root:         root,
		ObservedAt:   time.Now(),
	}, nil
}

// decodeHexField decodes a hex envelope field with an optional 0x prefix.
func decodeHexField(name, value string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s field: %w", name, err)
	}
	return data, nil
}
