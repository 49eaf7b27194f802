package registry

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/timewave-computer/proof-relayer/internal/relay"
)

// responses are only logged, anything beyond this is noise
const maxResponseBytes = 1 << 20

// proofSubmission mirrors the JSON body the registry expects.
type proofSubmission struct {
	Proof        string `json:"proof"`
	PublicValues string `json:"public_values"`
	VK           string `json:"vk,omitempty"`
}

// Client submits proofs to the registry over HTTP. It implements
// relay.Submitter and performs exactly one attempt per call, the polling
// cycle is the retry loop.
type Client struct {
	endpoint        *url.URL
	verificationKey string
	client          http.Client
	logger          *zap.Logger
}

// NewClient takes the registry endpoint in <scheme>://<host>[:<port>][/path]
// form, e.g. https://prover.example.com/api/submit-proof.
func NewClient(endpoint string, verificationKey string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint parsing error: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported registry endpoint scheme %q", u.Scheme)
	}

	return &Client{
		endpoint:        u,
		verificationKey: verificationKey,
		client: http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// SubmitProof posts the record to the registry. A nil error means the
// registry confirmed the submission with a 2xx status.
func (c *Client) SubmitProof(ctx context.Context, record *relay.ProofRecord) error {
	submission := proofSubmission{
		Proof:        hex.EncodeToString(record.ProofData),
		PublicValues: hex.EncodeToString(record.PublicValues),
		VK:           c.verificationKey,
	}

	body, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal proof submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make http request: %w", err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("got unexpected http response status code: %d (%s)",
			res.StatusCode, bytes.TrimSpace(responseBody))
	}

	c.logger.Debug("registry accepted proof submission",
		zap.Int("status_code", res.StatusCode),
		zap.ByteString("response", bytes.TrimSpace(responseBody)))

	return nil
}
