package webserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const getTimeout = time.Second * 5

// StatusClient provides high level methods to work with the relayer's
// webserver api.
type StatusClient struct {
	host   *url.URL
	client http.Client
}

// NewStatusClient takes a host as a single argument and returns a
// StatusClient in case of well formatted host arg. host format is
// <scheme>://<host>[:<port>], e.g. http://relayer.host:9999
func NewStatusClient(host string) (*StatusClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("host parsing error: %w", err)
	}

	u.Path = ""
	u.RawQuery = ""
	return &StatusClient{
		host: u,
		client: http.Client{
			Timeout: getTimeout,
		},
	}, nil
}

// GetHealth returns the latest health check data of a running relayer. The
// no_data answer comes back as a regular response with the corresponding
// status field.
func (c StatusClient) GetHealth() (*HealthResponse, error) {
	u := *c.host
	u.Path = HealthResource

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make http request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNotFound {
		return nil, fmt.Errorf("got unexpected http response status code: %d", res.StatusCode)
	}

	var health HealthResponse
	decoder := json.NewDecoder(res.Body)
	if err := decoder.Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &health, nil
}
