// Package duui is a REST client for DUUI analysis components. Every
// component exposes the same surface: GET /v1/typesystem as a liveness probe
// and POST /v1/process for the actual workload. Payload shapes differ per
// component and live in sentiment.go, hatecheck.go and factcheck.go.
package duui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Component is a client for a single DUUI component endpoint.
type Component struct {
	name         string
	baseURL      string
	probeTimeout time.Duration
	timeout      time.Duration
	httpClient   *http.Client
}

// NewComponent creates a client for one component. probeTimeout bounds the
// liveness check, timeout bounds a single process call. There are no retries:
// a failed call is reported once and never re-attempted.
func NewComponent(name, baseURL string, probeTimeout, timeout time.Duration) *Component {
	return &Component{
		name:         name,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		probeTimeout: probeTimeout,
		timeout:      timeout,
		httpClient:   &http.Client{},
	}
}

// Name returns the component name used in progress output.
func (c *Component) Name() string {
	return c.name
}

// URL returns the component base URL.
func (c *Component) URL() string {
	return c.baseURL
}

// Probe checks component liveness. It succeeds iff GET /v1/typesystem
// answers HTTP 200 within the probe timeout.
func (c *Component) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1/typesystem", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe %s: HTTP %d", c.baseURL, resp.StatusCode)
	}
	return nil
}

// Process POSTs payload as JSON to /v1/process and decodes the response into
// out. Non-200 statuses and transport errors are returned as errors; a call
// exceeding the component timeout is reported with a timeout error
// (see IsTimeout).
func (c *Component) Process(ctx context.Context, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1/process", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: HTTP %d: %s", c.name, resp.StatusCode, truncateBody(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// IsTimeout reports whether err means the per-call timeout fired, as opposed
// to a bad status or transport failure. The distinction matters to the
// orchestrator: only fact-check timeouts trigger the local fallback.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncateBody(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
