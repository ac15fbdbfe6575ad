// Package backend is the HTTP transport to the rental backend. Each method
// maps to one endpoint; failures are returned unmodified as *domain.APIError
// or as wrapped transport errors. There are no retries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/pkg/metrics"
	"github.com/tedcar/rental-console/internal/pkg/requestid"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 4 << 20
	maxDetailLength = 512
)

// Config captures how to reach the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the rental backend.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger zerolog.Logger
}

func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend url %q: scheme must be http or https", cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{base: base, http: hc, logger: logger}, nil
}

// Ping checks that the backend root answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, call{op: "ping", method: http.MethodGet, path: "/"}, nil)
}

type call struct {
	op          string
	method      string
	path        string
	query       url.Values
	cred        domain.Credential
	body        []byte
	contentType string
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	u := c.base.JoinPath(cl.path)
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if cl.cred != "" {
		req.Header.Set("Authorization", cl.cred.Header())
	}
	rid := requestid.From(ctx)
	req.Header.Set(requestid.Header, rid)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(cl.op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(cl.op, "error").Inc()
		c.logger.Debug().Err(err).Str("op", cl.op).Str("request_id", rid).Msg("backend request failed")
		return fmt.Errorf("%s: %w", cl.op, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestsTotal.WithLabelValues(cl.op, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", cl.op, err)
	}

	c.logger.Debug().
		Str("op", cl.op).
		Str("method", cl.method).
		Str("path", u.Path).
		Int("status", resp.StatusCode).
		Bool("authenticated", cl.cred != "").
		Str("request_id", rid).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", cl.op, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, cl call, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", cl.op, err)
	}
	cl.body = payload
	cl.contentType = "application/json"
	return c.do(ctx, cl, out)
}

// newAPIError keeps the backend's detail message. FastAPI-style bodies carry
// {"detail": "..."} or, for validation failures, {"detail": [...]}.
func newAPIError(status int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{StatusCode: status, Body: body}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if json.Unmarshal(envelope.Detail, &s) == nil {
			apiErr.Detail = s
		} else {
			apiErr.Detail = string(envelope.Detail)
		}
	} else {
		apiErr.Detail = strings.TrimSpace(string(body))
	}

	if len(apiErr.Detail) > maxDetailLength {
		apiErr.Detail = apiErr.Detail[:maxDetailLength]
	}
	return apiErr
}
