// Package gateway wraps every outbound request to the reservation server.
// It injects the bearer credential, reads the whole response body regardless
// of status and collapses transport, decode and application failures into a
// single human-readable error message, so callers never branch on the kind
// of failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"oceandesk/internal/domain"
	"oceandesk/internal/metrics"
	"oceandesk/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options tune a single request. The zero value issues a GET without a body.
// Body, when set, must already be serialized JSON.
type Options struct {
	Method string
	Body   string
	Header http.Header
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     domain.TokenStore
	logger     *zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens domain.TokenStore, logger *zerolog.Logger) *Client {
	l := logger.With().Str("component", "gateway").Logger()
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     &l,
	}
}

// JSON issues one request and returns the decoded response object.
// An empty 2xx body decodes to an empty payload. A non-2xx response fails
// with the server's message field when one can be decoded, otherwise with a
// generic message embedding the status code. Failed requests are never
// retried.
func (c *Client) JSON(ctx context.Context, path string, opts Options) (models.Payload, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	requestID := uuid.New().String()
	l := c.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	var bodyReader io.Reader
	if opts.Body != "" {
		bodyReader = strings.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	for key, values := range opts.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	// The token is captured once per request: a logout racing with an
	// in-flight request never rewrites a header mid-flight.
	token, err := c.tokens.Get(ctx)
	if err != nil {
		l.Warn().Err(err).Msg("token store read failed, sending request unauthenticated")
		token = ""
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncAPIRequest(metricPath(path), "transport_failure")
		l.Error().Err(err).Msg("api request transport failure")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncAPIRequest(metricPath(path), "transport_failure")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	metrics.ObserveAPIRequest(metricPath(path), time.Since(start).Seconds())

	var data models.Payload
	var decodeErr error
	if len(bytes.TrimSpace(raw)) == 0 {
		data = models.Payload{}
	} else {
		decodeErr = json.Unmarshal(raw, &data)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.IncAPIRequest(metricPath(path), "failure")
		l.Debug().Int("status", resp.StatusCode).Msg("api request rejected")
		if decodeErr != nil {
			return nil, fmt.Errorf("request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		if msg := data.String("message"); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, fmt.Errorf("request failed (%d)", resp.StatusCode)
	}

	if decodeErr != nil {
		metrics.IncAPIRequest(metricPath(path), "decode_failure")
		return nil, fmt.Errorf("invalid server response: %s", strings.TrimSpace(string(raw)))
	}

	metrics.IncAPIRequest(metricPath(path), "success")
	l.Debug().Int("status", resp.StatusCode).Msg("api request ok")
	return data, nil
}

// metricPath collapses per-reservation paths to their prefix so metric
// labels stay low-cardinality.
func metricPath(path string) string {
	for _, prefix := range []string{models.PathReservations, models.PathBill} {
		if strings.HasPrefix(path, prefix+"/") {
			return prefix
		}
	}
	return path
}
