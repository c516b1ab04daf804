package api

// Package api implements the HTTP client for the Healteex backend REST API.
// It owns request construction, authorization headers, JSON codec concerns,
// and normalization of error responses into apperr values.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/healteex/trackctl/internal/apperr"
)

// AuthScheme is the Authorization header scheme sent with authenticated
// requests. The JWT backend expects "Bearer"; the retired token backend used
// "Token".
type AuthScheme string

const (
	// AuthSchemeBearer is the JWT scheme.
	AuthSchemeBearer AuthScheme = "Bearer"
)

const requestIDHeader = "X-Request-ID"

// Options configures a Client.
type Options struct {
	// BaseURL is the API base every endpoint path is appended to.
	BaseURL string

	// Scheme is the authorization scheme. Defaults to Bearer.
	Scheme AuthScheme

	// HTTPClient overrides the transport. Defaults to a 30s-timeout client.
	HTTPClient *http.Client
}

// Client performs requests against the Healteex backend.
type Client struct {
	baseURL string
	scheme  AuthScheme
	http    *http.Client
}

// NewClient builds an API client. Callers should pass a sanitized base URL.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")

	scheme := opts.Scheme
	if scheme == "" {
		scheme = AuthSchemeBearer
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: baseURL,
		scheme:  scheme,
		http:    hc,
	}
}

// request groups the inputs for a single API call.
type request struct {
	method string
	path   string
	token  string
	body   any
	// skipJSON suppresses response decoding even on 200s with a body.
	skipJSON bool
}

// do performs the request and decodes the JSON response into out when out is
// non-nil. A 204 response or skipJSON leaves out untouched.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var bodyReader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return apperr.Wrap(err, apperr.ErrCodeInternal, "encode request body")
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return apperr.Wrap(err, apperr.ErrCodeInternal, "create request")
	}

	if req.token != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("%s %s", c.scheme, req.token))
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return apperr.Transport(err, "unable to reach API")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if req.skipJSON || resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return apperr.Wrap(decodeErr, apperr.ErrCodeInternal, "decode response body")
	}
	return nil
}

// errorFromResponse turns a non-2xx response into an AppError carrying the
// most readable detail the body offers: the JSON "detail" field, then the
// whole JSON payload, then the raw text, then the HTTP status.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return apperr.RequestFailed(resp.StatusCode, resp.Status)
	}

	detail := extractDetail(raw)
	if detail == "" {
		detail = resp.Status
	}
	return apperr.RequestFailed(resp.StatusCode, detail)
}

// extractDetail pulls a human-readable message out of an error body.
func extractDetail(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Not a JSON object; surface the raw text.
		return trimmed
	}

	if detailRaw, ok := payload["detail"]; ok {
		var detail string
		if err := json.Unmarshal(detailRaw, &detail); err == nil && detail != "" {
			return detail
		}
	}

	// Field-keyed validation errors and other shapes surface whole.
	compact := &bytes.Buffer{}
	if err := json.Compact(compact, raw); err != nil {
		return trimmed
	}
	return compact.String()
}
