package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/communityexpress/laundry-client/pkg/config"
	pkgerrors "github.com/communityexpress/laundry-client/pkg/errors"
	"github.com/communityexpress/laundry-client/pkg/logger"
	"github.com/communityexpress/laundry-client/pkg/metrics"
)

// TokenProvider supplies the bearer token attached to every request. An
// empty token means the call goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client performs authenticated JSON calls against the CommunityExpress API
// with centralized timeout handling and error normalization.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	logger  *logger.Logger
	metrics *metrics.APIClientMetrics
}

var (
	errBaseURLRequired = errors.New("api base url is required")
	errLoggerRequired  = errors.New("api logger is required")
)

// NewClient initializes the API client. tokens and apiMetrics may be nil.
func NewClient(cfg config.APIConfig, tokens TokenProvider, logg *logger.Logger, apiMetrics *metrics.APIClientMetrics) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errBaseURLRequired
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logg,
		metrics: apiMetrics,
	}, nil
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

type remoteErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "resolve session token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.IncFailure(method, path)
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return pkgerrors.Wrap(pkgerrors.CodeRemote, err, "request timed out")
		}
		return pkgerrors.Wrap(pkgerrors.CodeRemote, err, "request failed")
	}
	defer resp.Body.Close()

	c.metrics.ObserveDuration(method, path, time.Since(started))
	c.metrics.IncRequest(method, path, strconv.Itoa(resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeRemote, err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeFailure(ctx, method, path, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeParse, err, "decode response body")
	}
	return nil
}

func (c *Client) normalizeFailure(ctx context.Context, method, path string, status int, raw []byte) error {
	message := serverMessage(raw)
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	lctx := c.logger.WithFields(ctx, map[string]any{
		"method": method,
		"path":   path,
		"status": status,
	})
	c.logger.Warn(lctx, "remote call rejected")

	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.New(pkgerrors.CodeUnauthorized, message)
	case http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, message)
	default:
		return pkgerrors.New(pkgerrors.CodeRemote, message).
			WithDetails(map[string]int{"status": status})
	}
}

func serverMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var body remoteErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

func isTimeout(err error) bool {
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}
