package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"

	circuit "github.com/rubyist/circuitbreaker"
)

// Client talks to the upstream hotel gateway: the REST backend that owns
// rooms, bookings, payments and users. Every call goes through a circuit
// breaker so a dead backend degrades pages instead of hanging them.
type Client struct {
	baseURL string
	http    *circuit.HTTPClient
	logger  *slog.Logger
}

func NewClient(cfg config.GatewayConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    circuit.NewHTTPClient(cfg.Timeout, cfg.BreakerThreshold, nil),
		logger:  logger,
	}
}

// get and post run one gateway round trip and decode the uniform envelope.
// A transport failure, an open breaker, or a non-success statusCode in the
// body all come back as a typed *Error; callers never see raw HTTP detail.

func (c *Client) get(ctx context.Context, path, token string) (*envelope, error) {
	return c.do(ctx, http.MethodGet, path, token, nil)
}

func (c *Client) post(ctx context.Context, path, token string, body any) (*envelope, error) {
	return c.do(ctx, http.MethodPost, path, token, body)
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, NewError(KindValidation, "", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, NewError(KindUnavailable, "", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("gateway call failed", "method", method, "path", path, "error", err)
		return nil, NewError(KindUnavailable, "", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		c.logger.Warn("gateway response decode failed", "path", path, "error", decodeErr)
		return nil, NewError(KindUnavailable, "", decodeErr)
	}

	// The body's statusCode is the contract; fall back to the HTTP status
	// when the body carries none.
	status := env.StatusCode
	if status == 0 {
		status = resp.StatusCode
	}
	if status != http.StatusOK {
		gerr := classifyStatus(status, env.Message)
		c.logger.Warn("gateway returned failure",
			"method", method, "path", path, "status", status, "kind", gerr.Kind)
		return nil, gerr
	}

	return &env, nil
}
