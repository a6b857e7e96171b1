package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	apperrors "praxis/internal/platform/errors"
	"praxis/internal/platform/id"
)

// maxBodyBytes caps response reads; the API returns small JSON documents.
const maxBodyBytes = 4 << 20

// ServerError is a non-2xx response carrying the API's error envelope.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

func (e *ServerError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	}
	return nil
}

// Client issues JSON requests against the API base URL. Credentials travel
// as a cookie held by the persistent jar; every request and response is
// logged with a correlation id.
type Client struct {
	base *url.URL
	http *http.Client
	jar  *PersistentJar
	log  *zap.Logger
	ids  id.Generator
}

func New(baseURL, jarPath string, log *zap.Logger, ids id.Generator) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	jar, err := NewPersistentJar(jarPath, base)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: base,
		http: &http.Client{Jar: jar},
		jar:  jar,
		log:  log,
		ids:  ids,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

// ClearCredentials wipes the cookie jar. Used by logout, which must leave
// the client unauthenticated regardless of what the server said.
func (c *Client) ClearCredentials() error {
	return c.jar.Clear()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := *c.base
	target.Path = c.base.Path + path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := c.ids.New()
	start := time.Now()
	c.log.Info("api request",
		zap.String("request_id", reqID),
		zap.String("method", method),
		zap.String("url", target.String()),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("api transport failure",
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Error("api read failure",
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	c.log.Info("api response",
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Message: decodeErrorMessage(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBadResponse, err)
	}
	return nil
}

// decodeErrorMessage pulls the message out of the {"error": "..."} envelope.
// Anything else yields an empty message and the status speaks for itself.
func decodeErrorMessage(raw []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Error
}

// MessageFor converts any request error into the string shown to the user.
// Server-provided messages win; everything else gets a stable fallback.
func MessageFor(err error, fallback string) string {
	var srvErr *ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}
	return fallback
}
