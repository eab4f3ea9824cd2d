// ABOUTME: REST request helper with bearer auth and typed error classification
// ABOUTME: Fetch/Create/Update/Delete plus JSON decoding variants

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/K25anjali/local-Konnect/internal/session"
)

// DefaultTimeout bounds a single request when no http.Client is supplied.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client talks to the REST backend on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Session
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for baseURL that authenticates as sess.
func New(baseURL string, sess session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		session: sess,
		logger:  slog.Default().With("component", "client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSession returns a copy of c that authenticates as sess.
func (c *Client) WithSession(sess session.Session) *Client {
	cp := *c
	cp.session = sess
	return &cp
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Fetch performs a GET with optional query parameters.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// Create performs a POST with a JSON body.
func (c *Client) Create(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Update performs a PUT with a JSON body. ":id" in path is replaced by id.
func (c *Client) Update(ctx context.Context, path, id string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, withID(path, id), body)
}

// Delete performs a DELETE. ":id" in path is replaced by id.
func (c *Client) Delete(ctx context.Context, path, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, withID(path, id), nil)
}

// FetchInto performs Fetch and decodes the response into out.
func (c *Client) FetchInto(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.Fetch(ctx, path, query)
	if err != nil {
		return err
	}
	return decode(http.MethodGet, path, raw, out)
}

// CreateInto performs Create and decodes the response into out.
func (c *Client) CreateInto(ctx context.Context, path string, body, out any) error {
	raw, err := c.Create(ctx, path, body)
	if err != nil {
		return err
	}
	return decode(http.MethodPost, path, raw, out)
}

// UpdateInto performs Update and decodes the response into out.
func (c *Client) UpdateInto(ctx context.Context, path, id string, body, out any) error {
	raw, err := c.Update(ctx, path, id, body)
	if err != nil {
		return err
	}
	return decode(http.MethodPut, path, raw, out)
}

// DeleteInto performs Delete and decodes the response into out.
func (c *Client) DeleteInto(ctx context.Context, path, id string, out any) error {
	raw, err := c.Delete(ctx, path, id)
	if err != nil {
		return err
	}
	return decode(http.MethodDelete, path, raw, out)
}

func withID(path, id string) string {
	return strings.ReplaceAll(path, ":id", url.PathEscape(id))
}

func decode(op, path string, raw json.RawMessage, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Op: op, Path: path, Kind: KindDecode, Err: err}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Present() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "method", method, "path", path, "error", err)
		return nil, &Error{Op: method, Path: path, Kind: KindUnreachable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Op:      method,
			Path:    path,
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: readMessage(resp.Body),
		}
		c.logger.Debug("api request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return nil, apiErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: method, Path: path, Kind: KindUnreachable, Status: resp.StatusCode, Err: err}
	}
	return json.RawMessage(data), nil
}

// readMessage extracts {"message": "..."} or {"error": "..."} from an error body.
func readMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
