package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/telemetry"
)

// DefaultTimeout bounds every remote call that does not carry a tighter
// context deadline.
const DefaultTimeout = 30 * time.Second

var (
	// ErrUnreachable marks transport-level failures: connection refused,
	// DNS errors, timeouts. Callers may retry these when the call is
	// idempotent; the client itself never retries.
	ErrUnreachable = errors.New("remote service unreachable")

	// ErrRejected marks application-level failures: the collaborator
	// answered with a non-success status.
	ErrRejected = errors.New("remote service rejected the request")
)

// Client issues typed JSON request/response calls to a collaborator
// service. Absence (HTTP 404) is reported explicitly, not as an error;
// it becomes a domain error only in callers that require the entity.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the default per-call timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the service rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches the entity at path into out. The boolean reports whether the
// entity exists; (false, nil) means the remote answered with 404.
func (c *Client) Get(ctx context.Context, path string, out any) (bool, error) {
	status, err := c.do(ctx, http.MethodGet, path, nil, out)
	if err != nil {
		return false, err
	}
	return status != http.StatusNotFound, nil
}

// Post sends body to path and decodes the response into out (if non-nil)
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	status, err := c.do(ctx, http.MethodPost, path, body, out)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return errors.Wrapf(ErrRejected, "POST %s: status 404", path)
	}
	return nil
}

// Put sends body to path and decodes the response into out (if non-nil).
// A 404 on a mutation is a rejection: the target must already exist.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	status, err := c.do(ctx, http.MethodPut, path, body, out)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return errors.Wrapf(ErrRejected, "PUT %s: status 404", path)
	}
	return nil
}

// Delete removes the entity at path. The boolean reports whether the
// entity existed.
func (c *Client) Delete(ctx context.Context, path string) (bool, error) {
	status, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return false, err
	}
	return status != http.StatusNotFound, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	url := c.baseURL + path

	ctx, span := telemetry.StartSpan(ctx, "remote "+method+" "+path,
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", url),
		),
	)
	defer span.End()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrapf(ErrUnreachable, "%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, errors.Wrapf(ErrRejected, "%s %s: status %d: %s",
			method, url, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			span.RecordError(err)
			return resp.StatusCode, errors.Wrapf(ErrRejected, "%s %s: undecodable response: %v", method, url, err)
		}
	}

	return resp.StatusCode, nil
}
