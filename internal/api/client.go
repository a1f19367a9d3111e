package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"walletgg/internal/domain"
)

const (
	// DefaultUserAgent identifies the client to the API.
	DefaultUserAgent = "walletgg-cli/1.0"
	// DefaultTimeout bounds a single request when no timeout is configured.
	DefaultTimeout = 30 * time.Second

	maxBody      = 8 << 20
	maxErrorBody = 4 << 10
)

// Client dispatches JSON calls against one base address.
type Client struct {
	base      *url.URL
	http      *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
	schemas   *schemaSet
	log       logrus.FieldLogger
	creds     domain.CredentialProvider // nil for the anonymous client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit caps outbound requests at rps with the given burst. The limit
// is shared by the anonymous and credential-aware clients.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// New returns the anonymous client for baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api url %q: want an absolute http(s) url", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		base:      u,
		http:      &http.Client{},
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		schemas:   endpointSchemas(),
		log:       logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// NewClients builds the anonymous and the credential-aware client in one go.
func NewClients(baseURL string, p domain.CredentialProvider, opts ...Option) (anon, auth *Client, err error) {
	anon, err = New(baseURL, opts...)
	if err != nil {
		return nil, nil, err
	}
	return anon, anon.WithCredentials(p), nil
}

// WithCredentials returns a credential-aware sibling of c sharing its
// transport, limiter and schemas.
func (c *Client) WithCredentials(p domain.CredentialProvider) *Client {
	cp := *c
	cp.creds = p
	return &cp
}

// Base returns the base address.
func (c *Client) Base() string { return c.base.String() }

// Authenticated reports whether the client attaches credentials.
func (c *Client) Authenticated() bool { return c.creds != nil }

// Get decodes the JSON body of GET path into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	b, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.decode(http.MethodGet, path, b, out)
}

// GetRaw returns the validated body of GET path.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post sends in as JSON and decodes the response into out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	b, err := c.do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPost, path, b, out)
}

// Put sends in as JSON and decodes the response into out when out is non-nil.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	b, err := c.do(ctx, http.MethodPut, path, nil, in)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPut, path, b, out)
}

// Delete issues DELETE path and discards the body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	reqID := uuid.NewString()
	fail := func(kind domain.ErrorKind, err error) error {
		return &domain.APIError{Kind: kind, Method: method, Path: path, RequestID: reqID, Err: err}
	}

	// The header is derived here, per call, from the live credential.
	var authorization string
	if c.creds != nil {
		cred, ok := c.creds.Credential()
		if !ok || !cred.Valid() {
			return nil, fmt.Errorf("api %s %s: %w", method, path, domain.ErrNotAuthenticated)
		}
		authorization = cred.AuthorizationHeader()
	}

	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, query), body)
	if err != nil {
		return nil, fail(domain.KindTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fail(domain.KindTransport, err)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail(domain.KindTransport, err)
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"request_id": reqID,
		"elapsed":    time.Since(start).Round(time.Millisecond),
	}).Debug("api call")

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.APIError{
			Kind:      domain.KindServer,
			Method:    method,
			Path:      path,
			Status:    resp.StatusCode,
			Body:      strings.TrimSpace(string(b)),
			RequestID: reqID,
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fail(domain.KindTransport, err)
	}
	if err := c.schemas.validate(method, path, b); err != nil {
		return nil, fail(domain.KindDecode, err)
	}
	return b, nil
}

func (c *Client) decode(method, path string, b []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &domain.APIError{Kind: domain.KindDecode, Method: method, Path: path, Err: err}
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := c.base.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

var _ domain.APIClient = (*Client)(nil)
