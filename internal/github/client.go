package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.github.com"
	DefaultTimeout = 5 * time.Second

	DefaultMaxBodyBytes = 10 << 20

	instrumentationName = "ctchen222/gists-api/internal/github"
)

// ErrBodyTooLarge is wrapped by a KindMalformed error when a 200 body exceeds
// the client's size limit.
var ErrBodyTooLarge = errors.New("response body exceeds size limit")

var tracer = otel.Tracer(instrumentationName)

//go:generate mockgen -destination=../api/service/mocks/mock_gist_fetcher.go -package=mocks ctchen222/gists-api/internal/github GistFetcher

// GistFetcher lists the public gists of a GitHub user.
type GistFetcher interface {
	ListUserGists(ctx context.Context, username string) ([]Gist, error)
}

// Client calls the GitHub REST API without authentication and without
// retries. Each ListUserGists call issues exactly one request.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	maxBodyBytes int64

	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its Timeout is
// overwritten by the timeout passed to NewClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxBodyBytes caps how much of a response body is read. Larger 200
// bodies fail with ErrBodyTooLarge.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// NewClient creates a Client rooted at baseURL. Every request is bounded by
// timeout, which covers connecting, waiting for headers and reading the body.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		maxBodyBytes: DefaultMaxBodyBytes,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Timeout = timeout

	meter := otel.Meter(instrumentationName)
	// Instrument creation only fails on invalid names; fall back to no-op
	// instruments in that case.
	var err error
	c.requests, err = meter.Int64Counter("github.gists.requests",
		metric.WithDescription("Calls to the GitHub gists endpoint by outcome."))
	if err != nil {
		otel.Handle(err)
	}
	c.latency, err = meter.Float64Histogram("github.gists.duration",
		metric.WithDescription("Latency of calls to the GitHub gists endpoint."),
		metric.WithUnit("s"))
	if err != nil {
		otel.Handle(err)
	}

	return c
}

// ListUserGists performs GET {baseURL}/users/{username}/gists and returns the
// decoded gists in upstream order. Classified failures are returned as *Error.
func (c *Client) ListUserGists(ctx context.Context, username string) ([]Gist, error) {
	ctx, span := tracer.Start(ctx, "github.ListUserGists", trace.WithAttributes(
		attribute.String("github.username", username),
	))
	defer span.End()

	start := time.Now()
	gists, err := c.listUserGists(ctx, username)

	outcome := "ok"
	var ghErr *Error
	if errors.As(err, &ghErr) {
		outcome = ghErr.Kind.String()
	} else if err != nil {
		outcome = "decode_error"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	if c.requests != nil {
		c.requests.Add(ctx, 1, attrs)
	}
	if c.latency != nil {
		c.latency.Record(ctx, time.Since(start).Seconds(), attrs)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}
	span.SetAttributes(attribute.Int("github.gists.count", len(gists)))
	return gists, nil
}

func (c *Client) listUserGists(ctx context.Context, username string) ([]Gist, error) {
	endpoint := fmt.Sprintf("%s/users/%s/gists", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gists request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(username, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &Error{Kind: KindUserNotFound, Username: username, StatusCode: resp.StatusCode}
	case http.StatusForbidden:
		return nil, &Error{Kind: KindRateLimited, Username: username, StatusCode: resp.StatusCode}
	default:
		// Body is for logging only; a read failure here does not change the outcome.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
		return nil, &Error{Kind: KindUpstreamStatus, Username: username, StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Read one byte past the limit so an oversized body is detected rather
	// than truncated into invalid JSON.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, classifyTransportError(username, err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, &Error{Kind: KindMalformed, Username: username, StatusCode: resp.StatusCode, Err: ErrBodyTooLarge}
	}

	listing, err := decodeListing(body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Username: username, StatusCode: resp.StatusCode, Err: err}
	}
	if !listing.IsList {
		return nil, &Error{Kind: KindMalformed, Username: username, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return listing.Gists()
}

func classifyTransportError(username string, err error) *Error {
	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Username: username, Err: err}
	}
	return &Error{Kind: KindTransport, Username: username, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
