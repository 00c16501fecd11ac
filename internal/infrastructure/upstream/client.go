// Package upstream implements the HTTP clients for the geocoding,
// warehouse-locator and search APIs.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/metrics"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

var tracer = otel.Tracer("costco/upstream")

const component = "upstream"

// Upstream names used in errors, logs and metrics.
const (
	NameGeocode = "geocode"
	NameLocator = "warehouse locator"
	NameSearch  = "search"
)

// DefaultTimeout is the deadline applied to every outbound call.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps the upstream body kept for diagnostics.
const maxErrorBody = 200

// Config holds endpoints and the service-identifying credentials sent with every call.
type Config struct {
	GeocodeURL string
	LocatorURL string
	SearchURL  string

	Referer          string
	ClientIdentifier string
	APIKey           string
	UserAgent        string

	// Timeout applies per call (default 10s)
	Timeout time.Duration

	// Locale and SearchFilter are passed to the search API verbatim
	Locale       string
	SearchFilter string
}

// Observer receives one observation per outbound call.
type Observer interface {
	ObserveUpstream(upstream, outcome string, d time.Duration)
}

// Client performs JSON GET requests against the upstream APIs.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a new upstream client.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.SearchFilter == "" {
		cfg.SearchFilter = DefaultSearchFilter
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues a GET to rawURL with query params and decodes a 2xx JSON body into out.
// Every failure is returned as an UpstreamLookup AppError.
func (c *Client) getJSON(ctx context.Context, name, rawURL string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	log := logger.FromContext(ctx).WithComponent(component)

	ctx, span := tracer.Start(ctx, "upstream "+name)
	defer span.End()
	span.SetAttributes(attribute.String("upstream.name", name))

	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream(name, outcome, time.Since(start))
		}
	}()

	fail := func(o string, err *apperror.AppError) error {
		outcome = o
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Message)
		log.Warnw("upstream call failed",
			"upstream", name,
			"code", err.Code,
			"details", err.Details,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fail(metrics.OutcomeTransport, apperror.NewUpstreamLookup(name, 0, "", fmt.Errorf("parse url: %w", err)))
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fail(metrics.OutcomeTransport, apperror.NewUpstreamLookup(name, 0, "", err))
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", c.cfg.Timeout, err)
		}
		return fail(metrics.OutcomeTransport, apperror.NewUpstreamLookup(name, 0, "", err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fail(metrics.OutcomeHTTPError, apperror.NewUpstreamLookup(name, resp.StatusCode, string(body), nil))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(metrics.OutcomeDecode, apperror.NewUpstreamLookup(name, 0, "", fmt.Errorf("decode response: %w", err)))
	}

	log.Debugw("upstream call completed",
		"upstream", name,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.cfg.Referer != "" {
		req.Header.Set("Referer", c.cfg.Referer)
	}
	if c.cfg.ClientIdentifier != "" {
		req.Header.Set("client-identifier", c.cfg.ClientIdentifier)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
}
