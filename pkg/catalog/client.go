package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kubev2v/dexkeeper/internal/metrics"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

const (
	DefaultBaseURL  = "https://pokeapi.co/api/v2"
	DefaultResource = "pokemon"

	endpointPage   = "page"
	endpointDetail = "detail"
)

// Client reads the remote catalog. It has no retry policy; callers decide
// whether a failed request is worth repeating.
type Client struct {
	baseURL    *url.URL
	resource   string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
}

type Option func(*Client)

// WithHTTPClient sets the client used for requests. Timeouts are taken from it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithRateLimit spaces requests to at most rps per second. A non-positive rps disables limiting.
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

func WithResource(resource string) Option {
	return func(c *Client) {
		c.resource = strings.Trim(resource, "/")
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		resource:   DefaultResource,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchPage lists limit entries starting at offset.
// GET {base}/{resource}?limit={limit}&offset={offset}
func (c *Client) FetchPage(ctx context.Context, limit, offset int) ([]Summary, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: c.resource})
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	var page pagePayload
	if err := c.getJSON(ctx, endpointPage, u.String(), &page); err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(page.Results))
	for _, r := range page.Results {
		summaries = append(summaries, Summary{Name: r.Name, DetailRef: r.URL})
	}
	return summaries, nil
}

// FetchDetail fetches the raw record behind a summary's detail reference.
// Relative references are resolved against the base url.
func (c *Client) FetchDetail(ctx context.Context, detailRef string) (*RawCreature, error) {
	ref, err := url.Parse(detailRef)
	if err != nil {
		return nil, srvErrors.NewValidationError("detailRef", fmt.Sprintf("invalid reference %q: %v", detailRef, err))
	}

	var raw RawCreature
	if err := c.getJSON(ctx, endpointDetail, c.baseURL.ResolveReference(ref).String(), &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, target string, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return srvErrors.NewRemoteUnreachableError(target, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")

	zap.S().Named("catalog_client").Debugw("fetch", "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRemote(endpoint, 0)
		return srvErrors.NewRemoteUnreachableError(target, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveRemote(endpoint, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return srvErrors.NewRemoteUnavailableError(target, resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", target, err)
	}
	return nil
}
