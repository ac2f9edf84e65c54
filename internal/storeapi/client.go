// Package storeapi fetches and parses Steam store appdetails responses.
package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lepinkainen/storeview/internal/cache"
	storeerrors "github.com/lepinkainen/storeview/internal/errors"
	"github.com/lepinkainen/storeview/internal/ratelimit"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL       = "http://store.steampowered.com"
	defaultLanguage      = "en"
	defaultUserAgent     = "storeview/1.0"
	defaultTimeout       = 30 * time.Second
	defaultRatePerSecond = 1 // the store endpoint starts answering 429 quickly
	appDetailsPath       = "/api/appdetails/"
)

// ErrInvalidAppID is returned for app IDs that are not positive integers.
var ErrInvalidAppID = errors.New("invalid app id")

// Client fetches appdetails documents from the Steam store API.
type Client struct {
	baseURL     string
	language    string
	userAgent   string
	timeout     time.Duration
	httpClient  *http.Client
	rateLimiter *ratelimit.Limiter
	cache       *cache.CacheDB
	cacheTTL    time.Duration
	rest        *resty.Client
	now         func() time.Time
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the store API.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithLanguage sets the "l" query parameter.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(c *Client) {
		if limiter != nil {
			c.rateLimiter = limiter
		}
	}
}

// WithCache stores successful responses in db for ttl.
func WithCache(db *cache.CacheDB, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = db
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient creates a new store API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		language:    defaultLanguage,
		userAgent:   defaultUserAgent,
		timeout:     defaultTimeout,
		httpClient:  &http.Client{},
		rateLimiter: ratelimit.New("steam-store", defaultRatePerSecond, 1),
		cacheTTL:    cache.DefaultTTL,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest = resty.NewWithClient(c.httpClient).
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Accept", "application/json")

	return c
}

// AppDetails fetches and parses the store entry for appID.
func (c *Client) AppDetails(ctx context.Context, appID int) (*AppDetails, error) {
	body, err := c.FetchAppDetails(ctx, appID)
	if err != nil {
		return nil, err
	}
	return ParseAppDetails(body, appID)
}

// FetchAppDetails returns the raw appdetails body for appID, from cache when
// a fresh successful response is stored.
func (c *Client) FetchAppDetails(ctx context.Context, appID int) ([]byte, error) {
	if appID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAppID, appID)
	}

	key := fmt.Sprintf("%d:%s", appID, c.language)
	body, fromCache, err := cache.GetOrFetch(c.cache, cache.AppDetailsTable, key, c.cacheTTL,
		func() (json.RawMessage, error) {
			return c.fetch(ctx, appID)
		},
		func(body json.RawMessage) bool {
			return gjson.GetBytes(body, strconv.Itoa(appID)+".success").Type == gjson.True
		},
	)
	if err != nil {
		return nil, err
	}

	slog.Debug("Fetched app details", "appid", appID, "from_cache", fromCache, "bytes", len(body))
	return body, nil
}

func (c *Client) fetch(ctx context.Context, appID int) (json.RawMessage, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, storeerrors.NewFetchError(appID, 0, err)
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"appids": strconv.Itoa(appID),
			"l":      c.language,
		}).
		Get(appDetailsPath)
	if err != nil {
		return nil, storeerrors.NewFetchError(appID, 0, err)
	}

	body := resp.Body()

	switch status := resp.StatusCode(); {
	case status == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header().Get("Retry-After"), c.now())
		return nil, storeerrors.NewRateLimitErrorWithRetry(
			fmt.Sprintf("store API rate limited app %d", appID), retryAfter)
	case status < 200 || status >= 300:
		return nil, storeerrors.NewFetchError(appID, status, fmt.Errorf("unexpected status: %s", snippet(body)))
	}

	if !gjson.ValidBytes(body) {
		return nil, storeerrors.NewFetchError(appID, resp.StatusCode(), fmt.Errorf("malformed response: %s", snippet(body)))
	}

	return json.RawMessage(body), nil
}

// parseRetryAfter understands both delta-seconds and HTTP-date forms.
func parseRetryAfter(header string, now time.Time) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
