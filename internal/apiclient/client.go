// Package apiclient reads the paginated hotel and flight listings of the
// catalog API.
package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/model"
	"github.com/meetupaws/travel_catalog/internal/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "http://localhost:8000/api"

var ErrUnexpectedStatus = errors.New("unexpected_status")

type Config struct {
	BaseURL string
	Timeout time.Duration
	// CacheTTL enables the page cache when positive.
	CacheTTL  time.Duration
	CacheSize int64
}

// ConfigFromEnv reads API_BASE, API_TIMEOUT and API_CACHE_TTL.
func ConfigFromEnv() Config {
	return Config{
		BaseURL:   internal.EnvOr("API_BASE", DefaultBaseURL),
		Timeout:   internal.DurationEnvOr("API_TIMEOUT", 5*time.Second),
		CacheTTL:  internal.DurationEnvOr("API_CACHE_TTL", 0),
		CacheSize: 500,
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *ccache.Cache[[]byte]
	cacheTTL   time.Duration
	logger     logrus.FieldLogger
}

func New(cfg Config, logger logrus.FieldLogger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cacheTTL: cfg.CacheTTL,
		logger:   logger.WithField("component", "apiclient"),
	}

	if cfg.CacheTTL > 0 {
		size := cfg.CacheSize
		if size <= 0 {
			size = 500
		}
		c.cache = ccache.New(ccache.Configure[[]byte]().MaxSize(size))
	}

	return c
}

// Close stops the cache worker, if any.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Stop()
	}
}

func (c *Client) ListHotels(ctx context.Context, page int) (model.HotelResponse, error) {
	return list(ctx, c, "hotels", page, schema.DecodeHotelResponse)
}

func (c *Client) ListFlights(ctx context.Context, page int) (model.FlightResponse, error) {
	return list(ctx, c, "flights", page, schema.DecodeFlightResponse)
}

// list fetches and decodes one page. Only pages that decode are cached.
func list[T model.Entity](
	ctx context.Context,
	c *Client,
	resource string,
	page int,
	decode func([]byte) (model.ListResponse[T], error),
) (model.ListResponse[T], error) {
	pageURL, body, cached, err := c.get(ctx, resource, page)
	if err != nil {
		return model.ListResponse[T]{}, err
	}

	r, err := decode(body)
	if err != nil {
		return model.ListResponse[T]{}, errors.Wrapf(err, "decoding %s page %d", resource, page)
	}

	if c.cache != nil && !cached {
		c.cache.Set(pageURL, body, c.cacheTTL)
	}
	return r, nil
}

// WalkHotels calls fn for every page of hotels, starting at page 1.
func (c *Client) WalkHotels(ctx context.Context, fn func(model.HotelResponse) error) error {
	return walk(ctx, c.ListHotels, fn)
}

// WalkFlights calls fn for every page of flights, starting at page 1.
func (c *Client) WalkFlights(ctx context.Context, fn func(model.FlightResponse) error) error {
	return walk(ctx, c.ListFlights, fn)
}

func walk[T model.Entity](
	ctx context.Context,
	fetch func(context.Context, int) (model.ListResponse[T], error),
	fn func(model.ListResponse[T]) error,
) error {
	page := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := fetch(ctx, page)
		if err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}

		next, ok := r.NextPage()
		if !ok || next <= page || next > r.Data.LastPage {
			return nil
		}
		page = next
	}
}

func (c *Client) pageURL(resource string, page int) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + resource)
	if err != nil {
		return "", errors.Wrap(err, "invalid base URL")
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, resource string, page int) (string, []byte, bool, error) {
	pageURL, err := c.pageURL(resource, page)
	if err != nil {
		return "", nil, false, err
	}
	logger := c.logger.WithField("url", pageURL)

	if c.cache != nil {
		if item := c.cache.Get(pageURL); item != nil && !item.Expired() {
			logger.Debug("page cache hit")
			return pageURL, item.Value(), true, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", nil, false, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, false, errors.Wrapf(err, "requesting %s", pageURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, false, errors.Wrapf(err, "reading %s", pageURL)
	}

	logger.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("page fetched")

	if resp.StatusCode != http.StatusOK {
		return "", nil, false, errors.Wrapf(ErrUnexpectedStatus, "%s returned %d: %s", pageURL, resp.StatusCode, truncate(body, 256))
	}

	return pageURL, body, false, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
