// Package fortnite is the client for the public Fortnite cosmetics API.
// It owns request de-duplication, response caching and the typed error
// taxonomy; the pure presentation logic lives in internal/shop.
package fortnite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/knoxval/fortshop/internal/cache"
	"github.com/knoxval/fortshop/internal/httputil"
	"github.com/knoxval/fortshop/internal/models"
	"github.com/knoxval/fortshop/internal/ui"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public cosmetics API root.
const DefaultBaseURL = "https://fortnite-api.com"

const (
	defaultLanguage = "en"
	defaultTimeout  = 9 * time.Second
	defaultCacheTTL = 5 * time.Minute
	defaultRetries  = 2
)

// Options configure a Client. Zero fields take defaults.
type Options struct {
	BaseURL        string
	Language       string
	HTTPClient     *http.Client
	Cache          cache.Cache
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	MaxRetries     int
	MaxConcurrent  int
}

// Client talks to the cosmetics API. Concurrent callers asking for the
// same URL share one in-flight request via singleflight; fresh
// responses are reused from the cache until their TTL lapses.
type Client struct {
	http          *http.Client
	baseURL       string
	language      string
	cache         cache.Cache
	cacheTTL      time.Duration
	timeout       time.Duration
	maxRetries    int
	maxConcurrent int
	group         singleflight.Group
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		http:          opts.HTTPClient,
		baseURL:       opts.BaseURL,
		language:      opts.Language,
		cache:         opts.Cache,
		cacheTTL:      opts.CacheTTL,
		timeout:       opts.RequestTimeout,
		maxRetries:    opts.MaxRetries,
		maxConcurrent: opts.MaxConcurrent,
	}
	if c.http == nil {
		c.http = httputil.NewHTTPClient(nil)
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.language == "" {
		c.language = defaultLanguage
	}
	if c.cacheTTL <= 0 {
		c.cacheTTL = defaultCacheTTL
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.maxRetries == 0 {
		c.maxRetries = defaultRetries
	}
	if c.maxConcurrent <= 0 {
		c.maxConcurrent = 5
	}
	return c
}

// envelope is the {status, data} wrapper every endpoint answers with.
type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Shop fetches the current item-shop snapshot.
func (c *Client) Shop(ctx context.Context) (*models.ShopData, error) {
	body, err := c.getJSON(ctx, "/v2/shop", url.Values{"language": {c.language}})
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var data models.ShopData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, newError(KindMalformed, "shop payload has unexpected shape", err)
	}
	ui.ReportProgress(ctx, fmt.Sprintf("Loaded shop with %d offers", len(data.Entries)))
	return &data, nil
}

// Item fetches the detailed single-item representation for id.
func (c *Client) Item(ctx context.Context, id string) (*models.DetailedItem, error) {
	path := "/v2/cosmetics/br/" + url.PathEscape(id)
	body, err := c.getJSON(ctx, path, url.Values{"language": {c.language}})
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var item models.DetailedItem
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, newError(KindMalformed, "item payload has unexpected shape", err)
	}
	return &item, nil
}

// Search queries /v2/cosmetics/br/search/all. A data field that is not
// an array is a malformed response, never silently coerced.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]models.BrItem, error) {
	q := params.values()
	if q.Get("language") == "" {
		q.Set("language", c.language)
	}
	body, err := c.getJSON(ctx, "/v2/cosmetics/br/search/all", q)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || env.Data[0] != '[' {
		return nil, newError(KindMalformed, "search data is not an array", nil)
	}
	var items []models.BrItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, newError(KindMalformed, "search payload has unexpected shape", err)
	}
	ui.ReportProgress(ctx, fmt.Sprintf("Found %d matching items", len(items)))
	return items, nil
}

// Items fetches several item details concurrently, preserving input
// order in the result.
func (c *Client) Items(ctx context.Context, ids []string) ([]models.DetailedItem, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	pages := make([][]models.DetailedItem, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			item, err := c.Item(ctx, id)
			if err != nil {
				return err
			}
			pages[i] = []models.DetailedItem{*item}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return FlattenPages(pages), nil
}

// getJSON performs a deduplicated, cached GET and returns the raw body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	if c.cache != nil {
		if body, err := c.cache.Get(ctx, u); err == nil {
			return body, nil
		}
	}

	v, err, _ := c.group.Do(u, func() (any, error) {
		return c.fetch(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range httputil.APIHeaders() {
		req.Header[k] = v
	}

	resp, err := httputil.DoWithRetry(c.http, req, c.maxRetries)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(KindNotFound,
			fmt.Sprintf("api answered %d for %s", resp.StatusCode, req.URL.Path), nil)
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if c.cache != nil {
		// A failed cache write just means the next call refetches.
		_ = c.cache.Set(ctx, u, body, c.cacheTTL)
	}
	return body, nil
}

// classifyTransportError maps a transport failure onto the error
// taxonomy: deadline aborts become timeouts, failures with the probe
// reporting no connectivity become network errors, anything else is
// passed through wrapped.
func (c *Client) classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(KindTimeout, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(KindTimeout, "request timed out", err)
	}
	if !c.online() {
		return newError(KindNetwork, "no network connectivity", err)
	}
	return fmt.Errorf("fetch: %w", err)
}

// online probes connectivity by dialing the API host, so an offline
// device is reported as a network error rather than a generic failure.
func (c *Client) online() bool {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return true
	}
	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "443")
		if u.Scheme == "http" {
			host = net.JoinHostPort(u.Hostname(), "80")
		}
	}
	conn, err := net.DialTimeout("tcp", host, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newError(KindParse, "response is not valid JSON", err)
	}
	if env.Data == nil {
		return nil, newError(KindMalformed, "response has no data field", nil)
	}
	return &env, nil
}
