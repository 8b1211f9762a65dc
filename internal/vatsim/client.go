package vatsim

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// Fetcher defines the interface for retrieving the VATSIM datafeed.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchData(ctx context.Context) (*Data, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the VATSIM datafeed.
type Client struct {
	dataURL   string
	http      *http.Client
	userAgent string
}

const (
	// DefaultStatusURL is the discovery document listing the datafeed mirrors.
	DefaultStatusURL = "https://status.vatsim.net/status.json"

	defaultUserAgent = "vatscope/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient discovers a datafeed mirror via the status endpoint and returns a
// client bound to it. The mirror is chosen at random; the feed publishes
// several equivalent URLs and asks consumers to spread load across them.
func NewClient(ctx context.Context, statusURL string) (*Client, error) {
	c := &Client{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}
	if statusURL == "" {
		statusURL = DefaultStatusURL
	}
	dataURL, err := c.discoverDataURL(ctx, statusURL)
	if err != nil {
		return nil, err
	}
	c.dataURL = dataURL
	return c, nil
}

// NewClientWithDataURL returns a client bound directly to the given datafeed
// URL, skipping discovery.
func NewClientWithDataURL(dataURL string) (*Client, error) {
	if _, err := url.ParseRequestURI(dataURL); err != nil {
		return nil, fmt.Errorf("parse data url %q: %w", dataURL, err)
	}
	return &Client{
		dataURL:   dataURL,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// DataURL reports the datafeed mirror this client is bound to.
func (c *Client) DataURL() string {
	return c.dataURL
}

func (c *Client) discoverDataURL(ctx context.Context, statusURL string) (string, error) {
	var index StatusIndex
	if err := c.get(ctx, statusURL, &index); err != nil {
		return "", fmt.Errorf("query status endpoint: %w", err)
	}
	if len(index.Data.V3) == 0 {
		return "", fmt.Errorf("status endpoint listed no v3 datafeed urls")
	}
	return index.Data.V3[rand.Intn(len(index.Data.V3))], nil
}

// FetchData retrieves the current datafeed snapshot. Pilots and controllers
// are returned sorted by callsign.
func (c *Client) FetchData(ctx context.Context) (*Data, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Data
	if err := c.get(ctx, c.dataURL, &payload); err != nil {
		return nil, err
	}
	sort.Slice(payload.Pilots, func(i, j int) bool {
		return payload.Pilots[i].Callsign < payload.Pilots[j].Callsign
	})
	sort.Slice(payload.Controllers, func(i, j int) bool {
		return payload.Controllers[i].Callsign < payload.Controllers[j].Callsign
	})
	return &payload, nil
}

func (c *Client) get(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", req.URL.Host, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
