package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultCoinbaseURL public Coinbase Exchange REST endpoint.
const DefaultCoinbaseURL = "https://api.exchange.coinbase.com"

const userAgent = "btcterm/1.0"

// StatusError is returned when the API answers with any status other than 200.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s: %s", e.Code, e.URL, e.Status)
}

// OptionalDecimal is a decimal field that may be missing, null or an empty string.
// Valid is false for all three; Present tells a missing key from the other two.
type OptionalDecimal struct {
	decimal.NullDecimal
	Present bool
}

// UnmarshalJSON is only called for keys present in the payload.
func (d *OptionalDecimal) UnmarshalJSON(b []byte) error {
	d.Present = true
	if string(b) == `""` {
		d.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	return d.NullDecimal.UnmarshalJSON(b)
}

// Ticker response of GET /products/{id}/ticker.
type Ticker struct {
	Price OptionalDecimal `json:"price"`
}

// Stats response of GET /products/{id}/stats.
type Stats struct {
	High OptionalDecimal `json:"high"`
	Low  OptionalDecimal `json:"low"`
}

// CoinbaseClient reads public market data, no authentication.
type CoinbaseClient struct {
	http    *http.Client
	baseURL string
}

// NewCoinbaseClient creates a client; timeout bounds every single request.
func NewCoinbaseClient(baseURL string, timeout time.Duration) *CoinbaseClient {
	return NewCoinbaseClientWithHTTP(&http.Client{Timeout: timeout}, baseURL)
}

// NewCoinbaseClientWithHTTP creates a client on top of the given http.Client.
func NewCoinbaseClientWithHTTP(httpClient *http.Client, baseURL string) *CoinbaseClient {
	return &CoinbaseClient{http: httpClient, baseURL: baseURL}
}

// Ticker fetches the last trade price of the product.
func (c *CoinbaseClient) Ticker(ctx context.Context, productID string) (Ticker, error) {
	var t Ticker
	if err := c.get(ctx, productID, "ticker", &t); err != nil {
		return Ticker{}, err
	}
	return t, nil
}

// Stats fetches the 24h statistics of the product.
func (c *CoinbaseClient) Stats(ctx context.Context, productID string) (Stats, error) {
	var s Stats
	if err := c.get(ctx, productID, "stats", &s); err != nil {
		return Stats{}, err
	}
	return s, nil
}

func (c *CoinbaseClient) get(ctx context.Context, productID, resource string, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "failed to parse base URL")
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/products/" + url.PathEscape(productID) + "/" + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s request for %q", resource, productID)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to execute %s request for %q", resource, productID)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: u.String()}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response for %q", resource, productID)
	}

	return nil
}

// IsStatusError reports whether err carries a non-200 API status.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
