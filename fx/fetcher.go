package fx

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

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// DefaultURL is the default exchange-rate endpoint, %s is replaced by the base currency.
const DefaultURL = "https://open.er-api.com/v6/latest/%s"

// ratesPath locates the currency to rate object in the response.
const ratesPath = "$.rates"

// HTTPFetcher fetches rates from a JSON endpoint that returns an object with a
// 'rates' property.
type HTTPFetcher struct {
	Client  *http.Client
	URL     string        // %s is replaced by the base currency, otherwise base is appended as a 'base' query parameter
	Limiter *rate.Limiter // nil for no limit
}

// NewHTTPFetcher returns a fetcher for addr (DefaultURL if empty), limited to one request per second.
func NewHTTPFetcher(addr string) *HTTPFetcher {
	if addr == "" {
		addr = DefaultURL
	}
	return &HTTPFetcher{
		Client:  &http.Client{Timeout: 10 * time.Second},
		URL:     addr,
		Limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}
	var jobj any
	if err := jwget(ctx, f.Client, f.address(base), &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(ratesPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", ratesPath, err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not an object %v", ratesPath, jval)
	}
	rates := make(map[string]decimal.Decimal, len(jrates))
	for cur, v := range jrates {
		// non numeric rates are skipped, not fatal.
		if n, ok := v.(float64); ok {
			rates[cur] = decimal.NewFromFloat(n)
		}
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no rates in response for %q", base)
	}
	return rates, nil
}

func (f *HTTPFetcher) address(base string) string {
	if strings.Contains(f.URL, "%s") {
		return fmt.Sprintf(f.URL, url.PathEscape(base))
	}
	sep := "?"
	if strings.Contains(f.URL, "?") {
		sep = "&"
	}
	return f.URL + sep + "base=" + url.QueryEscape(base)
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
