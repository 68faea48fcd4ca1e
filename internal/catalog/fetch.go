package catalog

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/neokit-dev/nktool/internal/branding"
)

// Fetcher retrieves the raw catalog document from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches the catalog with a single HTTP GET.
type HTTPFetcher struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// FetchOption configures an HTTPFetcher.
type FetchOption func(*HTTPFetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) FetchOption {
	return func(f *HTTPFetcher) {
		f.httpClient = c
	}
}

// WithTimeout bounds each fetch. Zero means no limit beyond the context.
func WithTimeout(d time.Duration) FetchOption {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) FetchOption {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// NewHTTPFetcher creates an HTTPFetcher with the given options.
func NewHTTPFetcher(opts ...FetchOption) *HTTPFetcher {
	f := &HTTPFetcher{
		httpClient: http.DefaultClient,
		userAgent:  branding.CLIName(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues one GET for url and returns the body verbatim. Transport
// failures and non-2xx responses are reported as *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return body, nil
}
