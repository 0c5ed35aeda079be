package staticmap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

const (
	defaultTimeout = 30 * time.Second
	errorBodyLimit = 64 << 10
)

// Client performs single-attempt static map requests.
type Client struct {
	httpClient *http.Client
	validate   *validator.Validate
	progress   io.Writer
	endpoint   string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout of the whole request, body included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithProgress draws a download progress bar to w.
func WithProgress(w io.Writer) Option {
	return func(c *Client) {
		c.progress = w
	}
}

// NewClient returns a Client for DefaultEndpoint unless configured otherwise.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		validate:   newValidator(),
		endpoint:   DefaultEndpoint,
		userAgent:  "polymap/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL validates the request and returns the full GET URL for it.
func (c *Client) URL(req Request) (string, error) {
	if err := c.validate.Struct(req); err != nil {
		return "", &RequestError{Err: err}
	}
	return c.endpoint + "?" + req.query().Encode(), nil
}

// Fetch downloads the image for req and returns the body unmodified.
// The call is made exactly once; a non-200 answer yields *HTTPError.
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	u, err := c.URL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	log.Debug().
		Str("url", RedactedURL(u)).
		Msg("Requesting static map")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("map request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf

	if c.progress != nil {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(c.progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("Downloading map"),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
		defer func() { _ = bar.Finish() }()
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return nil, fmt.Errorf("read map body: %w", err)
	}

	log.Debug().
		Int("bytes", buf.Len()).
		Str("content_type", resp.Header.Get("Content-Type")).
		Msg("Static map downloaded")

	return buf.Bytes(), nil
}
