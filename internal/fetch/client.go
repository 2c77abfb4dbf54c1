package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultMaxBodyBytes = 10 * 1024 * 1024
)

// Options configures a Client. Zero fields take the defaults.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64

	// Observe, when set, is called once per Get with the outcome:
	// OutcomeOK, OutcomeTransport, OutcomeStatus or OutcomeTooLarge.
	Observe func(outcome string)
}

// Fetch outcomes passed to Options.Observe.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport"
	OutcomeStatus    = "status"
	OutcomeTooLarge  = "too_large"
)

// Response is a fully read HTTP response.
type Response struct {
	URL    string // final URL after redirects
	Status int
	Header http.Header
	Body   []byte
}

// ContentType returns the Content-Type header.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// Client performs GET requests. It keeps no cookies and never retries, so
// one Client is safe to share between concurrent calls.
type Client struct {
	resty   *resty.Client
	maxBody int64
	observe func(string)
}

// NewClient creates a fetch client
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	restyClient := resty.New()
	restyClient.
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetCookieJar(nil).
		SetHeader("User-Agent", opts.UserAgent)

	return &Client{resty: restyClient, maxBody: opts.MaxBodyBytes, observe: opts.Observe}
}

// Get fetches rawURL with optional query parameters.
// Transport failures, timeouts and non-2xx statuses return *toolerr.FetchError.
func (c *Client) Get(ctx context.Context, rawURL string, query map[string]string) (*Response, error) {
	resp, outcome, err := c.get(ctx, rawURL, query)
	if c.observe != nil {
		c.observe(outcome)
	}
	return resp, err
}

func (c *Client) get(ctx context.Context, rawURL string, query map[string]string) (*Response, string, error) {
	req := c.resty.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, OutcomeTransport, &toolerr.FetchError{URL: rawURL, Err: unwrapURLError(err)}
	}

	raw := resp.RawBody()
	defer raw.Close()

	if !resp.IsSuccess() {
		return nil, OutcomeStatus, &toolerr.FetchError{URL: rawURL, Status: resp.StatusCode(), Reason: resp.Status()}
	}

	body, err := io.ReadAll(io.LimitReader(raw, c.maxBody+1))
	if err != nil {
		return nil, OutcomeTransport, &toolerr.FetchError{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBody {
		return nil, OutcomeTooLarge, &toolerr.FetchError{URL: rawURL, Err: fmt.Errorf("response body exceeds %d bytes", c.maxBody)}
	}

	final := rawURL
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		final = resp.RawResponse.Request.URL.String()
	}

	return &Response{
		URL:    final,
		Status: resp.StatusCode(),
		Header: resp.Header(),
		Body:   body,
	}, OutcomeOK, nil
}

// unwrapURLError drops the "Get \"...\":" prefix net/http adds, since the
// FetchError already names the URL.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
