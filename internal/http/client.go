// Package http wraps the HTTP transport for API calls: URL assembly, OAuth
// signing via a pluggable client source, and response collection. Transport
// retries ride hashicorp/go-retryablehttp and are disabled unless configured.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/reelworks/go-vimeo/internal/constants"
	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// ClientSource hands out the HTTP client a request should go through.
// The auth flow manager implements it with an OAuth1-signing client for the
// current token.
type ClientSource interface {
	HTTPClient(ctx context.Context) (*http.Client, error)
}

// Request describes an API request.
type Request struct {
	Method string
	// Path is resolved against the base URL; an absolute URL (the upload
	// ticket endpoint, for example) is used as-is, and an empty path means
	// the base URL itself.
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
}

// Response is the collected result of a request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client dispatches requests against a base URL.
type Client struct {
	baseURL   string
	source    ClientSource
	retry     *retryablehttp.Client
	userAgent string
	logger    vimeo.Logger
	debug     bool
}

// NewClient creates a client for the given base URL. source may be nil, in
// which case requests go out unsigned.
func NewClient(baseURL string, source ClientSource, opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 0
	retry.Logger = nil
	retry.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:   baseURL,
		source:    source,
		retry:     retry,
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseClient returns the transport the signing client should delegate to,
// so retries and timeouts apply beneath the OAuth layer.
func (c *Client) BaseClient() *http.Client {
	return c.retry.StandardClient()
}

// Do sends the request and collects the response. A non-2xx status returns
// the response together with a *vimeo.HTTPError, so callers that want the
// raw answer can still have it.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpClient, err := c.httpClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining signing client: %w", err)
	}

	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, &vimeo.HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return resp, nil
}

// Get dispatches a GET with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// PostForm dispatches a form-encoded POST.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        []byte(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
}

// PostRaw dispatches a POST with a prebuilt body, multipart uploads being
// the main user.
func (c *Client) PostRaw(ctx context.Context, path string, query url.Values, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Query:       query,
		Body:        body,
		ContentType: contentType,
	})
}

func (c *Client) httpClient(ctx context.Context) (*http.Client, error) {
	if c.source == nil {
		return c.BaseClient(), nil
	}

	return c.source.HTTPClient(ctx)
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	target := c.baseURL

	switch {
	case path == "":
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		target = path
	default:
		target = strings.TrimSuffix(c.baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("resolving request url: %w", err)
	}

	if len(query) > 0 {
		merged := parsed.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		parsed.RawQuery = merged.Encode()
	}

	return parsed.String(), nil
}
