package http

import (
	"time"

	"github.com/reelworks/go-vimeo/pkg/vimeo"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger vimeo.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout overrides the transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.retry.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables transport retries. Retries are off by default.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = retryMax

		if waitMin > 0 {
			c.retry.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.retry.RetryWaitMax = waitMax
		}
	}
}
