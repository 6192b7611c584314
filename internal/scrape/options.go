// Package scrape fetches company pages and reduces them to plain text.
package scrape

import (
	"net"
	"net/http"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; SitefactsBot/1.0)"

// httpConfig holds the fetch settings shared by the discoverer and the
// page scraper.
type httpConfig struct {
	timeout   time.Duration
	userAgent string
	maxBody   int64
	client    *http.Client
}

func defaultHTTPConfig() httpConfig {
	return httpConfig{
		timeout:   10 * time.Second,
		userAgent: defaultUserAgent,
		maxBody:   512 * 1024,
	}
}

// finish builds the HTTP client unless one was injected.
func (c *httpConfig) finish() {
	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}
}

// Option configures fetch behavior.
type Option func(*httpConfig)

// WithTimeout sets the total per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *httpConfig) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodyKB caps how much of a response body is read.
func WithMaxBodyKB(kb int) Option {
	return func(c *httpConfig) {
		if kb > 0 {
			c.maxBody = int64(kb) * 1024
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpConfig) {
		c.client = hc
	}
}
