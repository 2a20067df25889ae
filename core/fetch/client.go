package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// StatusError reports a non-2xx response from a remote server.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// Client performs HTTP requests against federated servers with strict
// timeouts on every phase of the request.
type Client struct {
	http      *http.Client
	userAgent string
	scheme    string
}

// NewClient creates a federation HTTP client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	scheme := "https"
	if cfg.Insecure {
		scheme = "http"
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		userAgent: cfg.UserAgent,
		scheme:    scheme,
	}
}

// HostURL builds an absolute URL for a path on the given host.
func (c *Client) HostURL(host, path string) string {
	return c.scheme + "://" + host + path
}

// GetJSON fetches url and decodes the JSON response body into out.
// A non-2xx response is returned as a *StatusError; transport failures and
// malformed bodies are returned as plain errors for the caller to classify.
func (c *Client) GetJSON(ctx context.Context, url, accept string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return &StatusError{Code: res.StatusCode, URL: url}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}

// Get fetches url and returns the response body along with its content type.
// The caller owns the returned reader and must close it.
func (c *Client) Get(ctx context.Context, url string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, "", &StatusError{Code: res.StatusCode, URL: url}
	}

	return res.Body, res.Header.Get("Content-Type"), nil
}
