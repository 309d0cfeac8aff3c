package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is the single HTTP transport shared by the data provider and the
// auth gateway. It carries a cookie jar so the backend's session cookie
// rides on every request.
type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration, client *http.Client) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = "http://localhost:8000/api"
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	if client.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err == nil {
			client.Jar = jar
		}
	}
	return &Client{baseURL: trimmed, client: client}
}

// BaseURL returns the configured backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	return http.NewRequestWithContext(ctx, method, url, body)
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	slog.Debug("rest request", slog.String("method", req.Method), slog.String("path", ScrubURL(req.URL.String())))
	res, err := c.client.Do(req)
	if err != nil {
		slog.Debug("rest request error", slog.String("method", req.Method), slog.String("path", ScrubURL(req.URL.String())), slog.Any("error", err))
		return nil, err
	}
	slog.Debug("rest response", slog.Int("status", res.StatusCode), slog.String("path", ScrubURL(req.URL.String())))
	return res, nil
}

// HTTPClient exposes the underlying http.Client so collaborators (the auth
// gateway) can share the same cookie jar.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// ScrubURL strips the query string before a URL is logged.
func ScrubURL(url string) string {
	if idx := strings.IndexByte(url, '?'); idx >= 0 {
		return url[:idx]
	}
	return url
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
