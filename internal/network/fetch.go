package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Noooste/azuretls-client"

	"quill/backend/internal/config"
	"quill/backend/internal/logger"
)

// maxBodyBytes bounds a single fetched document.
const maxBodyBytes = 10 << 20

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	// ViaBrowser is set when the body came from the fingerprinted fallback session.
	ViaBrowser bool
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// blockedStatus lists responses typical of bot protection rather than a missing document.
func blockedStatus(code int) bool {
	return code == http.StatusForbidden || code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

// Get fetches rawURL with the Quill user agent. A 403, 429 or 503 answer is
// retried once through a Chrome-fingerprinted session. A non-2xx final status
// is returned as a Response, not an error.
func (f *ClientFactory) Get(ctx context.Context, rawURL, accept string, timeout time.Duration) (Response, error) {
	if err := f.hostLimiter.Wait(ctx, rawURL); err != nil {
		return Response{}, fmt.Errorf("wait for host slot: %w", err)
	}
	resp, err := f.plainGet(ctx, rawURL, accept, timeout)
	if err != nil {
		return Response{}, err
	}
	if !blockedStatus(resp.StatusCode) {
		return resp, nil
	}

	logger.Debug("fetch blocked, retrying with browser session", "module", "network", "action", "fetch", "resource", "http", "result", "retry", "url", rawURL, "status_code", resp.StatusCode)
	return f.browserGet(ctx, rawURL, accept, timeout)
}

func (f *ClientFactory) plainGet(ctx context.Context, rawURL, accept string, timeout time.Duration) (Response, error) {
	return f.doHTTP(ctx, rawURL, timeout, map[string]string{
		"User-Agent": config.QuillUserAgent,
		"Accept":     accept,
	})
}

func (f *ClientFactory) browserGet(ctx context.Context, rawURL, accept string, timeout time.Duration) (Response, error) {
	if f.testHTTPClient != nil {
		resp, err := f.doHTTP(ctx, rawURL, timeout, map[string]string{
			"User-Agent": config.ChromeUserAgent,
			"Accept":     accept,
			"Sec-Ch-Ua":  config.ChromeSecChUa,
		})
		resp.ViaBrowser = true
		return resp, err
	}

	session := f.NewAzureSession(ctx, timeout)
	defer session.Close()

	resp, err := session.Do(&azuretls.Request{
		Method: http.MethodGet,
		Url:    rawURL,
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", accept},
			{"accept-language", "en-US,en;q=0.9"},
			{"sec-ch-ua", config.ChromeSecChUa},
			{"sec-ch-ua-mobile", "?0"},
			{"sec-ch-ua-platform", `"Windows"`},
			{"sec-fetch-dest", "document"},
			{"sec-fetch-mode", "navigate"},
			{"sec-fetch-site", "none"},
			{"user-agent", config.ChromeUserAgent},
		},
	})
	if err != nil {
		return Response{}, fmt.Errorf("browser fetch: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Body: resp.Body, ViaBrowser: true}, nil
}

func (f *ClientFactory) doHTTP(ctx context.Context, rawURL string, timeout time.Duration, headers map[string]string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := f.NewHTTPClient(ctx, timeout).Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read body: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
