package network_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/config"
	"quill/backend/internal/network"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestGet_SendsQuillUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, config.QuillUserAgent, r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	f := network.NewClientFactory(nil)
	resp, err := f.Get(context.Background(), srv.URL, "text/html", 5*time.Second)
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.False(t, resp.ViaBrowser)
	require.Equal(t, "ok", string(resp.Body))
}

func TestGet_BlockedRetriesOnceWithBrowserHeaders(t *testing.T) {
	var calls int32
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		status := http.StatusForbidden
		if req.Header.Get("User-Agent") == config.ChromeUserAgent {
			status = http.StatusOK
		}
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader("body")), Header: http.Header{}, Request: req}, nil
	})}

	f := network.NewClientFactoryForTest(client)
	resp, err := f.Get(context.Background(), "https://blocked.example.com/feed", "application/rss+xml", time.Second)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, resp.ViaBrowser)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGet_NotFoundIsNotRetried(t *testing.T) {
	var calls int32
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("")), Header: http.Header{}, Request: req}, nil
	})}

	f := network.NewClientFactoryForTest(client)
	resp, err := f.Get(context.Background(), "https://example.com/missing", "", time.Second)
	require.NoError(t, err)
	require.False(t, resp.OK())
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestStaticProxy(t *testing.T) {
	require.Equal(t, "socks5://127.0.0.1:1080", network.StaticProxy("socks5://127.0.0.1:1080").GetProxyURL(context.Background()))
}
