package service_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"quill/backend/internal/network"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// fakeWeb serves canned bodies by URL and counts requests. Unknown URLs get a 404.
type fakeWeb struct {
	mu     sync.Mutex
	pages  map[string]fakePage
	counts map[string]int
}

type fakePage struct {
	status int
	body   string
	delay  time.Duration
}

func newFakeWeb() *fakeWeb {
	return &fakeWeb{pages: map[string]fakePage{}, counts: map[string]int{}}
}

func (w *fakeWeb) serve(url string, status int, body string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pages[url] = fakePage{status: status, body: body}
}

// serveSlow answers after delay unless the request context ends first.
func (w *fakeWeb) serveSlow(url string, delay time.Duration, status int, body string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pages[url] = fakePage{status: status, body: body, delay: delay}
}

func (w *fakeWeb) hits(url string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.counts[url]
}

func (w *fakeWeb) factory() *network.ClientFactory {
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		w.mu.Lock()
		url := req.URL.String()
		w.counts[url]++
		page, ok := w.pages[url]
		w.mu.Unlock()
		if !ok {
			page = fakePage{status: http.StatusNotFound}
		}
		if page.delay > 0 {
			timer := time.NewTimer(page.delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-req.Context().Done():
				return nil, req.Context().Err()
			}
		}
		return &http.Response{
			StatusCode: page.status,
			Body:       io.NopCloser(strings.NewReader(page.body)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})}
	return network.NewClientFactoryForTest(client)
}

// rssFeed renders a channel with n items linking to base/1..base/n.
func rssFeed(base string, n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Feed</title><link>` + base + `</link>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<item><title>Story %d</title><link>%s/%d</link><description>Summary &amp; %d</description><pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate></item>`, i, base, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}
