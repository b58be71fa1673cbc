package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/metrics"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestObserveJob(t *testing.T) {
	metrics.ObserveJob("fetch", metrics.Result(nil), time.Second)
	metrics.ObserveJob("autopublish", metrics.ResultSkipped, 0)

	body := scrape(t)
	require.Contains(t, body, `quill_scheduler_runs_total{job="fetch",result="success"}`)
	require.Contains(t, body, `quill_scheduler_runs_total{job="autopublish",result="skipped"}`)
	require.Contains(t, body, `quill_scheduler_run_duration_seconds_count{job="fetch"} 1`)
	require.NotContains(t, body, `quill_scheduler_run_duration_seconds_count{job="autopublish"}`)
}

func TestResult(t *testing.T) {
	require.Equal(t, metrics.ResultSuccess, metrics.Result(nil))
	require.Equal(t, metrics.ResultFailed, metrics.Result(errors.New("x")))
}

func TestHandlerExposesCounters(t *testing.T) {
	metrics.FetchNewItems.Add(0)
	require.Contains(t, scrape(t), "quill_fetch_new_items_total")
}
