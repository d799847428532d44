package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	services "github.com/twotier/twotier-services/api/services"
	"github.com/twotier/twotier-services/internal/metrics"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestGetHome_RendersBackendData(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data", r.URL.Path)
		_, _ = w.Write([]byte(`{"users": ["A", "B"], "message": "ok"}`))
	}))
	defer backend.Close()

	client := services.NewBackendClient(backend.URL, 5*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	GetHome(client, newTestMetrics()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "A")
	assert.Contains(t, body, "B")
	assert.Contains(t, body, "ok")
}

func TestGetHome_BackendUnreachable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := backend.URL
	backend.Close()

	client := services.NewBackendClient(url, 5*time.Second)
	m := newTestMetrics()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	GetHome(client, m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error fetching data from backend")
	assert.NotContains(t, w.Body.String(), "<li>")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendFetchFailures))
}

func TestGetHome_BackendTimesOut(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer backend.Close()
	defer close(release)

	client := services.NewBackendClient(backend.URL, 50*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	start := time.Now()
	GetHome(client, newTestMetrics()).ServeHTTP(w, req)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error fetching data from backend")
}

func TestGetHome_BackendReturnsNonJSON(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer backend.Close()

	client := services.NewBackendClient(backend.URL, 5*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	GetHome(client, newTestMetrics()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error fetching data from backend")
	assert.NotContains(t, w.Body.String(), "<li>")
}
