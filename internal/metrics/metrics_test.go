package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest(http.MethodGet, 200)
	c.RecordHTTPRequest(http.MethodGet, 200)
	c.RecordHTTPRequest(http.MethodPost, 401)

	if got := testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "200")); got != 2 {
		t.Errorf("GET 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpRequests.WithLabelValues("POST", "401")); got != 1 {
		t.Errorf("POST 401 count = %v, want 1", got)
	}
}

func TestCollector_RecordAuthMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthSuccess("login")
	c.RecordAuthFailure("login")
	c.RecordAuthFailure("register")

	if got := testutil.ToFloat64(c.authSuccess.WithLabelValues("login")); got != 1 {
		t.Errorf("auth success login = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.authFailure.WithLabelValues("login")); got != 1 {
		t.Errorf("auth failure login = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.authFailure.WithLabelValues("register")); got != 1 {
		t.Errorf("auth failure register = %v, want 1", got)
	}
}

func TestCollector_RecordCarCreated(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCarCreated()
	c.RecordCarCreated()

	if got := testutil.ToFloat64(c.carsCreated); got != 2 {
		t.Errorf("cars created = %v, want 2", got)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest(http.MethodGet, 200)
	c.RecordCarCreated()
	c.RecordHTTPDuration(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body := w.Body.String()
	for _, metric := range []string{
		"puntocar_http_requests_total",
		"puntocar_cars_created_total",
		"puntocar_http_request_duration_seconds",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("response should contain metric %q", metric)
		}
	}
}

func TestSetupMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	handler := Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cars/no-such-car", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "404")); got != 1 {
		t.Errorf("GET 404 count = %v, want 1", got)
	}
}
