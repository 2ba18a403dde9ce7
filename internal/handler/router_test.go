package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/puntocar/internal/auth"
	"github.com/hitoshi/puntocar/internal/metrics"
	"github.com/hitoshi/puntocar/internal/middleware"
	"github.com/hitoshi/puntocar/internal/model"
)

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) PingContext(ctx context.Context) error {
	return m.err
}

func newTestRouter(t *testing.T, carSvc CarServiceInterface) (http.Handler, string) {
	t.Helper()

	rl := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	tm := auth.NewTokenManager("router-test-secret", time.Hour)
	token, err := tm.Issue("user-1", "taro@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	reg := prometheus.NewRegistry()

	router := NewRouter(&RouterDeps{
		CORSAllowedOrigin: "http://localhost:3000",
		RateLimiter:       rl,
		TokenVerifier:     tm,
		AuthService:       &mockAuthService{},
		CarService:        carSvc,
		HealthChecker:     &mockHealthChecker{},
		MetricsCollector:  metrics.NewCollector(reg),
		MetricsGatherer:   reg,
	})

	return router, token
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, &mockCarService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}

	var body map[string]string
	json.NewDecoder(w.Result().Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestRouter_Health_DBDown_Returns503(t *testing.T) {
	rl := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	router := NewRouter(&RouterDeps{
		CORSAllowedOrigin: "http://localhost:3000",
		RateLimiter:       rl,
		TokenVerifier:     auth.NewTokenManager("s", time.Hour),
		AuthService:       &mockAuthService{},
		CarService:        &mockCarService{},
		HealthChecker:     &mockHealthChecker{err: errors.New("connection refused")},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusServiceUnavailable)
	}
}

func TestRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t, &mockCarService{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

func TestRouter_GetCars_Public(t *testing.T) {
	router, _ := newTestRouter(t, &mockCarService{
		listFunc: func(ctx context.Context) ([]model.Car, error) {
			return []model.Car{sampleCar()}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

func TestRouter_GetCarByID(t *testing.T) {
	router, _ := newTestRouter(t, &mockCarService{
		getFunc: func(ctx context.Context, id string) (*model.Car, error) {
			if id != "car-001" {
				return nil, model.NewCarNotFoundError(id)
			}
			car := sampleCar()
			return &car, nil
		},
	})

	t.Run("存在するID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cars/car-001", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("存在しないID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cars/bogus", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
		}
	})
}

// トークンなしの掲載リクエストは401で拒否され、サービス層に到達しないこと。
func TestRouter_CreateCar_WithoutToken_Returns401(t *testing.T) {
	createCalled := false
	router, _ := newTestRouter(t, &mockCarService{
		createFunc: func(ctx context.Context, input *model.Car) (*model.Car, error) {
			createCalled = true
			return input, nil
		},
	})

	body := `{"brand":"Fiat","model":"Cronos","year":2022,"price":27200}`
	req := httptest.NewRequest(http.MethodPost, "/api/cars", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	if createCalled {
		t.Error("service must not be reached without authentication")
	}

	var got apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Message != "Please authenticate." {
		t.Errorf("message = %q, want %q", got.Message, "Please authenticate.")
	}
}

func TestRouter_CreateCar_WithToken_Succeeds(t *testing.T) {
	router, token := newTestRouter(t, &mockCarService{
		createFunc: func(ctx context.Context, input *model.Car) (*model.Car, error) {
			created := *input
			created.ID = "car-new"
			created.Status = model.CarStatusAvailable
			return &created, nil
		},
	})

	body := `{"brand":"Fiat","model":"Cronos Precision","year":2022,"price":27200,"images":"[]"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cars", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want %d, body = %s", w.Result().StatusCode, http.StatusCreated, w.Body.String())
	}
}

func TestRouter_SetsSecurityAndCORSHeaders(t *testing.T) {
	router, _ := newTestRouter(t, &mockCarService{})

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	headers := w.Result().Header
	if got := headers.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:3000")
	}
	if got := headers.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want %q", got, "nosniff")
	}
}
