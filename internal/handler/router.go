package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/puntocar/internal/metrics"
	"github.com/hitoshi/puntocar/internal/middleware"
)

// HealthChecker はDB疎通確認のインターフェース。*sql.DBが満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	TokenVerifier     middleware.TokenVerifier

	// サービス
	AuthService AuthServiceInterface
	CarService  CarServiceInterface

	// 監視
	HealthChecker    HealthChecker
	MetricsCollector metrics.MetricsCollector
	MetricsGatherer  prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Metrics → RateLimit(General)
//
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.MetricsCollector != nil {
		r.Use(metrics.Middleware(deps.MetricsCollector))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.MetricsCollector)
	carHandler := NewCarHandler(deps.CarService, deps.MetricsCollector)

	// --- 監視エンドポイント（レート制限の外） ---

	r.Get("/health", NewHealthHandler(deps.HealthChecker))

	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- APIルート ---
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 認証（ブルートフォース対策の専用レート制限を追加）
		r.Route("/api/auth", func(r chi.Router) {
			r.With(deps.RateLimiter.AuthMiddleware()).Post("/register", authHandler.Register)
			r.With(deps.RateLimiter.AuthMiddleware()).Post("/login", authHandler.Login)
		})

		// 車両カタログ（閲覧は認証不要）
		r.Route("/api/cars", func(r chi.Router) {
			r.Get("/", carHandler.ListCars)
			r.Get("/{id}", carHandler.GetCar)

			// 掲載は認証必須
			// TODO: ロール別の権限チェック（admin限定化）を入れる
			r.With(middleware.NewAuthMiddleware(deps.TokenVerifier)).Post("/", carHandler.CreateCar)
		})
	})

	return r
}

// NewHealthHandler はヘルスチェックハンドラーを返す。
// DB疎通が確認できれば200、できなければ503を返す。
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if checker != nil {
			if err := checker.PingContext(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy"})
				return
			}
		}

		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
