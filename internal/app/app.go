// Package app はアプリケーションの起動と依存関係のワイヤリングを提供する。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/hitoshi/puntocar/internal/auth"
	"github.com/hitoshi/puntocar/internal/car"
	"github.com/hitoshi/puntocar/internal/catalog"
	"github.com/hitoshi/puntocar/internal/config"
	"github.com/hitoshi/puntocar/internal/database"
	"github.com/hitoshi/puntocar/internal/handler"
	"github.com/hitoshi/puntocar/internal/logger"
	"github.com/hitoshi/puntocar/internal/metrics"
	"github.com/hitoshi/puntocar/internal/middleware"
	"github.com/hitoshi/puntocar/internal/model"
	"github.com/hitoshi/puntocar/internal/repository"
	"github.com/hitoshi/puntocar/internal/security"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	// catalog はDB不要のクライアントモードのため、必須環境変数を要求しない
	if cmd == CommandCatalog {
		logger.SetupDefault(w)
		return runCatalog(w, args[1:])
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
	)

	switch cmd {
	case CommandServe:
		return runServe(cfg)
	case CommandMigrate:
		return runMigrate(cfg)
	case CommandSeed:
		return runSeed(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe はAPIサーバーモードで起動する。
// DB接続を開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. DB接続
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// 2. リポジトリの初期化
	userRepo := repository.NewPostgresUserRepo(db)
	carRepo := repository.NewPostgresCarRepo(db)

	// 3. セキュリティサービスの初期化
	sanitizer := security.NewTextSanitizer()

	// 4. ドメインサービスの初期化
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(userRepo, tokenManager, auth.ServiceConfig{
		BcryptCost: cfg.BcryptCost,
	})
	carService := car.NewService(carRepo, sanitizer)

	// 5. メトリクスの初期化
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 6. レート制限の初期化（configはreq/min単位、rate.Limitはreq/sec単位）
	rateLimiterCfg := middleware.RateLimiterConfig{
		GeneralRate:     rate.Limit(float64(cfg.RateLimitGeneral) / 60.0),
		GeneralBurst:    cfg.RateLimitGeneral,
		AuthRate:        rate.Limit(float64(cfg.RateLimitAuth) / 60.0),
		AuthBurst:       cfg.RateLimitAuth,
		CleanupInterval: 5 * time.Minute,
	}
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	// 7. ルーターの構築
	router := handler.NewRouter(&handler.RouterDeps{
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		TokenVerifier:     tokenManager,

		AuthService: authService,
		CarService:  carService,

		HealthChecker:    db,
		MetricsCollector: collector,
		MetricsGatherer:  registry,
	})

	// 8. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runSeed は初期データを投入する。
// ADMIN_EMAILとADMIN_PASSWORDが設定されていれば管理者ユーザーを作成し、
// サンプル車両を登録する。既存データはスキップし、再実行しても安全。
func runSeed(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()
	userRepo := repository.NewPostgresUserRepo(db)
	carRepo := repository.NewPostgresCarRepo(db)

	// 管理者ユーザー
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
		if err != nil {
			return fmt.Errorf("failed to look up admin user: %w", err)
		}
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			now := time.Now()
			admin := &model.User{
				ID:           uuid.New().String(),
				Email:        cfg.AdminEmail,
				PasswordHash: string(hash),
				Role:         model.UserRoleAdmin,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := userRepo.Create(ctx, admin); err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			slog.Info("admin user created", slog.String("email", cfg.AdminEmail))
		} else {
			slog.Info("admin user already exists, skipping")
		}
	}

	// サンプル車両
	seeded := 0
	for _, sample := range catalog.SampleCars() {
		existing, err := carRepo.FindByID(ctx, sample.ID)
		if err != nil {
			return fmt.Errorf("failed to look up car %s: %w", sample.ID, err)
		}
		if existing != nil {
			continue
		}

		now := time.Now()
		sample.CreatedAt = now
		sample.UpdatedAt = now
		if err := carRepo.Create(ctx, &sample); err != nil {
			return fmt.Errorf("failed to seed car %s: %w", sample.ID, err)
		}
		seeded++
	}

	slog.Info("seed completed", slog.Int("cars_seeded", seeded))
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL はデータベースURLの認証情報をマスクする。
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
