// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェアやハンドラー層から利用する。
type MetricsCollector interface {
	RecordHTTPRequest(method string, statusCode int)
	RecordHTTPDuration(duration time.Duration)
	RecordAuthSuccess(operation string)
	RecordAuthFailure(operation string)
	RecordCarCreated()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration prometheus.Histogram
	authSuccess  *prometheus.CounterVec
	authFailure  *prometheus.CounterVec
	carsCreated  prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "puntocar_http_requests_total",
			Help: "HTTPメソッド・ステータスコード別のリクエスト数",
		}, []string{"method", "status_code"}),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "puntocar_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		authSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "puntocar_auth_success_total",
			Help: "認証成功（register/login別）の合計数",
		}, []string{"operation"}),
		authFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "puntocar_auth_failure_total",
			Help: "認証失敗（register/login別）の合計数",
		}, []string{"operation"}),
		carsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puntocar_cars_created_total",
			Help: "掲載された車両の合計数",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.authSuccess,
		c.authFailure,
		c.carsCreated,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエストの完了を記録する。
func (c *Collector) RecordHTTPRequest(method string, statusCode int) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

// RecordHTTPDuration はHTTPリクエストの処理時間を記録する。
func (c *Collector) RecordHTTPDuration(duration time.Duration) {
	c.httpDuration.Observe(duration.Seconds())
}

// RecordAuthSuccess は認証成功を記録する。operationは"register"または"login"。
func (c *Collector) RecordAuthSuccess(operation string) {
	c.authSuccess.WithLabelValues(operation).Inc()
}

// RecordAuthFailure は認証失敗を記録する。operationは"register"または"login"。
func (c *Collector) RecordAuthFailure(operation string) {
	c.authFailure.WithLabelValues(operation).Inc()
}

// RecordCarCreated は車両掲載を記録する。
func (c *Collector) RecordCarCreated() {
	c.carsCreated.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}

var _ MetricsCollector = (*Collector)(nil)

// Middleware はリクエスト数と処理時間を記録するHTTPミドルウェアを返す。
func Middleware(collector MetricsCollector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			collector.RecordHTTPRequest(r.Method, rec.statusCode)
			collector.RecordHTTPDuration(time.Since(start))
		})
	}
}

// statusRecorder はhttp.ResponseWriterをラップし、ステータスコードを記録する。
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}
