package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"

	"github.com/hitoshi/puntocar/internal/model"
)

// defaultMaxBodySize はカタログレスポンスの読み取り上限（5MB）。
const defaultMaxBodySize int64 = 5 * 1024 * 1024

// NewSafeClient はSSRF防止機能付きのHTTPクライアントを生成する。
// safeurlライブラリにより、プライベートIP、ループバック、リンクローカル、
// メタデータIPへのリクエストが自動的にブロックされる。
// カタログ取得先URLは環境変数で設定されるため、誤設定や汚染された設定値から
// 内部ネットワークへのアクセスを防ぐ。
func NewSafeClient(timeout time.Duration) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return safeurl.Client(config).Client
}

// Store はカタログ全件のインメモリ保持を担う。
//
// 起動時にLoadを1回だけ呼び出してリモートソースから車両一覧を取得し、
// 失敗した場合（ネットワークエラー、非2xx、デコード失敗）は組み込みの
// サンプルセットに置き換える。リトライは行わない（劣化モードでの代替で
// あり、自動回復は範囲外）。
//
// Loadの完了後は読み取り専用となる。Engineによるフィルタ処理はStoreの
// データを変更しない。グローバル状態は持たず、起動時に生成して依存として
// 注入する。
type Store struct {
	sourceURL   string
	client      *http.Client
	logger      *slog.Logger
	maxBodySize int64

	cars     []model.Car
	degraded bool
}

// NewStore はStoreを生成する。clientにはNewSafeClientで生成した
// クライアントを渡すことを想定している（テストでは任意のクライアントを
// 注入できる）。
func NewStore(sourceURL string, client *http.Client, logger *slog.Logger) *Store {
	return &Store{
		sourceURL:   sourceURL,
		client:      client,
		logger:      logger,
		maxBodySize: defaultMaxBodySize,
	}
}

// SetMaxBodySize はカタログレスポンスの読み取り上限を上書きする。
// 正の値のみ有効。Loadを呼び出す前に設定すること。
func (s *Store) SetMaxBodySize(size int64) {
	if size > 0 {
		s.maxBodySize = size
	}
}

// wireCar はカタログAPIのワイヤフォーマット。
// imagesはURL配列をJSONエンコードした文字列（二重エンコード）で転送される。
type wireCar struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Mileage      int     `json:"mileage"`
	Transmission string  `json:"transmission"`
	Fuel         string  `json:"fuel"`
	Color        string  `json:"color"`
	Description  string  `json:"description"`
	Images       string  `json:"images"`
	Status       string  `json:"status"`
}

// Load はリモートソースからカタログを1回だけ取得する。
// 失敗時はサンプルセットへのフォールバックを行い、エラーは返さない。
// Cars を呼び出す前に必ず1回呼び出すこと。再取得やバックオフは行わない。
func (s *Store) Load(ctx context.Context) {
	cars, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("catalog fetch failed, falling back to sample data",
			slog.String("source_url", s.sourceURL),
			slog.String("error", err.Error()),
		)
		s.cars = SampleCars()
		s.degraded = true
		return
	}

	s.logger.Info("catalog loaded",
		slog.String("source_url", s.sourceURL),
		slog.Int("count", len(cars)),
	)
	s.cars = cars
}

// fetch はカタログAPIから車両一覧を取得してデコードする。
func (s *Store) fetch(ctx context.Context) ([]model.Car, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("User-Agent", "PuntoCar/1.0 Catalog Client")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	var wire []wireCar
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	cars := make([]model.Car, 0, len(wire))
	for _, w := range wire {
		// 二重エンコードされたimagesは境界で必ずデコードする
		images, err := model.DecodeImages(w.Images)
		if err != nil {
			return nil, fmt.Errorf("failed to decode images for car %s: %w", w.ID, err)
		}
		status := model.CarStatus(w.Status)
		if status == "" {
			status = model.CarStatusAvailable
		}
		cars = append(cars, model.Car{
			ID:           w.ID,
			Brand:        w.Brand,
			Model:        w.Model,
			Year:         w.Year,
			Price:        w.Price,
			Mileage:      w.Mileage,
			Transmission: w.Transmission,
			Fuel:         w.Fuel,
			Color:        w.Color,
			Description:  w.Description,
			Images:       images,
			Status:       status,
		})
	}

	return cars, nil
}

// Cars は保持している車両一覧のコピーを返す。
func (s *Store) Cars() []model.Car {
	cars := make([]model.Car, len(s.cars))
	copy(cars, s.cars)
	return cars
}

// Degraded はサンプルセットへのフォールバックが発生したかを返す。
func (s *Store) Degraded() bool {
	return s.degraded
}
