package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/puntocar/internal/model"
)

// CarServiceInterface は車両ハンドラーが必要とするサービスインターフェース。
type CarServiceInterface interface {
	// List は全車両を作成順で返す。
	List(ctx context.Context) ([]model.Car, error)
	// Get は指定IDの車両を取得する。見つからない場合はCAR_NOT_FOUNDを返す。
	Get(ctx context.Context, id string) (*model.Car, error)
	// Create は新しい車両を掲載する。
	Create(ctx context.Context, input *model.Car) (*model.Car, error)
}

// CarMetricsRecorder は車両掲載のメトリクス記録インターフェース。
type CarMetricsRecorder interface {
	RecordCarCreated()
}

// CarHandler は車両在庫のHTTPハンドラー。
type CarHandler struct {
	service CarServiceInterface
	metrics CarMetricsRecorder
}

// NewCarHandler はCarHandlerを生成する。metricsはnilでもよい。
func NewCarHandler(service CarServiceInterface, metrics CarMetricsRecorder) *CarHandler {
	return &CarHandler{
		service: service,
		metrics: metrics,
	}
}

// carRequest は車両掲載リクエストのボディ。
// imagesはURL配列をJSONエンコードした文字列（既存フロントエンドとの互換）。
type carRequest struct {
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

// carResponse は車両情報のAPIレスポンス。
// imagesはリクエストと同じワイヤフォーマットで返す。
type carResponse struct {
	ID           string    `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        float64   `json:"price"`
	Mileage      int       `json:"mileage"`
	Transmission string    `json:"transmission"`
	Fuel         string    `json:"fuel"`
	Color        string    `json:"color"`
	Description  string    `json:"description"`
	Images       string    `json:"images"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListCars は車両一覧を返す。
// GET /api/cars
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]carResponse, 0, len(cars))
	for i := range cars {
		responses = append(responses, toCarResponse(&cars[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// GetCar は車両詳細を取得する。
// GET /api/cars/{id}
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "id")

	car, err := h.service.Get(r.Context(), carID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toCarResponse(car))
}

// CreateCar は車両掲載を処理する。認証必須。
// POST /api/cars
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	images, err := model.DecodeImages(req.Images)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidCarError("imagesフィールドの形式が不正です"))
		return
	}

	input := &model.Car{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Transmission: req.Transmission,
		Fuel:         req.Fuel,
		Color:        req.Color,
		Description:  req.Description,
		Images:       images,
		Status:       model.CarStatus(req.Status),
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordCarCreated()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toCarResponse(created))
}

func toCarResponse(car *model.Car) carResponse {
	// エンコード対象はURL文字列のスライスなので失敗しない
	encoded, _ := model.EncodeImages(car.Images)

	return carResponse{
		ID:           car.ID,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.Price,
		Mileage:      car.Mileage,
		Transmission: car.Transmission,
		Fuel:         car.Fuel,
		Color:        car.Color,
		Description:  car.Description,
		Images:       encoded,
		Status:       string(car.Status),
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}
}
