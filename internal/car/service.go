// Package car は車両在庫のドメインロジックを提供する。
package car

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/puntocar/internal/model"
	"github.com/hitoshi/puntocar/internal/repository"
	"github.com/hitoshi/puntocar/internal/security"
)

// Service は車両在庫のサービス層。
// 一覧取得、個別取得、新規掲載のビジネスロジックを提供する。
type Service struct {
	carRepo   repository.CarRepository
	sanitizer security.TextSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(carRepo repository.CarRepository, sanitizer security.TextSanitizerService) *Service {
	return &Service{
		carRepo:   carRepo,
		sanitizer: sanitizer,
	}
}

// List は全車両を作成順で返す。
// 絞り込みとソートはクライアント側で行うため、常に全件を返す。
func (s *Service) List(ctx context.Context) ([]model.Car, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("車両一覧の取得に失敗しました: %w", err)
	}
	return cars, nil
}

// Get は指定IDの車両を取得する。
// 見つからない場合はCAR_NOT_FOUNDのAPIErrorを返す。
func (s *Service) Get(ctx context.Context, id string) (*model.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("車両の取得に失敗しました: %w", err)
	}
	if car == nil {
		return nil, model.NewCarNotFoundError(id)
	}
	return car, nil
}

// Create は新しい車両を掲載する。
// ID、タイムスタンプ、デフォルトステータスはサービス側で付与する。
// 説明文は保存前にサニタイズされる。検証に失敗した場合はINVALID_CARの
// APIErrorを返す。
func (s *Service) Create(ctx context.Context, input *model.Car) (*model.Car, error) {
	now := time.Now()

	created := *input
	created.ID = uuid.New().String()
	created.CreatedAt = now
	created.UpdatedAt = now

	if created.Status == "" {
		created.Status = model.CarStatusAvailable
	}
	if created.Images == nil {
		created.Images = []string{}
	}
	if s.sanitizer != nil {
		created.Description = s.sanitizer.Sanitize(created.Description)
	}

	if err := created.Validate(); err != nil {
		return nil, model.NewInvalidCarError(err.Error())
	}

	if err := s.carRepo.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("車両の作成に失敗しました: %w", err)
	}

	slog.Info("car created",
		slog.String("car_id", created.ID),
		slog.String("brand", created.Brand),
		slog.String("model", created.Model),
	)

	return &created, nil
}
