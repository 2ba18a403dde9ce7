package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/puntocar/internal/model"
)

// PostgresCarRepo はPostgreSQLを使用した車両リポジトリ。
// imagesカラムはワイヤフォーマットと同じJSONエンコード済み文字列（TEXT）で
// 保存し、読み書きの境界でURL列と相互変換する。
type PostgresCarRepo struct {
	db *sql.DB
}

// NewPostgresCarRepo はPostgresCarRepoを生成する。
func NewPostgresCarRepo(db *sql.DB) *PostgresCarRepo {
	return &PostgresCarRepo{db: db}
}

const carColumns = `id, brand, model, year, price, mileage, transmission, fuel,
	color, description, images, status, created_at, updated_at`

// List は全車両を作成順で返す。
func (r *PostgresCarRepo) List(ctx context.Context) ([]model.Car, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+carColumns+` FROM cars ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []model.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}

	if cars == nil {
		cars = []model.Car{}
	}
	return cars, nil
}

// FindByID は指定IDの車両を取得する。見つからない場合はnilを返す。
func (r *PostgresCarRepo) FindByID(ctx context.Context, id string) (*model.Car, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = $1`,
		id,
	)

	car, err := scanCar(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find car by ID: %w", err)
	}

	return car, nil
}

// Create は車両を作成する。
func (r *PostgresCarRepo) Create(ctx context.Context, car *model.Car) error {
	images, err := model.EncodeImages(car.Images)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO cars (id, brand, model, year, price, mileage, transmission,
		                   fuel, color, description, images, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		car.ID, car.Brand, car.Model, car.Year, car.Price, car.Mileage,
		car.Transmission, car.Fuel, car.Color, car.Description,
		images, car.Status, car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert car: %w", err)
	}

	return nil
}

// rowScanner は*sql.Rowと*sql.Rowsの共通部分。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCar は1行を読み取り、imagesカラムをデコードしてCarを組み立てる。
func scanCar(row rowScanner) (*model.Car, error) {
	car := &model.Car{}
	var images string
	err := row.Scan(
		&car.ID, &car.Brand, &car.Model, &car.Year, &car.Price, &car.Mileage,
		&car.Transmission, &car.Fuel, &car.Color, &car.Description,
		&images, &car.Status, &car.CreatedAt, &car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	car.Images, err = model.DecodeImages(images)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored images for car %s: %w", car.ID, err)
	}

	return car, nil
}

// compile-time interface check
var _ CarRepository = (*PostgresCarRepo)(nil)
