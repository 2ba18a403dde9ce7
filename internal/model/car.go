// Package model はドメインモデルを定義する。
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// CarStatus は車両の販売状態を表す。
type CarStatus string

const (
	// CarStatusAvailable は販売中を示す。
	CarStatusAvailable CarStatus = "available"
	// CarStatusSold は売約済みを示す。
	CarStatusSold CarStatus = "sold"
)

// IsValid はCarStatusが定義済みの値かを検証する。
func (s CarStatus) IsValid() bool {
	return s == CarStatusAvailable || s == CarStatusSold
}

// Car は出品中の車両1台とその販売属性を表す。
// Imagesはデコード済みの画像URL列を保持する（先頭がカバー画像）。
// ワイヤ上のJSON二重エンコード文字列はサービス境界でDecodeImagesにより
// 変換され、内部ではエンコード済み文字列を持ち回らない。
type Car struct {
	ID           string
	Brand        string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	Transmission string
	Fuel         string
	Color        string
	Description  string
	Images       []string
	Status       CarStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate は車両レコードの不変条件を検証する。
// 価格と走行距離は非負、年式は4桁の整数、ブランドとモデルは必須。
func (c *Car) Validate() error {
	if c.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Year < 1000 || c.Year > 9999 {
		return fmt.Errorf("year must be a 4-digit integer: %d", c.Year)
	}
	if c.Price < 0 {
		return fmt.Errorf("price must be non-negative: %g", c.Price)
	}
	if c.Mileage < 0 {
		return fmt.Errorf("mileage must be non-negative: %d", c.Mileage)
	}
	if c.Status != "" && !c.Status.IsValid() {
		return fmt.Errorf("invalid status: %q", c.Status)
	}
	return nil
}

// DecodeImages はワイヤフォーマットの画像フィールド（URL配列をJSONエンコード
// した文字列）をURL列にデコードする。既存フロントエンドとの互換のため、
// 空文字列は空の配列として扱う。
func DecodeImages(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(encoded), &urls); err != nil {
		return nil, fmt.Errorf("failed to decode images field: %w", err)
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// EncodeImages はURL列をワイヤフォーマット（JSONエンコードした文字列）に
// エンコードする。二重エンコードはAPI互換のために維持している。
func EncodeImages(urls []string) (string, error) {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return "", fmt.Errorf("failed to encode images field: %w", err)
	}
	return string(b), nil
}
