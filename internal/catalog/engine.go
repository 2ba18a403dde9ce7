// Package catalog はカタログ表示のクライアントコアを提供する。
//
// Store が取得した車両一覧に対し、Engine（Derive関数）がフィルタと
// ソートを適用して表示用の部分集合を導出する。Controller が現在の
// フィルタ設定を所有し、変更のたびに同期的に再計算を行う。
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/hitoshi/puntocar/internal/model"
)

// SortMode は表示結果の並び順を表す。
type SortMode string

const (
	// SortNewest は年式の降順。デフォルト。
	SortNewest SortMode = "newest"
	// SortPriceAsc は価格の昇順。
	SortPriceAsc SortMode = "price-asc"
	// SortPriceDesc は価格の降順。
	SortPriceDesc SortMode = "price-desc"
)

// IsValid はSortModeが定義済みの値かを検証する。
func (m SortMode) IsValid() bool {
	return m == SortNewest || m == SortPriceAsc || m == SortPriceDesc
}

// FilterConfig はカタログの絞り込み条件を表す。
// 各条件は独立したANDで結合される。ゼロ値相当（空文字・0・上限なし）の
// フィールドは制約なしとして扱う。
type FilterConfig struct {
	Brand    string  // 完全一致（大文字小文字を区別）。空は制約なし。
	MinYear  int     // 年式の下限（この値を含む）。
	MaxPrice float64 // 価格の上限（この値を含む）。
	Search   string  // ブランドまたはモデルへの部分一致（大文字小文字を区別しない）。空は制約なし。
}

// DefaultFilter は制約なしのFilterConfigを返す。
func DefaultFilter() FilterConfig {
	return FilterConfig{MaxPrice: math.MaxFloat64}
}

// Derive は車両一覧からフィルタ条件を満たす部分集合を導出し、
// 指定された並び順で返す。純粋関数であり、入力のrecordsは変更しない。
//
// 適用順序: 検索語 → ブランド → 年式下限 → 価格上限 → 安定ソート。
// 全条件はANDで結合されるため順序は結果に影響しない。
// 同一キーのレコードは入力順を保持する（安定性保証）。
// 条件を満たすレコードがない場合は空のスライスを返す。エラーは返さない:
// 不正なフィルタ値（負のMaxPrice等）は単に空の結果を生むだけである。
func Derive(records []model.Car, filter FilterConfig, sortMode SortMode) []model.Car {
	result := make([]model.Car, 0, len(records))

	search := strings.ToLower(filter.Search)
	for _, car := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(car.Brand), search) &&
			!strings.Contains(strings.ToLower(car.Model), search) {
			continue
		}
		if filter.Brand != "" && car.Brand != filter.Brand {
			continue
		}
		if car.Year < filter.MinYear {
			continue
		}
		if car.Price > filter.MaxPrice {
			continue
		}
		result = append(result, car)
	}

	switch sortMode {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	default:
		// SortNewest（未定義値もデフォルトとして扱う）
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Year > result[j].Year
		})
	}

	return result
}
