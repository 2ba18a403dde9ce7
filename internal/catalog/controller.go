package catalog

import "github.com/hitoshi/puntocar/internal/model"

// FilterPatch はフィルタ設定の部分更新を表す。
// nilフィールドは変更しない（記事状態更新と同じポインタによる部分更新の形）。
type FilterPatch struct {
	Brand    *string
	MinYear  *int
	MaxPrice *float64
	Search   *string
}

// Controller は現在のフィルタ設定とソートモードを所有する。
// UI操作によるすべての変更はControllerを経由し、変更のたびに同期的に
// Deriveを再実行して結果をonChangeコールバックへ渡す。
// 更新は単一スレッドで同期的に行われる前提であり、ロックは持たない。
type Controller struct {
	store    *Store
	filter   FilterConfig
	sortMode SortMode
	onChange func([]model.Car)
}

// NewController はControllerを生成する。フィルタは制約なし、
// ソートはnewestで初期化される。onChangeはnil可（再計算結果の通知が
// 不要な場合）。
func NewController(store *Store, onChange func([]model.Car)) *Controller {
	return &Controller{
		store:    store,
		filter:   DefaultFilter(),
		sortMode: SortNewest,
		onChange: onChange,
	}
}

// SetFilter は部分更新を現在のフィルタ設定にマージし、再計算を実行する。
func (c *Controller) SetFilter(patch FilterPatch) {
	if patch.Brand != nil {
		c.filter.Brand = *patch.Brand
	}
	if patch.MinYear != nil {
		c.filter.MinYear = *patch.MinYear
	}
	if patch.MaxPrice != nil {
		c.filter.MaxPrice = *patch.MaxPrice
	}
	if patch.Search != nil {
		c.filter.Search = *patch.Search
	}
	c.recompute()
}

// Reset はフィルタ設定をデフォルトに戻し、再計算を実行する。
// ソートモードは変更しない。
func (c *Controller) Reset() {
	c.filter = DefaultFilter()
	c.recompute()
}

// SetSort はソートモードを変更し、再計算を実行する。
// 未定義の値はnewestとして扱う。
func (c *Controller) SetSort(mode SortMode) {
	if !mode.IsValid() {
		mode = SortNewest
	}
	c.sortMode = mode
	c.recompute()
}

// Filter は現在のフィルタ設定のスナップショットを返す。
func (c *Controller) Filter() FilterConfig {
	return c.filter
}

// Sort は現在のソートモードを返す。
func (c *Controller) Sort() SortMode {
	return c.sortMode
}

// Current は現在の設定でDeriveを実行した結果を返す。
func (c *Controller) Current() []model.Car {
	return Derive(c.store.Cars(), c.filter, c.sortMode)
}

// recompute は現在の設定で導出結果を再計算し、onChangeへ通知する。
func (c *Controller) recompute() {
	if c.onChange != nil {
		c.onChange(c.Current())
	}
}
