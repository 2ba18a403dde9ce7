package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/hitoshi/puntocar/internal/catalog"
	"github.com/hitoshi/puntocar/internal/config"
	"github.com/hitoshi/puntocar/internal/model"
)

// runCatalog はカタログクライアントモードで実行する。
// リモートカタログ（CATALOG_URL）またはサンプルデータを読み込み、
// フラグで指定された絞り込み・並べ替えを適用して一覧を出力する。
func runCatalog(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(w)

	brand := fs.String("brand", "", "ブランド完全一致で絞り込む")
	minYear := fs.Int("min-year", 0, "年式の下限（この値を含む）")
	maxPrice := fs.Float64("max-price", 0, "価格の上限（この値を含む、0は制約なし）")
	search := fs.String("search", "", "ブランド・モデルへの部分一致検索")
	sortMode := fs.String("sort", string(catalog.SortNewest), "並び順 (newest | price-asc | price-desc)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	mode := catalog.SortMode(*sortMode)
	if !mode.IsValid() {
		return fmt.Errorf("unknown sort mode: %s", *sortMode)
	}

	sourceURL := os.Getenv("CATALOG_URL")
	fetchTimeout := 10 * time.Second
	var fetchMaxSize int64
	if cfg, err := config.Load(); err == nil {
		sourceURL = cfg.CatalogURL
		fetchTimeout = cfg.FetchTimeout
		fetchMaxSize = cfg.FetchMaxSize
	}

	client := catalog.NewSafeClient(fetchTimeout)
	store := catalog.NewStore(sourceURL, client, slog.Default())
	store.SetMaxBodySize(fetchMaxSize)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	store.Load(ctx)

	if store.Degraded() {
		slog.Warn("remote catalog unavailable, showing sample inventory")
	}

	controller := catalog.NewController(store, nil)

	patch := catalog.FilterPatch{}
	if *brand != "" {
		patch.Brand = brand
	}
	if *minYear > 0 {
		patch.MinYear = minYear
	}
	if *maxPrice > 0 {
		patch.MaxPrice = maxPrice
	}
	if *search != "" {
		patch.Search = search
	}
	controller.SetFilter(patch)
	controller.SetSort(mode)

	return printCars(w, controller.Current())
}

// printCars は車両一覧をタブ区切りの表形式で出力する。
func printCars(w io.Writer, cars []model.Car) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBRAND\tMODEL\tYEAR\tPRICE\tSTATUS")
	for _, car := range cars {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%s\n",
			car.ID, car.Brand, car.Model, car.Year, car.Price, car.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d cars\n", len(cars))
	return nil
}
