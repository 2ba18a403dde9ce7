package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testLogger は出力を破棄するテスト用ロガーを返す。
func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// --- 正常系: リモートカタログの取得 ---

func TestStore_Load_FetchesRemoteCatalog(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		// imagesはワイヤ上では二重エンコードされた文字列
		io.WriteString(w, `[
			{"id":"abc","brand":"Toyota","model":"Corolla","year":2022,"price":25900,
			 "mileage":15000,"transmission":"Automatic","fuel":"Gasoline",
			 "images":"[\"https://example.com/cover.jpg\"]","status":"available"}
		]`)
	}))
	defer ts.Close()

	store := NewStore(ts.URL, ts.Client(), testLogger())
	store.Load(context.Background())

	if store.Degraded() {
		t.Error("store is degraded, want remote data")
	}
	cars := store.Cars()
	if len(cars) != 1 {
		t.Fatalf("cars count = %d, want 1", len(cars))
	}
	if cars[0].ID != "abc" || cars[0].Brand != "Toyota" {
		t.Errorf("car = %+v, want the remote record", cars[0])
	}
	// 境界でデコードされ、内部ではURL列として保持される
	if len(cars[0].Images) != 1 || cars[0].Images[0] != "https://example.com/cover.jpg" {
		t.Errorf("images = %v, want decoded URL slice", cars[0].Images)
	}
}

// statusが空の場合はavailableが補われることを検証
func TestStore_Load_DefaultsStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"x","brand":"Fiat","model":"Uno","year":2020,"price":9000,"images":"[]"}]`)
	}))
	defer ts.Close()

	store := NewStore(ts.URL, ts.Client(), testLogger())
	store.Load(context.Background())

	cars := store.Cars()
	if len(cars) != 1 {
		t.Fatalf("cars count = %d, want 1", len(cars))
	}
	if string(cars[0].Status) != "available" {
		t.Errorf("status = %q, want %q", cars[0].Status, "available")
	}
}

// --- フォールバック系: あらゆる失敗でサンプルセットに置き換える ---

func TestStore_Load_FallsBackOnServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	store := NewStore(ts.URL, ts.Client(), testLogger())
	store.Load(context.Background())

	if !store.Degraded() {
		t.Error("store is not degraded after 500 response")
	}
	if len(store.Cars()) != 12 {
		t.Errorf("cars count = %d, want the 12 sample records", len(store.Cars()))
	}
}

func TestStore_Load_FallsBackOnNetworkError(t *testing.T) {
	// 事前にクローズしたサーバーで接続エラーを再現する
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	client := ts.Client()
	ts.Close()

	store := NewStore(url, client, testLogger())
	store.Load(context.Background())

	if !store.Degraded() {
		t.Error("store is not degraded after network error")
	}
	if len(store.Cars()) != 12 {
		t.Errorf("cars count = %d, want 12", len(store.Cars()))
	}
}

func TestStore_Load_FallsBackOnMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"a list"`)
	}))
	defer ts.Close()

	store := NewStore(ts.URL, ts.Client(), testLogger())
	store.Load(context.Background())

	if !store.Degraded() {
		t.Error("store is not degraded after decode failure")
	}
}

func TestStore_Load_FallsBackOnBadImagesField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"x","brand":"Fiat","model":"Uno","year":2020,"price":9000,"images":"{broken"}]`)
	}))
	defer ts.Close()

	store := NewStore(ts.URL, ts.Client(), testLogger())
	store.Load(context.Background())

	if !store.Degraded() {
		t.Error("store is not degraded after images decode failure")
	}
}

// 読み取り上限を超えるレスポンスは途中で打ち切られてデコードに失敗し、
// フォールバックが発生することを検証
func TestStore_Load_EnforcesMaxBodySize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"x","brand":"Fiat","model":"Uno","year":2020,"price":9000,"images":"[]"}]`)
	}))
	defer ts.Close()

	store := NewStore(ts.URL, ts.Client(), testLogger())
	store.SetMaxBodySize(10)
	store.Load(context.Background())

	if !store.Degraded() {
		t.Error("store is not degraded after exceeding the body size limit")
	}
}

// --- Cars のコピー保証 ---

func TestStore_Cars_ReturnsCopy(t *testing.T) {
	store := NewStore("http://unused.invalid", &http.Client{Timeout: time.Second}, testLogger())
	store.Load(context.Background()) // フォールバックでサンプルが入る

	first := store.Cars()
	first[0].Brand = "Mutated"

	second := store.Cars()
	if second[0].Brand == "Mutated" {
		t.Error("mutation of returned slice leaked into the store")
	}
}

// --- NewSafeClient ---

// SSRF防止クライアントがプライベートアドレスへのアクセスをブロックすることを検証
func TestNewSafeClient_BlocksLoopback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer ts.Close()

	client := NewSafeClient(2 * time.Second)
	_, err := client.Get(ts.URL)
	if err == nil {
		t.Error("safe client allowed a loopback request, want error")
	}
}
