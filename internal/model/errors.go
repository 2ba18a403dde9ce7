// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, listing, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeInvalidEmail       = "INVALID_EMAIL"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeCarNotFound        = "CAR_NOT_FOUND"
	ErrCodeInvalidCar         = "INVALID_CAR"
)

// NewInvalidRequestError はリクエストボディの解析失敗エラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "リクエストボディの解析に失敗しました。",
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}

// NewInvalidEmailError はメールアドレス形式エラーを生成する。
func NewInvalidEmailError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidEmail,
		Message:  fmt.Sprintf("メールアドレスの形式が不正です: %s", email),
		Category: "validation",
		Action:   "正しいメールアドレスを入力してください。",
	}
}

// NewWeakPasswordError はパスワード長不足エラーを生成する。
func NewWeakPasswordError(minLength int) *APIError {
	return &APIError{
		Code:     ErrCodeWeakPassword,
		Message:  fmt.Sprintf("パスワードは%d文字以上で指定してください。", minLength),
		Category: "validation",
		Action:   "より長いパスワードを設定してください。",
	}
}

// NewDuplicateEmailError はメールアドレス重複エラーを生成する。
func NewDuplicateEmailError() *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateEmail,
		Message:  "このメールアドレスは既に登録されています。",
		Category: "validation",
		Action:   "別のメールアドレスを使用するか、ログインしてください。",
	}
}

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
// アカウント不存在とパスワード不一致のどちらでも同一のエラーを返し、
// ユーザー列挙を防ぐ。メッセージは既存フロントエンドが照合するため変更不可。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid login credentials",
		Category: "auth",
		Action:   "メールアドレスとパスワードを確認してください。",
	}
}

// NewUnauthorizedError は認証エラーを生成する。
// トークンの欠落・不正・期限切れのいずれでも同一のエラーを返す。
// メッセージは既存フロントエンドが照合するため変更不可。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "Please authenticate.",
		Category: "auth",
		Action:   "ログインし直してください。",
	}
}

// NewCarNotFoundError は車両未検出エラーを生成する。
func NewCarNotFoundError(carID string) *APIError {
	return &APIError{
		Code:     ErrCodeCarNotFound,
		Message:  fmt.Sprintf("指定された車両が見つかりません: %s", carID),
		Category: "listing",
		Action:   "車両IDを確認してください。",
	}
}

// NewInvalidCarError は車両レコードの検証エラーを生成する。
func NewInvalidCarError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCar,
		Message:  fmt.Sprintf("車両レコードが不正です: %s", reason),
		Category: "validation",
		Action:   "入力内容を確認してください。",
	}
}
