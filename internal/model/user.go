// Package model はドメインモデルを定義する。
package model

import "time"

// UserRole はユーザーの権限区分を表す。
type UserRole string

const (
	// UserRoleAdmin は管理者権限を示す。
	UserRoleAdmin UserRole = "admin"
	// UserRoleUser は一般ユーザー権限を示す。登録時のデフォルト。
	UserRoleUser UserRole = "user"
)

// User はサービス利用ユーザーを表す。
// PasswordHashはbcryptハッシュのみを保持し、平文パスワードは保存しない。
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
