// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/puntocar/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// Create はユーザーを作成する。
	// メールアドレスの一意制約に違反した場合はDUPLICATE_EMAILのAPIErrorを返す。
	Create(ctx context.Context, user *model.User) error
}

// CarRepository は車両データの永続化インターフェース。
type CarRepository interface {
	// List は全車両を作成順で返す。サーバー側でのフィルタリングは行わない
	// （絞り込みはクライアントの責務）。
	List(ctx context.Context) ([]model.Car, error)

	// FindByID は指定IDの車両を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Car, error)

	// Create は車両を作成する。
	Create(ctx context.Context, car *model.Car) error
}
