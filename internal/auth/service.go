package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hitoshi/puntocar/internal/model"
	"github.com/hitoshi/puntocar/internal/repository"
)

// minPasswordLength はパスワードの最小文字数。
const minPasswordLength = 8

// dummyHash はユーザー不在時のタイミング攻撃対策に使うダミーハッシュ。
// 実在のパスワードとは一致しない。
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	BcryptCost int // bcryptのコストパラメータ
}

// Service はユーザー登録とログインのビジネスロジックを提供する。
type Service struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
	config   ServiceConfig
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, tokens *TokenManager, config ServiceConfig) *Service {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
	}
}

// Register は新規ユーザーを登録し、トークンを発行する。
// メールアドレスの形式不正、パスワード不足、メール重複はAPIErrorを返す。
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", model.NewInvalidEmailError(email)
	}

	if len(password) < minPasswordLength {
		return nil, "", model.NewWeakPasswordError(minPasswordLength)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user by email: %w", err)
	}
	if existing != nil {
		return nil, "", model.NewDuplicateEmailError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// ユニーク制約違反はリポジトリ層でDUPLICATE_EMAILに変換済み
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user registered", slog.String("user_id", user.ID))

	return user, token, nil
}

// Login はメールアドレスとパスワードを検証し、トークンを発行する。
// ユーザー不在とパスワード不一致は区別せず同一のエラーを返す。
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user by email: %w", err)
	}

	if user == nil {
		// ユーザー不在でも比較を実行し、応答時間の差を作らない
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, "", model.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", model.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", slog.String("user_id", user.ID))

	return user, token, nil
}
