// Package handler はHTTP APIのハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/puntocar/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Register は新規ユーザーを登録し、トークンを発行する。
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	// Login はメールアドレスとパスワードを検証し、トークンを発行する。
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

// AuthMetricsRecorder は認証結果のメトリクス記録インターフェース。
type AuthMetricsRecorder interface {
	RecordAuthSuccess(operation string)
	RecordAuthFailure(operation string)
}

// AuthHandler は認証のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	metrics AuthMetricsRecorder
}

// NewAuthHandler はAuthHandlerを生成する。metricsはnilでもよい。
func NewAuthHandler(service AuthServiceInterface, metrics AuthMetricsRecorder) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: metrics,
	}
}

// credentialsRequest は登録・ログイン共通のリクエストボディ。
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse はユーザー情報のAPIレスポンス。
// パスワードハッシュは含めない。
type userResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// authResponse は登録・ログイン成功時のレスポンス。
type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// Register は新規ユーザー登録を処理する。
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.recordFailure("register")
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	user, token, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.recordFailure("register")
		handleServiceError(w, err)
		return
	}

	h.recordSuccess("register")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toAuthResponse(user, token))
}

// Login はログインを処理する。
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.recordFailure("login")
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.recordFailure("login")
		handleServiceError(w, err)
		return
	}

	h.recordSuccess("login")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toAuthResponse(user, token))
}

func (h *AuthHandler) recordSuccess(operation string) {
	if h.metrics != nil {
		h.metrics.RecordAuthSuccess(operation)
	}
}

func (h *AuthHandler) recordFailure(operation string) {
	if h.metrics != nil {
		h.metrics.RecordAuthFailure(operation)
	}
}

func toAuthResponse(user *model.User, token string) authResponse {
	return authResponse{
		User: userResponse{
			Email: user.Email,
			Role:  string(user.Role),
		},
		Token: token,
	}
}
