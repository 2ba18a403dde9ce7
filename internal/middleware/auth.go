// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hitoshi/puntocar/internal/auth"
	"github.com/hitoshi/puntocar/internal/model"
)

// contextKey はコンテキストキーの衝突を避けるための型。
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// TokenVerifier はトークン検証のインターフェース。
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// NewAuthMiddleware はBearerトークンを検証するミドルウェアを返す。
// Authorizationヘッダーの欠落、形式不正、検証失敗はすべて401を返す。
// 検証に成功した場合はクレームをコンテキストに格納して次のハンドラーへ渡す。
func NewAuthMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithClaims はクレームを格納したコンテキストを返す。
func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext はコンテキストからクレームを取り出す。
// 認証済みリクエストでない場合はエラーを返す。
func ClaimsFromContext(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("claims not found in context")
	}
	return claims, nil
}
