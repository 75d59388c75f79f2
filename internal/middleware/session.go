// internal/middleware/session.go
package middleware

import (
	"context"
	"net/http"

	"wanikani_apprentice/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// apiKeyCtxKey はコンテキストにWaniKani APIキーを格納するためのキーです。
type apiKeyCtxKey struct{}

// SessionMiddleware はセッションクッキーのJWTを検証し、含まれる
// WaniKani APIキーをリクエストコンテキストへ載せるミドルウェアです。
// クッキーが無い・署名が不正・期限切れの場合はAPIキー無しで次の
// ハンドラへ進みます（ログインが必要なハンドラ側でリダイレクト）。
func SessionMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			cookie, err := r.Cookie(config.SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			// 署名アルゴリズムと有効期限はjwt.Parseが検証する
			token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.Session.Secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Session cookie rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Warn("Session cookie has unknown claims type")
				next.ServeHTTP(w, r)
				return
			}
			apiKey, err := claims.GetSubject()
			if err != nil || apiKey == "" {
				logger.Warn("Session cookie missing subject claim", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), apiKeyCtxKey{}, apiKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyFromContext はコンテキストからWaniKani APIキーを取得します。
// 第2戻り値はログイン済みかどうかを示します。
func APIKeyFromContext(ctx context.Context) (string, bool) {
	apiKey, ok := ctx.Value(apiKeyCtxKey{}).(string)
	return apiKey, ok && apiKey != ""
}
