// internal/middleware/hosts.go
package middleware

import (
	"net"
	"net/http"
)

// TrustedHostMiddleware はHostヘッダーが許可リストに含まれる
// リクエストのみ通します。リストが空なら全ホストを許可します。
// "*" は全許可のワイルドカードです。
func TrustedHostMiddleware(allowedHosts []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedHosts))
	wildcard := len(allowedHosts) == 0
	for _, h := range allowedHosts {
		if h == "*" {
			wildcard = true
		}
		allowed[h] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wildcard {
				next.ServeHTTP(w, r)
				return
			}
			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if !allowed[host] {
				GetLogger(r.Context()).Warn("Rejected untrusted host", "host", r.Host)
				http.Error(w, "Invalid host header", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HTTPSRedirectMiddleware はhttpで届いたリクエストをhttpsへ
// 301リダイレクトします。リバースプロキシ背後では
// X-Forwarded-Proto で判定します。
func HTTPSRedirectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
			u := *r.URL
			u.Scheme = "https"
			u.Host = r.Host
			http.Redirect(w, r, u.String(), http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}
