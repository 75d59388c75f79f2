// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/service"
	"wanikani_apprentice/internal/webutil"
)

// loginPage はログイン画面テンプレートのコンテキスト
type loginPage struct {
	IsLoggedIn    bool
	InvalidAPIKey bool
}

type AuthHandler struct {
	service service.AuthService
	cfg     *config.Config
}

func NewAuthHandler(s service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{service: s, cfg: cfg}
}

// Index はログイン状態に応じて /assignments か /login へ振り分けます
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.APIKeyFromContext(r.Context()); ok {
		http.Redirect(w, r, "/assignments", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm はログインフォームを表示します（ログイン済みならリダイレクト）
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if _, ok := middleware.APIKeyFromContext(r.Context()); ok {
		http.Redirect(w, r, "/assignments", http.StatusSeeOther)
		return
	}
	renderHTML(w, logger, http.StatusOK, "login.html", loginPage{})
}

// Login はフォームのAPIキーを検証し、セッションクッキーを発行します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if err := r.ParseForm(); err != nil {
		logger.Warn("Failed to parse login form", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "フォームの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.LoginRequest{APIKey: strings.TrimSpace(r.FormValue("api_key"))}
	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Login form validation failed", "error", err)
		renderHTML(w, logger, http.StatusUnauthorized, "login.html", loginPage{InvalidAPIKey: true})
		return
	}

	token, err := h.service.Login(r.Context(), req.APIKey)
	if err != nil {
		if errors.Is(err, model.ErrInvalidAPIKey) {
			renderHTML(w, logger, http.StatusUnauthorized, "login.html", loginPage{InvalidAPIKey: true})
			return
		}
		logger.Error("Login failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.Session.MaxAgeSec,
		HttpOnly: true,
		Secure:   h.cfg.App.HTTPSOnly,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/assignments", http.StatusSeeOther)
}

// Logout はセッションクッキーを破棄してログイン画面へ戻します
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.App.HTTPSOnly,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
