// internal/service/auth_service.go
package service

import (
	"context"
	"net/http"
	"time"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/wanikani"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService インターフェース
type AuthService interface {
	Login(ctx context.Context, apiKey string) (string, error)
}

type authService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(cfg *config.Config, httpClient *http.Client) AuthService {
	return &authService{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// Login は提出されたAPIキーを /user 呼び出しで検証し、成功時に
// キーを保持する署名付きセッショントークン(HS256 JWT)を返します。
// キーが無効(401)な場合は model.ErrInvalidAPIKey を、その他の
// 上流エラーはそのまま伝播します。
func (s *authService) Login(ctx context.Context, apiKey string) (string, error) {
	logger := middleware.GetLogger(ctx)

	api := wanikani.NewClient(apiKey, s.cfg, s.httpClient)
	username, err := api.Username(ctx)
	if err != nil {
		logger.Warn("API key validation failed", "error", err)
		return "", err
	}
	logger.Info("API key validated", "username", username)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   apiKey,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Session.MaxAgeSec) * time.Second)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		logger.Error("Failed to sign session token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
	}
	return signed, nil
}
