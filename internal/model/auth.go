// internal/model/auth.go
package model

// LoginRequest はログインフォームの入力DTO
type LoginRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}
