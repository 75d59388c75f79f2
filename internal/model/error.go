// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")

	// ErrInvalidAPIKey はWaniKani APIキーの検証(401)に失敗したことを示します
	ErrInvalidAPIKey = errors.New("invalid wanikani api key")

	// ErrUpstream はWaniKani APIが2xx以外を返したことを示します
	ErrUpstream = errors.New("wanikani api error")

	// ErrSubjectNotResolved はassignmentが参照するsubjectが
	// キャッシュに存在しないことを示します。キャッシュ未完了か
	// 上流契約とのずれであり、黙って読み飛ばしてはいけません。
	ErrSubjectNotResolved = errors.New("subject not found in cache")

	// ErrUnknownSubjectType は上流が未知のsubject_typeを返したことを示します
	ErrUnknownSubjectType = errors.New("unknown subject type")
)

// AppError はエラーコード・メッセージ・対象フィールドを持つ
// アプリケーション共通のエラー型です。Errに根本原因のsentinelを
// ラップし、errors.Isでの判別を可能にします。
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError は新しいAppErrorを生成します
func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
