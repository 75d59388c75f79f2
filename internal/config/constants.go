// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "WaniKaniApprentice"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultSessionMaxAgeSec = 60 * 60 * 24 * 30 // 30日
)

// WaniKani API関連
const (
	DefaultWaniKaniAPIURL   = "https://api.wanikani.com/v2"
	DefaultWaniKaniFilesURL = "https://files.wanikani.com"

	// WaniKaniAPIRevision は全リクエストに付与するAPIリビジョンヘッダーの値
	WaniKaniAPIRevision = "20170710"
)

// SessionCookieName はAPIキーを保持するセッションクッキー名
const SessionCookieName = "wanikani-api-key"
