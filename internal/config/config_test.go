// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfig(t *testing.T) {
	// viperとCfgはパッケージグローバルなのでケースごとにリセットする
	reset := func() {
		viper.Reset()
		Cfg = Config{}
	}

	t.Run("正常系: 設定ファイルの値を読み込む", func(t *testing.T) {
		reset()
		dir := writeConfigFile(t, `
server:
  port: ":9090"
wanikani:
  api_key: "config-api-key"
  api_url: "https://api.example.com/v2"
session:
  secret: "config-secret"
  max_age_sec: 600
app:
  https_only: false
  trusted_hosts:
    - "example.com"
`)

		err := LoadConfig(dir)

		require.NoError(t, err)
		assert.Equal(t, ":9090", Cfg.Server.Port)
		assert.Equal(t, "config-api-key", Cfg.WaniKani.APIKey)
		assert.Equal(t, "https://api.example.com/v2", Cfg.WaniKani.APIURL)
		assert.Equal(t, 600, Cfg.Session.MaxAgeSec)
		assert.False(t, Cfg.App.HTTPSOnly)
		assert.Equal(t, []string{"example.com"}, Cfg.App.TrustedHosts)
	})

	t.Run("正常系: 未指定の項目はデフォルト値で補う", func(t *testing.T) {
		reset()
		dir := writeConfigFile(t, `
wanikani:
  api_key: "config-api-key"
session:
  secret: "config-secret"
`)

		err := LoadConfig(dir)

		require.NoError(t, err)
		assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
		assert.Equal(t, DefaultWaniKaniAPIURL, Cfg.WaniKani.APIURL)
		assert.Equal(t, DefaultWaniKaniFilesURL, Cfg.WaniKani.FilesURL)
		assert.Equal(t, DefaultSessionMaxAgeSec, Cfg.Session.MaxAgeSec)
		assert.True(t, Cfg.App.HTTPSOnly, "https_only未指定ならtrueに倒す")
	})

	t.Run("正常系: 環境変数が設定ファイルを上書きする", func(t *testing.T) {
		reset()
		t.Setenv("WANIKANI_API_KEY", "env-api-key")
		t.Setenv("SESSION_KEY", "env-secret")
		dir := writeConfigFile(t, `
wanikani:
  api_key: "config-api-key"
session:
  secret: "config-secret"
`)

		err := LoadConfig(dir)

		require.NoError(t, err)
		assert.Equal(t, "env-api-key", Cfg.WaniKani.APIKey)
		assert.Equal(t, "env-secret", Cfg.Session.Secret)
	})
}
