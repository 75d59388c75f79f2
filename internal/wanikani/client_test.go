// internal/wanikani/client_test.go
package wanikani

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient はモックサーバを指すClientを生成するテストヘルパー
func newTestClient(t *testing.T, apiKey string, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.WaniKani.APIURL = server.URL
	cfg.WaniKani.FilesURL = server.URL + "/files"

	return NewClient(apiKey, cfg, server.Client()), server
}

func TestClient_Username(t *testing.T) {
	t.Run("正常系: ユーザー名取得成功", func(t *testing.T) {
		var gotAuth, gotRevision string
		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/user", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			gotRevision = r.Header.Get("Wanikani-Revision")
			w.Write([]byte(`{"data": {"username": "test-user"}}`))
		}))

		username, err := client.Username(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "test-user", username)
		assert.Equal(t, "Bearer fake-api-key", gotAuth)
		assert.Equal(t, "20170710", gotRevision)
	})

	t.Run("異常系: 401はErrInvalidAPIKeyとして区別される", func(t *testing.T) {
		client, _ := newTestClient(t, "bad-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := client.Username(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidAPIKey)
		assert.NotErrorIs(t, err, model.ErrUpstream)
	})

	t.Run("異常系: 500は上流エラーとして伝播する", func(t *testing.T) {
		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.Username(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUpstream)
		assert.NotErrorIs(t, err, model.ErrInvalidAPIKey)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	})
}

func TestClient_RadicalSVG(t *testing.T) {
	t.Run("正常系: filesサーバからSVGを取得する", func(t *testing.T) {
		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/files/some-radical.svg", r.URL.Path)
			// filesサーバへのリクエストに認証ヘッダーは不要
			assert.Empty(t, r.Header.Get("Wanikani-Revision"))
			w.Write([]byte("<svg>stroke:#000</svg>"))
		}))

		svg, err := client.RadicalSVG(context.Background(), "some-radical.svg")

		require.NoError(t, err)
		assert.Equal(t, "<svg>stroke:#000</svg>", svg)
	})

	t.Run("異常系: 404は上流エラー", func(t *testing.T) {
		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.RadicalSVG(context.Background(), "missing.svg")

		require.Error(t, err)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}
