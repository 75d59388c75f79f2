// internal/service/assignment_service_test.go
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentService_ListAssignments(t *testing.T) {
	t.Run("正常系: available_at昇順で種別ごとにグループ化する", func(t *testing.T) {
		db := store.New()
		characters := "一"
		db.PutRadical(&model.Radical{ID: 1, Characters: &characters, Meanings: []string{"Ground"}})
		db.PutKanji(&model.Kanji{ID: 2, Characters: "日", Meanings: []string{"Day"}})
		db.PutVocabulary(&model.Vocabulary{ID: 3, Characters: "大人", Meanings: []string{"Adult"}})
		db.PutVocabulary(&model.Vocabulary{ID: 4, Characters: "一人", Meanings: []string{"Alone"}})

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			// available_atは意図的に順不同
			w.Write([]byte(`{
				"data": [
					{"id": 100, "data": {"subject_id": 4, "subject_type": "vocabulary", "srs_stage": 1, "available_at": "2023-10-03T00:00:00.000000Z"}},
					{"id": 101, "data": {"subject_id": 1, "subject_type": "radical", "srs_stage": 2, "available_at": "2023-10-01T00:00:00.000000Z"}},
					{"id": 102, "data": {"subject_id": 3, "subject_type": "vocabulary", "srs_stage": 4, "available_at": "2023-10-02T00:00:00.000000Z"}},
					{"id": 103, "data": {"subject_id": 2, "subject_type": "kanji", "srs_stage": 3, "available_at": "2023-10-04T00:00:00.000000Z"}}
				]
			}`))
		}))
		t.Cleanup(server.Close)

		cfg := &config.Config{}
		cfg.WaniKani.APIURL = server.URL
		cfg.WaniKani.FilesURL = server.URL + "/files"

		svc := NewAssignmentService(db, cfg, server.Client())
		list, err := svc.ListAssignments(context.Background(), "user-api-key")

		require.NoError(t, err)
		assert.Equal(t, "Bearer user-api-key", gotAuth, "ユーザーのAPIキーで上流を呼ぶ")
		assert.Equal(t, 4, list.Total())

		require.Len(t, list.Radicals, 1)
		assert.Equal(t, 2, list.Radicals[0].SRSStage)

		require.Len(t, list.Kanji, 1)
		assert.Equal(t, "日", list.Kanji[0].Subject.DisplayCharacters())

		// グループ内もavailable_at昇順
		require.Len(t, list.Vocabulary, 2)
		assert.Equal(t, time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC), list.Vocabulary[0].AvailableAt)
		assert.Equal(t, time.Date(2023, 10, 3, 0, 0, 0, 0, time.UTC), list.Vocabulary[1].AvailableAt)
	})

	t.Run("異常系: 上流エラーはそのまま返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(server.Close)

		cfg := &config.Config{}
		cfg.WaniKani.APIURL = server.URL
		cfg.WaniKani.FilesURL = server.URL + "/files"

		svc := NewAssignmentService(store.New(), cfg, server.Client())
		_, err := svc.ListAssignments(context.Background(), "user-api-key")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}
