// internal/wanikani/assignments_test.go
package wanikani

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Assignments(t *testing.T) {
	t.Run("正常系: subject参照をキャッシュの正準ポインタで解決する", func(t *testing.T) {
		db := store.New()
		characters := "一"
		radical := &model.Radical{ID: 42, Characters: &characters, Meanings: []string{"Ground"}}
		kanji := &model.Kanji{ID: 7, Characters: "日", Meanings: []string{"Day"}, Readings: []string{"にち"}}
		db.PutRadical(radical)
		db.PutKanji(kanji)

		var gotQuery url.Values
		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/assignments", r.URL.Path)
			gotQuery = r.URL.Query()
			w.Write([]byte(`{
				"data": [
					{
						"id": 100,
						"data": {"subject_id": 7, "subject_type": "kanji", "srs_stage": 3, "available_at": "2023-10-01T12:00:00.000000Z"}
					},
					{
						"id": 101,
						"data": {"subject_id": 42, "subject_type": "radical", "srs_stage": 2, "available_at": "2023-10-01T09:00:00.000000Z"}
					}
				]
			}`))
		}))

		assignments, err := client.Assignments(context.Background(), db)

		require.NoError(t, err)
		assert.Equal(t, "1,2,3,4", gotQuery.Get("srs_stages"), "Apprenticeステージのみを要求する")
		assert.Equal(t, "false", gotQuery.Get("hidden"))

		require.Len(t, assignments, 2)
		// 上流の返却順のまま。ソートはしない
		assert.Same(t, kanji, assignments[0].Subject)
		assert.Equal(t, 3, assignments[0].SRSStage)
		assert.Equal(t, time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC), assignments[0].AvailableAt)
		assert.Same(t, radical, assignments[1].Subject)
		assert.Equal(t, 2, assignments[1].SRSStage)
	})

	t.Run("異常系: キャッシュに無いsubjectは読み飛ばさずエラー", func(t *testing.T) {
		db := store.New()

		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"data": [
					{"id": 100, "data": {"subject_id": 999, "subject_type": "kanji", "srs_stage": 1, "available_at": "2023-10-01T12:00:00.000000Z"}}
				]
			}`))
		}))

		_, err := client.Assignments(context.Background(), db)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSubjectNotResolved)
	})

	t.Run("異常系: 未知のsubject_typeはエラー", func(t *testing.T) {
		db := store.New()

		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"data": [
					{"id": 100, "data": {"subject_id": 1, "subject_type": "kana_vocabulary", "srs_stage": 1, "available_at": "2023-10-01T12:00:00.000000Z"}}
				]
			}`))
		}))

		_, err := client.Assignments(context.Background(), db)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownSubjectType)
	})

	t.Run("異常系: 上流エラーは伝播する", func(t *testing.T) {
		db := store.New()

		client, _ := newTestClient(t, "fake-api-key", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		_, err := client.Assignments(context.Background(), db)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}
