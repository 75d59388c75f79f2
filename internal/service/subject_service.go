// internal/service/subject_service.go
package service

import (
	"context"

	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/store"
	"wanikani_apprentice/internal/wanikani"

	"golang.org/x/sync/errgroup"
)

// SubjectService インターフェース
type SubjectService interface {
	Populate(ctx context.Context) error
}

type subjectService struct {
	api *wanikani.Client
	db  *store.SubjectStore
}

// NewSubjectService は SubjectService の新しいインスタンスを生成します
func NewSubjectService(api *wanikani.Client, db *store.SubjectStore) SubjectService {
	return &subjectService{
		api: api,
		db:  db,
	}
}

// Populate はradical・kanji・vocabularyの3ストリームを並行に取得し、
// SubjectStoreの各パーティションへストリーム挿入します。3つの上流
// リソースはページネーションカーソルが独立しているため、直列化する
// 理由がありません。全ストリームが完了するまで戻りません。
//
// いずれかのストリームが失敗した場合はerrgroupのコンテキストで
// 残りをキャンセルし、最初のエラーを1度だけ呼び出し元へ返します。
// その場合ストアは部分的にしか埋まっていないため、成功するまで
// assignmentの解決に使ってはいけません。
func (s *subjectService) Populate(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n := 0
		for r, err := range s.api.Radicals(ctx) {
			if err != nil {
				return err
			}
			s.db.PutRadical(r)
			n++
		}
		logger.Info("Loaded radicals", "count", n)
		return nil
	})

	g.Go(func() error {
		n := 0
		for k, err := range s.api.Kanji(ctx) {
			if err != nil {
				return err
			}
			s.db.PutKanji(k)
			n++
		}
		logger.Info("Loaded kanji", "count", n)
		return nil
	})

	g.Go(func() error {
		n := 0
		for v, err := range s.api.Vocabulary(ctx) {
			if err != nil {
				return err
			}
			s.db.PutVocabulary(v)
			n++
		}
		logger.Info("Loaded vocabulary", "count", n)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Subject cache population failed", "error", err)
		return model.NewAppError("CACHE_POPULATION_FAILED", "subjectキャッシュの構築に失敗しました。", "", err)
	}
	return nil
}
