// internal/service/assignment_service.go
package service

import (
	"context"
	"net/http"
	"sort"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/store"
	"wanikani_apprentice/internal/wanikani"
)

// AssignmentService インターフェース
type AssignmentService interface {
	ListAssignments(ctx context.Context, apiKey string) (*model.AssignmentList, error)
}

type assignmentService struct {
	db         *store.SubjectStore
	cfg        *config.Config
	httpClient *http.Client
}

// NewAssignmentService は AssignmentService の新しいインスタンスを生成します。
// APIキーはユーザーごとに異なるため、Clientはリクエストごとに組み立てて
// HTTPコネクションプールだけを共有します。
func NewAssignmentService(db *store.SubjectStore, cfg *config.Config, httpClient *http.Client) AssignmentService {
	return &assignmentService{
		db:         db,
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// ListAssignments はユーザーのApprentice assignmentsを取得し、
// available_at昇順（復習可能になるのが早い順）に並べた上で
// subject種別ごとにグループ化して返します。
func (s *assignmentService) ListAssignments(ctx context.Context, apiKey string) (*model.AssignmentList, error) {
	logger := middleware.GetLogger(ctx)

	api := wanikani.NewClient(apiKey, s.cfg, s.httpClient)
	assignments, err := api.Assignments(ctx, s.db)
	if err != nil {
		logger.Error("Failed to fetch assignments", "error", err)
		return nil, err
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].AvailableAt.Before(assignments[j].AvailableAt)
	})

	list := &model.AssignmentList{}
	for _, a := range assignments {
		// Subjectは閉じた型。未知の種別はfetch時点で弾かれている。
		switch a.Subject.(type) {
		case *model.Radical:
			list.Radicals = append(list.Radicals, a)
		case *model.Kanji:
			list.Kanji = append(list.Kanji, a)
		case *model.Vocabulary:
			list.Vocabulary = append(list.Vocabulary, a)
		}
	}

	logger.Info("Successfully retrieved assignments", "count", list.Total())
	return list, nil
}
