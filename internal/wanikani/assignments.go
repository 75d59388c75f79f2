// internal/wanikani/assignments.go
package wanikani

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/store"
)

type assignmentPage struct {
	Data []assignmentEnvelope `json:"data"`
}

type assignmentEnvelope struct {
	ID   int64 `json:"id"`
	Data struct {
		SubjectID   int64     `json:"subject_id"`
		SubjectType string    `json:"subject_type"`
		SRSStage    int       `json:"srs_stage"`
		AvailableAt time.Time `json:"available_at"`
	} `json:"data"`
}

// Assignments はApprenticeステージ(1〜4)の学習中アイテムを取得し、
// 各assignmentのsubject参照をSubjectStoreで解決して返します。
// 順序は上流の返却順のままです（ソートは呼び出し側の責務）。
//
// subjectがキャッシュに無い場合は model.ErrSubjectNotResolved、
// subject_typeが未知の場合は model.ErrUnknownSubjectType を返し、
// いずれも該当アイテムを黙って読み飛ばすことはしません。
//
// TODO: assignmentsのページネーション対応。現在の取得規模では
// 1ページに収まるため未対応（上流契約でも観測されていない）。
func (c *Client) Assignments(ctx context.Context, db *store.SubjectStore) ([]*model.Assignment, error) {
	stages := make([]string, len(model.ApprenticeSRSStages))
	for i, stage := range model.ApprenticeSRSStages {
		stages[i] = strconv.Itoa(stage)
	}
	params := url.Values{
		"srs_stages": {strings.Join(stages, ",")},
		"hidden":     {"false"},
	}

	var page assignmentPage
	if err := c.getJSON(ctx, "assignments", params, &page); err != nil {
		return nil, err
	}

	assignments := make([]*model.Assignment, 0, len(page.Data))
	for _, env := range page.Data {
		subject, err := resolveSubject(db, env)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, &model.Assignment{
			Subject:     subject,
			SRSStage:    env.Data.SRSStage,
			AvailableAt: env.Data.AvailableAt,
		})
	}
	return assignments, nil
}

// resolveSubject はassignmentのsubject参照をキャッシュから解決します
func resolveSubject(db *store.SubjectStore, env assignmentEnvelope) (model.Subject, error) {
	id := env.Data.SubjectID

	switch model.SubjectType(env.Data.SubjectType) {
	case model.SubjectTypeRadical:
		if r, ok := db.Radical(id); ok {
			return r, nil
		}
	case model.SubjectTypeKanji:
		if k, ok := db.Kanji(id); ok {
			return k, nil
		}
	case model.SubjectTypeVocabulary:
		if v, ok := db.Vocabulary(id); ok {
			return v, nil
		}
	default:
		return nil, model.NewAppError(
			"UNKNOWN_SUBJECT_TYPE",
			fmt.Sprintf("未知のsubject_typeです: %q", env.Data.SubjectType),
			"subject_type",
			model.ErrUnknownSubjectType,
		)
	}

	return nil, model.NewAppError(
		"SUBJECT_NOT_RESOLVED",
		fmt.Sprintf("subject %s/%d がキャッシュに存在しません。", env.Data.SubjectType, id),
		"subject_id",
		model.ErrSubjectNotResolved,
	)
}
