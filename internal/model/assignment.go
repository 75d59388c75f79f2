// internal/model/assignment.go
package model

import "time"

// ApprenticeSRSStages はApprenticeフェーズを構成するSRSステージです。
// このアプリはApprenticeの復習のみを表示するため、
// assignmentsの取得は常にこのステージ集合でフィルタします。
var ApprenticeSRSStages = []int{1, 2, 3, 4}

// Assignment はユーザーの学習中アイテム1件を表します。
// SubjectはSubjectStoreが保持する正規のインスタンスへの参照であり、
// コピーは作りません。
type Assignment struct {
	Subject     Subject   `json:"subject"`
	SRSStage    int       `json:"srs_stage"`
	AvailableAt time.Time `json:"available_at"`
}

// AssignmentList はsubject種別ごとにグループ化した復習リストのDTOです。
// 各グループ内はavailable_at昇順（復習可能になるのが早い順）です。
type AssignmentList struct {
	Radicals   []*Assignment
	Kanji      []*Assignment
	Vocabulary []*Assignment
}

// Total は全グループの合計件数を返します
func (l *AssignmentList) Total() int {
	return len(l.Radicals) + len(l.Kanji) + len(l.Vocabulary)
}
