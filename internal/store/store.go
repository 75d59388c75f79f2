// internal/store/store.go
package store

import (
	"sync"

	"wanikani_apprentice/internal/model"
)

// SubjectStore はsubject種別ごとのid→subject参照キャッシュです。
// プロセス起動時に空で生成し、Populateサイクルで埋めた後は
// 全リクエストから共有して読み取ります。subject定義はユーザー
// 非依存なのでプロセス全体で1つ持てば足ります。
//
// 3つのパーティションは独立しており、idの一意性は種別内でのみ
// 保証されます（radical 5 と kanji 5 は別物）。書き込みは種別ごと
// に単一のpopulateタスクが行うため衝突しませんが、稼働中に
// 再Populateした場合、読み手は新旧エントリの混在を観測し得ます。
// 同一idへの再挿入は上書きであり冪等です。
type SubjectStore struct {
	mu         sync.RWMutex
	radical    map[int64]*model.Radical
	kanji      map[int64]*model.Kanji
	vocabulary map[int64]*model.Vocabulary
}

// New は空のSubjectStoreを生成します
func New() *SubjectStore {
	return &SubjectStore{
		radical:    make(map[int64]*model.Radical),
		kanji:      make(map[int64]*model.Kanji),
		vocabulary: make(map[int64]*model.Vocabulary),
	}
}

func (s *SubjectStore) PutRadical(r *model.Radical) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.radical[r.ID] = r
}

func (s *SubjectStore) PutKanji(k *model.Kanji) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kanji[k.ID] = k
}

func (s *SubjectStore) PutVocabulary(v *model.Vocabulary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vocabulary[v.ID] = v
}

// Radical はキャッシュ済みradicalへの正規の参照を返します（コピーしない）
func (s *SubjectStore) Radical(id int64) (*model.Radical, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.radical[id]
	return r, ok
}

func (s *SubjectStore) Kanji(id int64) (*model.Kanji, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.kanji[id]
	return k, ok
}

func (s *SubjectStore) Vocabulary(id int64) (*model.Vocabulary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vocabulary[id]
	return v, ok
}

// Counts は各パーティションの件数を返します（ログ・ヘルスチェック用）
func (s *SubjectStore) Counts() (radicals, kanji, vocabulary int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.radical), len(s.kanji), len(s.vocabulary)
}
