// internal/model/subject.go
package model

// SubjectType はWaniKani APIが返すsubjectの種別です。
// この集合は上流が管理する閉じた集合で、新しい値が現れた場合は
// クライアント側の更新が必要になります。
type SubjectType string

const (
	SubjectTypeRadical    SubjectType = "radical"
	SubjectTypeKanji      SubjectType = "kanji"
	SubjectTypeVocabulary SubjectType = "vocabulary"
)

// Subject は3種類のsubjectを束ねる閉じた型です。
// 実装はこのパッケージ内の Radical / Kanji / Vocabulary のみで、
// 型switchで新種別の追加漏れを検出できるようにしています。
type Subject interface {
	subject()

	// DisplayCharacters は表示用の文字を返します（無い場合は空文字）。
	DisplayCharacters() string
}

// Radical は部首を表します。
// Charactersはnullの場合があり、その際はCharacterSVGPathが
// 代替画像（files サーバ上のパス）を指します。
type Radical struct {
	ID               int64    `json:"id"`
	DocumentURL      string   `json:"document_url"`
	Characters       *string  `json:"characters"`
	CharacterSVGPath *string  `json:"character_svg_path"`
	Meanings         []string `json:"meanings"`
}

// Kanji は漢字を表します
type Kanji struct {
	ID          int64    `json:"id"`
	DocumentURL string   `json:"document_url"`
	Characters  string   `json:"characters"`
	Meanings    []string `json:"meanings"`
	Readings    []string `json:"readings"`
}

// Vocabulary は単語を表します
type Vocabulary struct {
	ID          int64    `json:"id"`
	DocumentURL string   `json:"document_url"`
	Characters  string   `json:"characters"`
	Meanings    []string `json:"meanings"`
	Readings    []string `json:"readings"`
}

func (*Radical) subject()    {}
func (*Kanji) subject()      {}
func (*Vocabulary) subject() {}

func (r *Radical) DisplayCharacters() string {
	if r.Characters == nil {
		return ""
	}
	return *r.Characters
}

func (k *Kanji) DisplayCharacters() string      { return k.Characters }
func (v *Vocabulary) DisplayCharacters() string { return v.Characters }
