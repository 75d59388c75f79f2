// internal/wanikani/subjects.go
package wanikani

import (
	"context"
	"iter"
	"net/url"
	"strings"

	"wanikani_apprentice/internal/model"
)

// subjectPage は /subjects のページレスポンスです。
// pages.next_url がnullなら最終ページ。
type subjectPage struct {
	Pages struct {
		NextURL *string `json:"next_url"`
	} `json:"pages"`
	Data []subjectEnvelope `json:"data"`
}

type subjectEnvelope struct {
	ID   int64 `json:"id"`
	Data struct {
		DocumentURL     string           `json:"document_url"`
		Characters      *string          `json:"characters"`
		CharacterImages []characterImage `json:"character_images"`
		Meanings        []meaningEntry   `json:"meanings"`
		Readings        []readingEntry   `json:"readings"`
	} `json:"data"`
}

type characterImage struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Metadata    struct {
		InlineStyles bool `json:"inline_styles"`
	} `json:"metadata"`
}

type meaningEntry struct {
	Meaning        string `json:"meaning"`
	AcceptedAnswer bool   `json:"accepted_answer"`
}

type readingEntry struct {
	Reading        string `json:"reading"`
	AcceptedAnswer bool   `json:"accepted_answer"`
}

// subjects は指定種別の全subjectをカーソルページネーションで辿る
// 遅延シーケンスを返します。ページは消費に応じて順次取得します。
//
// フィルタを付与するのは初回リクエストのみです。next_urlには
// ページネーションカーソル(page_after_id)を含む全クエリが既に
// 入っているため、そのまま辿ります（再適用してはいけない）。
//
// 途中のページでエラーが出た場合はエラーを1度yieldして終了します。
// それまでにyield済みのアイテムはページ単位で独立に有効なので
// 取り消しません。シーケンスは再開不能で、呼び出しごとに新しい
// ウォークを開始します。
func (c *Client) subjects(ctx context.Context, st model.SubjectType) iter.Seq2[subjectEnvelope, error] {
	return func(yield func(subjectEnvelope, error) bool) {
		next := "subjects"
		params := url.Values{
			"types":  {string(st)},
			"hidden": {"false"},
		}

		for next != "" {
			var page subjectPage
			if err := c.getJSON(ctx, next, params, &page); err != nil {
				yield(subjectEnvelope{}, err)
				return
			}
			params = nil

			for _, env := range page.Data {
				if !yield(env, nil) {
					return
				}
			}

			if page.Pages.NextURL == nil {
				next = ""
			} else {
				next = strings.TrimPrefix(*page.Pages.NextURL, c.baseURL+"/")
			}
		}
	}
}

// Radicals は全radicalを遅延シーケンスで返します。
// meaningsはaccepted_answerのもののみ、上流の順序を保って保持します。
// charactersがnullのradicalはinline-styles付きSVG画像のパスを
// 代替として解決します（描画層が /radical-svg 経由で配信する）。
func (c *Client) Radicals(ctx context.Context) iter.Seq2[*model.Radical, error] {
	return func(yield func(*model.Radical, error) bool) {
		for env, err := range c.subjects(ctx, model.SubjectTypeRadical) {
			if err != nil {
				yield(nil, err)
				return
			}
			r := &model.Radical{
				ID:               env.ID,
				DocumentURL:      env.Data.DocumentURL,
				Characters:       env.Data.Characters,
				CharacterSVGPath: env.characterSVGPath(c.filesURL),
				Meanings:         env.acceptedMeanings(),
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Kanji は全漢字を遅延シーケンスで返します
func (c *Client) Kanji(ctx context.Context) iter.Seq2[*model.Kanji, error] {
	return func(yield func(*model.Kanji, error) bool) {
		for env, err := range c.subjects(ctx, model.SubjectTypeKanji) {
			if err != nil {
				yield(nil, err)
				return
			}
			k := &model.Kanji{
				ID:          env.ID,
				DocumentURL: env.Data.DocumentURL,
				Characters:  env.displayCharacters(),
				Meanings:    env.acceptedMeanings(),
				Readings:    env.acceptedReadings(),
			}
			if !yield(k, nil) {
				return
			}
		}
	}
}

// Vocabulary は全単語を遅延シーケンスで返します
func (c *Client) Vocabulary(ctx context.Context) iter.Seq2[*model.Vocabulary, error] {
	return func(yield func(*model.Vocabulary, error) bool) {
		for env, err := range c.subjects(ctx, model.SubjectTypeVocabulary) {
			if err != nil {
				yield(nil, err)
				return
			}
			v := &model.Vocabulary{
				ID:          env.ID,
				DocumentURL: env.Data.DocumentURL,
				Characters:  env.displayCharacters(),
				Meanings:    env.acceptedMeanings(),
				Readings:    env.acceptedReadings(),
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// acceptedMeanings はaccepted_answerなmeaningのみを元の順序で返します
func (e subjectEnvelope) acceptedMeanings() []string {
	meanings := make([]string, 0, len(e.Data.Meanings))
	for _, m := range e.Data.Meanings {
		if m.AcceptedAnswer {
			meanings = append(meanings, m.Meaning)
		}
	}
	return meanings
}

// acceptedReadings はaccepted_answerなreadingのみを元の順序で返します
func (e subjectEnvelope) acceptedReadings() []string {
	readings := make([]string, 0, len(e.Data.Readings))
	for _, r := range e.Data.Readings {
		if r.AcceptedAnswer {
			readings = append(readings, r.Reading)
		}
	}
	return readings
}

// displayCharacters は漢字・単語用。charactersは常に存在する契約です。
func (e subjectEnvelope) displayCharacters() string {
	if e.Data.Characters == nil {
		return ""
	}
	return *e.Data.Characters
}

// characterSVGPath はinline-stylesなSVG画像のfilesサーバ上のパスを
// 返します。該当画像が無ければnilです。
func (e subjectEnvelope) characterSVGPath(filesURL string) *string {
	for _, img := range e.Data.CharacterImages {
		if img.ContentType == "image/svg+xml" && img.Metadata.InlineStyles {
			path := strings.TrimPrefix(img.URL, filesURL+"/")
			return &path
		}
	}
	return nil
}
