// internal/wanikani/client.go
package wanikani

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/model"
)

// Client はWaniKani API v2のクライアントです。
// 全リクエストにBearer認証とAPIリビジョンヘッダーを付与します。
// HTTPコネクションプールはアプリ全体で共有するため、*http.Client
// は外から注入します（並行リクエストに安全であること）。
type Client struct {
	baseURL  string
	filesURL string
	apiKey   string
	http     *http.Client
}

// NewClient は指定したAPIキーで新しいClientを生成します
func NewClient(apiKey string, cfg *config.Config, httpClient *http.Client) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.WaniKani.APIURL, "/"),
		filesURL: strings.TrimSuffix(cfg.WaniKani.FilesURL, "/"),
		apiKey:   apiKey,
		http:     httpClient,
	}
}

// StatusError はWaniKani APIが2xx以外を返したことを表します。
// errors.Is(err, model.ErrUpstream) で判別できます。
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wanikani: unexpected status %d from %s", e.StatusCode, e.URL)
}

func (e *StatusError) Unwrap() error {
	return model.ErrUpstream
}

// get は認証付きGETを発行します。pathAndQuery はbase URLからの相対
// パスで、ページネーションのnext_url由来のクエリを含むことがあります。
// paramsは初回リクエストのフィルタ指定用で、nilなら付与しません。
// 2xx以外はボディを閉じた上で *StatusError を返します。
func (c *Client) get(ctx context.Context, pathAndQuery string, params url.Values) (*http.Response, error) {
	u := c.baseURL + "/" + pathAndQuery
	if params != nil {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Wanikani-Revision", config.WaniKaniAPIRevision)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: u}
	}
	return resp, nil
}

// getJSON はgetの結果をdstにデコードします。ボディは常に閉じます。
func (c *Client) getJSON(ctx context.Context, pathAndQuery string, params url.Values, dst interface{}) error {
	resp, err := c.get(ctx, pathAndQuery, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("wanikani: decoding %s: %w", pathAndQuery, err)
	}
	return nil
}

// Username は /user エンドポイントでAPIキーを検証し、ユーザー名を
// 返します。401は model.ErrInvalidAPIKey として区別され、その他の
// エラーはそのまま伝播します。
func (c *Client) Username(ctx context.Context) (string, error) {
	var resp struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}

	err := c.getJSON(ctx, "user", nil, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			return "", model.NewAppError("INVALID_API_KEY", "APIキーが無効です。", "api_key", model.ErrInvalidAPIKey)
		}
		return "", err
	}
	return resp.Data.Username, nil
}

// RadicalSVG はfilesサーバから部首のSVGを取得して返します。
// 認証ヘッダーは不要です（公開アセット）。
func (c *Client) RadicalSVG(ctx context.Context, path string) (string, error) {
	u := c.filesURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, URL: u}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
