// internal/handlers/render.go
package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"wanikani_apprentice/internal/resources"
)

// renderHTML はテンプレートを描画してHTMLレスポンスを返します。
// 描画エラー時に中途半端なボディを返さないよう、一旦バッファへ
// 描画してから書き出します。
func renderHTML(w http.ResponseWriter, logger *slog.Logger, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := resources.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
