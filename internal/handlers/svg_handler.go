// internal/handlers/svg_handler.go
package handlers

import (
	"net/http"
	"strings"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/resources"
	"wanikani_apprentice/internal/wanikani"

	"github.com/go-chi/chi/v5"
)

// SVGHandler はWaniKaniの部首SVGをミラー配信します。
// ブラウザがCDNのSVGを描画せずダウンロードしてしまうため、
// 自前で取得してstroke色をアプリのprimary色に置き換えて返します。
type SVGHandler struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewSVGHandler(cfg *config.Config, httpClient *http.Client) *SVGHandler {
	return &SVGHandler{cfg: cfg, httpClient: httpClient}
}

func (h *SVGHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	path := chi.URLParam(r, "path")
	logger.Info("Downloading radical SVG", "path", path)

	// filesサーバは認証不要なのでAPIキーは空で良い
	api := wanikani.NewClient("", h.cfg, h.httpClient)
	svg, err := api.RadicalSVG(r.Context(), path)
	if err != nil {
		logger.Error("Failed to download radical SVG", "path", path, "error", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}

	recolored := strings.ReplaceAll(svg, "stroke:#000", "stroke:"+resources.BSPrimaryColor)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(recolored))
}
