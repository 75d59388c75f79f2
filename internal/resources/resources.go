// internal/resources/resources.go
package resources

import (
	"embed"
	"html/template"
	"io/fs"
	"regexp"
	"strings"

	"wanikani_apprentice/internal/webutil"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates はアプリ内の全HTMLテンプレートです。
// ページはファイル名（login.html等）で参照します。
var Templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"display_time_remaining": webutil.FormatTimeRemaining,
		"join":                   strings.Join,
	}).ParseFS(templatesFS, "templates/*.html"),
)

// Static は /static/ 配下で配信する埋め込みアセットです
var Static = func() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}()

// BSPrimaryColor はスタイルシートのprimary色です。
// 部首SVGのstroke色の置換に使うため、CSSと確実に一致するよう
// 埋め込んだスタイルシートから起動時に抽出します。
var BSPrimaryColor = func() string {
	css, err := fs.ReadFile(Static, "css/app.css")
	if err != nil {
		panic(err)
	}
	re := regexp.MustCompile(`--bs-primary:\s*(#[a-f0-9]{6})`)
	m := re.FindSubmatch(css)
	if m == nil {
		panic("couldn't find --bs-primary color in app.css")
	}
	return string(m[1])
}()
