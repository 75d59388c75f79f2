// internal/resources/resources_test.go
package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBSPrimaryColor(t *testing.T) {
	// app.cssの--bs-primary定義から抽出される
	assert.Regexp(t, `^#[a-f0-9]{6}$`, BSPrimaryColor)
}

func TestTemplates(t *testing.T) {
	// 全テンプレートが埋め込まれ、パース済みであること
	for _, name := range []string{"login.html", "assignments.html"} {
		require.NotNil(t, Templates.Lookup(name), name)
	}
}
