package bundle

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura_server/internal/types"
)

var testSite = types.GeneratedSite{
	HTML:         "<h1>Acme</h1>",
	CSS:          "body { color: #059669; }",
	JS:           "console.log('acme');",
	Instructions: "DEPLOYMENT INSTRUCTIONS:\n\n1. CREATE FILES:\n   - Create folder: acme",
}

func TestRender(t *testing.T) {
	out := Render(testSite, Meta{
		Name:        "Acme",
		Type:        "Shop",
		GeneratedAt: time.Date(2026, time.June, 1, 8, 30, 0, 0, time.UTC),
	})

	assert.True(t, strings.HasPrefix(out, "AURA Generated Website\n=======================\nGenerated: 2026-06-01T08:30:00Z\nName: Acme\nType: Shop\n"))
	assert.Contains(t, out, "=== index.html ===\n<h1>Acme</h1>\n")
	assert.Contains(t, out, "=== style.css ===\nbody { color: #059669; }\n")
	assert.Contains(t, out, "=== script.js ===\nconsole.log('acme');\n")
	assert.Contains(t, out, "=== DEPLOYMENT ===\n1. Create 3 files")
	assert.NotContains(t, out, "=== README.md ===")

	// files appear in a fixed order
	html := strings.Index(out, "=== index.html ===")
	css := strings.Index(out, "=== style.css ===")
	js := strings.Index(out, "=== script.js ===")
	deploy := strings.Index(out, "=== DEPLOYMENT ===")
	assert.True(t, html < css && css < js && js < deploy)
}

func TestFiles(t *testing.T) {
	files := Files(testSite)
	require.Len(t, files, 4)
	assert.Equal(t, types.GeneratedFile{Filename: "index.html", Type: "HTML", Content: testSite.HTML}, files[0])
	assert.Equal(t, "CSS", files[1].Type)
	assert.Equal(t, "JavaScript", files[2].Type)
	assert.Equal(t, "README.md", files[3].Filename)
	assert.Equal(t, "Markdown", files[3].Type)

	noReadme := Files(types.GeneratedSite{HTML: "x"})
	assert.Len(t, noReadme, 3)
}

func TestInstructionsHTML(t *testing.T) {
	out, err := InstructionsHTML(testSite.Instructions)
	require.NoError(t, err)
	assert.Contains(t, out, "<p>DEPLOYMENT INSTRUCTIONS:</p>")
	assert.Contains(t, out, "<ol>")
	assert.Contains(t, out, "<li>Create folder: acme</li>")
}

func TestInstructionsHTML_DropsRawHTML(t *testing.T) {
	out, err := InstructionsHTML("<script>alert(1)</script>\n\nVisit https://netlify.com")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `<a href="https://netlify.com">https://netlify.com</a>`)
}
