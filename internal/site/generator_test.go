package site

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura_server/internal/types"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func newTestGenerator() *Generator {
	return NewGenerator(WithClock(func() time.Time { return fixedNow }))
}

func TestGenerate_PaletteColors(t *testing.T) {
	tests := []struct {
		theme string
		want  Palette
	}{
		{theme: "blue", want: Palette{Primary: "#2563eb", Secondary: "#3b82f6", Accent: "#1d4ed8"}},
		{theme: "purple", want: Palette{Primary: "#7c3aed", Secondary: "#8b5cf6", Accent: "#6d28d9"}},
		{theme: "green", want: Palette{Primary: "#059669", Secondary: "#10b981", Accent: "#047857"}},
		{theme: "red", want: Palette{Primary: "#dc2626", Secondary: "#ef4444", Accent: "#b91c1c"}},
		{theme: "", want: Palette{Primary: "#2563eb", Secondary: "#3b82f6", Accent: "#1d4ed8"}},
		{theme: "orange", want: Palette{Primary: "#2563eb", Secondary: "#3b82f6", Accent: "#1d4ed8"}},
		{theme: "GREEN", want: Palette{Primary: "#2563eb", Secondary: "#3b82f6", Accent: "#1d4ed8"}},
		{theme: " green ", want: Palette{Primary: "#2563eb", Secondary: "#3b82f6", Accent: "#1d4ed8"}},
	}

	g := newTestGenerator()
	for _, tt := range tests {
		t.Run("theme="+tt.theme, func(t *testing.T) {
			out := g.Generate(types.Specification{Name: "Acme", Theme: tt.theme})
			assert.Contains(t, out.CSS, tt.want.Primary)
			assert.Contains(t, out.CSS, tt.want.Secondary)
			assert.Contains(t, out.CSS, tt.want.Accent)

			for _, other := range List() {
				if other.Primary == tt.want.Primary {
					continue
				}
				assert.NotContains(t, out.CSS, other.Primary, "css leaked the %s palette", other.Name)
			}
		})
	}
}

func TestGenerate_DefaultName(t *testing.T) {
	g := newTestGenerator()
	for _, name := range []string{"", "   "} {
		out := g.Generate(types.Specification{Name: name})
		assert.Contains(t, out.HTML, "<title>My Website</title>")
		assert.Contains(t, out.HTML, "<h1>Welcome to My Website</h1>")
		assert.Contains(t, out.JS, `const siteName = "My Website";`)
		assert.NotContains(t, out.HTML, "<title></title>")
	}
}

func TestGenerate_DefaultType(t *testing.T) {
	out := newTestGenerator().Generate(types.Specification{Name: "Acme"})
	assert.Contains(t, out.HTML, "Building the future of business")
	assert.Contains(t, out.JS, "Type: Business")
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newTestGenerator()
	spec := types.Specification{Name: "Acme", Type: "Portfolio", Theme: "green", Pages: []string{"Home"}}
	assert.Equal(t, g.Generate(spec), g.Generate(spec))
}

func TestGenerate_TimestampText(t *testing.T) {
	out := newTestGenerator().Generate(types.Specification{Name: "Acme"})
	assert.Contains(t, out.HTML, "&copy; 2026 Acme. All rights reserved.")
	assert.Contains(t, out.JS, "Generated: 2026-03-14T09:26:53Z")
}

// Pages and type are accepted but do not change the markup structure.
// This pins the current behavior so a change to it is deliberate.
func TestGenerate_PagesAndTypeDoNotChangeStructure(t *testing.T) {
	g := newTestGenerator()

	base := g.Generate(types.Specification{Name: "Acme", Type: "Portfolio"})
	withPages := g.Generate(types.Specification{Name: "Acme", Type: "Portfolio", Pages: []string{"Home", "Blog", "Pricing"}})
	assert.Equal(t, base, withPages)

	other := g.Generate(types.Specification{Name: "Acme", Type: "E-commerce"})
	assert.Equal(t,
		strings.ReplaceAll(base.HTML, "portfolio", "TYPE"),
		strings.ReplaceAll(other.HTML, "e-commerce", "TYPE"),
	)
	assert.Equal(t,
		strings.ReplaceAll(base.JS, "Portfolio", "TYPE"),
		strings.ReplaceAll(other.JS, "E-commerce", "TYPE"),
	)
	assert.Equal(t, base.CSS, other.CSS)
	assert.Equal(t, strings.Count(base.HTML, "<section"), strings.Count(other.HTML, "<section"))
}

func TestGenerate_EscapesName(t *testing.T) {
	out := newTestGenerator().Generate(types.Specification{Name: `Joe's "Diner" & <Bar>`})
	assert.Contains(t, out.HTML, "<title>Joe&#39;s &#34;Diner&#34; &amp; &lt;Bar&gt;</title>")
	assert.Contains(t, out.JS, `const siteName = "Joe\'s \"Diner\" \u0026 \u003CBar\u003E";`)

	out = newTestGenerator().Generate(types.Specification{Name: "Evil */ body { display: none }"})
	assert.Contains(t, out.CSS, "/* Evil * / body { display: none } - Generated by AURA */")
}

func TestGenerate_InstructionsAndTechStack(t *testing.T) {
	out := newTestGenerator().Generate(types.Specification{Name: "Acme Web  Studio"})
	assert.Contains(t, out.Instructions, "Create folder: acme-web-studio")
	require.NotEmpty(t, out.TechStack)
	assert.Equal(t, "HTML5", out.TechStack[0])
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "green", Lookup("green").Name)
	for _, key := range []string{"GREEN", "Green", " green ", "purple "} {
		assert.Equal(t, DefaultTheme, Lookup(key).Name, "key %q", key)
		assert.False(t, Exists(key), "key %q", key)
	}
	assert.Equal(t, DefaultTheme, Lookup("teal").Name)
	assert.True(t, Exists("red"))
	assert.False(t, Exists("teal"))

	names := make([]string, 0, 4)
	for _, p := range List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"blue", "green", "purple", "red"}, names)
}

func TestNormalize(t *testing.T) {
	got := Normalize(types.Specification{Theme: "nope"})
	assert.Equal(t, DefaultName, got.Name)
	assert.Equal(t, DefaultType, got.Type)
	assert.Equal(t, DefaultTheme, got.Theme)
}
