package site

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aura_server/internal/types"
)

const (
	DefaultName = "My Website"
	DefaultType = "Business"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("site").
		Funcs(template.FuncMap{"comment": commentSafe}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

var techStack = []string{"HTML5", "CSS3", "JavaScript", "Font Awesome", "Google Fonts"}

type pageData struct {
	Name        string
	Type        string
	TypeLower   string
	Palette     Palette
	Year        int
	GeneratedAt string
}

// Generator renders the fixed site templates for a Specification.
type Generator struct {
	now func() time.Time
}

type Option func(*Generator)

// WithClock overrides the time source used for the copyright year and generation banner.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now returns the generator's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}

// Normalize fills every missing field of spec with its default.
// Pages and type are kept as given; they do not change the rendered structure.
func Normalize(spec types.Specification) types.Specification {
	spec.Name = strings.TrimSpace(spec.Name)
	if spec.Name == "" {
		spec.Name = DefaultName
	}
	spec.Type = strings.TrimSpace(spec.Type)
	if spec.Type == "" {
		spec.Type = DefaultType
	}
	spec.Theme = Lookup(spec.Theme).Name
	return spec
}

// Generate renders html, css and js for spec. It never fails.
func (g *Generator) Generate(spec types.Specification) types.GeneratedSite {
	spec = Normalize(spec)
	now := g.now()
	data := pageData{
		Name:        spec.Name,
		Type:        spec.Type,
		TypeLower:   cases.Lower(language.English).String(spec.Type),
		Palette:     Lookup(spec.Theme),
		Year:        now.Year(),
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}

	return types.GeneratedSite{
		HTML:         render("index.html.tmpl", data),
		CSS:          render("style.css.tmpl", data),
		JS:           render("script.js.tmpl", data),
		Instructions: Instructions(spec.Name),
		TechStack:    append([]string(nil), techStack...),
	}
}

// Slug turns a site name into a lowercase, dash separated folder name.
func Slug(name string) string {
	return strings.Join(strings.Fields(cases.Lower(language.English).String(name)), "-")
}

// Instructions returns the deployment steps for a site called name.
func Instructions(name string) string {
	return fmt.Sprintf(`DEPLOYMENT INSTRUCTIONS:

1. CREATE FILES:
   - Create folder: %s
   - Inside, create: index.html, style.css, script.js

2. COPY CODE:
   - Paste HTML into index.html
   - Paste CSS into style.css
   - Paste JavaScript into script.js

3. TEST LOCALLY:
   - Open index.html in browser

4. DEPLOY TO WEB:
   - Netlify: drag the folder to netlify.com
   - Vercel: run vercel --prod
   - GitHub Pages: push to a repository and enable Pages in settings

5. CUSTOMIZE:
   - Replace placeholder text
   - Add your images
   - Update colors in CSS
`, Slug(name))
}

func render(name string, data pageData) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		// templates are fixed and parsed at init, so this is a programming error
		panic(fmt.Sprintf("site: render %s: %v", name, err))
	}
	return buf.String()
}

// commentSafe keeps user text from terminating a /* */ or // comment.
func commentSafe(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
