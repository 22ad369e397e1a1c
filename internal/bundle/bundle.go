// Package bundle turns a generated site into downloadable artifacts.
package bundle

import (
	"strings"
	"time"

	"aura_server/internal/types"
	"aura_server/internal/utils"
)

const Filename = "website.txt"

// Meta is the header information printed at the top of a bundle.
type Meta struct {
	Name        string
	Type        string
	GeneratedAt time.Time
}

const deploymentSteps = `1. Create 3 files: index.html, style.css, script.js
2. Copy code into each file
3. Open index.html in browser
4. For live site: upload to Netlify, Vercel, or GitHub Pages
`

// Render writes the three files of a site into a single plain-text document.
func Render(site types.GeneratedSite, meta Meta) string {
	var b strings.Builder
	b.WriteString("AURA Generated Website\n")
	b.WriteString("=======================\n")
	b.WriteString("Generated: " + meta.GeneratedAt.UTC().Format(time.RFC3339) + "\n")
	b.WriteString("Name: " + meta.Name + "\n")
	b.WriteString("Type: " + meta.Type + "\n")

	for _, f := range Files(site) {
		if f.Filename == readmeFile {
			continue
		}
		b.WriteString("\n=== " + f.Filename + " ===\n")
		b.WriteString(f.Content)
		b.WriteString("\n")
	}

	b.WriteString("\n=== DEPLOYMENT ===\n")
	b.WriteString(deploymentSteps)
	return b.String()
}

const readmeFile = "README.md"

// Files lists the files a site is deployed as. README.md is included when
// the site carries deployment instructions.
func Files(site types.GeneratedSite) []types.GeneratedFile {
	files := []types.GeneratedFile{
		newFile("index.html", site.HTML),
		newFile("style.css", site.CSS),
		newFile("script.js", site.JS),
	}
	if strings.TrimSpace(site.Instructions) != "" {
		files = append(files, newFile(readmeFile, site.Instructions))
	}
	return files
}

func newFile(name, content string) types.GeneratedFile {
	return types.GeneratedFile{
		Filename: name,
		Type:     utils.DetermineFileType(name),
		Content:  content,
	}
}
