package prompts

import (
	"fmt"
	"strings"

	"aura_server/internal/site"
	"aura_server/internal/types"
)

const siteGenerationSystemPrompt = `You are AURA, a website builder. You generate complete, production-ready static websites and respond only in the requested format.`

const siteGenerationPromptTemplate = `Create a complete website based on these specifications:

PROJECT: %s
TYPE: %s
PAGES: %s
FEATURES: %s
STYLE: %s
TECH: %s
DESCRIPTION: %s
COLORS:
  * Primary: %s
  * Secondary: %s
  * Accent: %s

Generate COMPLETE, production-ready code including:
1. HTML structure with semantic tags (index.html, linking style.css and script.js)
2. CSS with responsive design (mobile-first)
3. JavaScript for interactivity
4. Comments explaining key sections
5. Deployment instructions

Format the response as a single JSON object with these keys:
- "html": complete HTML file
- "css": complete CSS file
- "js": complete JavaScript file
- "instructions": setup steps
- "techStack": array of required technologies

Only return the JSON object, no extra explanation.`

// GetSiteGenerationPrompt returns the user prompt and system prompt for a
// normalized specification.
func GetSiteGenerationPrompt(spec types.Specification) (string, string) {
	palette := site.Lookup(spec.Theme)

	prompt := fmt.Sprintf(siteGenerationPromptTemplate,
		spec.Name,
		spec.Type,
		joinOr(spec.Pages, "Home, About, Contact"),
		joinOr(spec.Features, "Responsive, Modern Design"),
		valueOr(spec.Style, "Clean professional"),
		valueOr(spec.Tech, "HTML, CSS, JavaScript"),
		valueOr(spec.Description, "Modern solutions for modern businesses"),
		palette.Primary,
		palette.Secondary,
		palette.Accent,
	)

	return prompt, siteGenerationSystemPrompt
}

func joinOr(items []string, fallback string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) == 0 {
		return fallback
	}
	return strings.Join(cleaned, ", ")
}

func valueOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}
