package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"aura_server/internal/types"
)

var (
	htmlBlock = regexp.MustCompile("(?s)```html[ \t]*\r?\n(.*?)\r?\n```")
	cssBlock  = regexp.MustCompile("(?s)```css[ \t]*\r?\n(.*?)\r?\n```")
	jsBlock   = regexp.MustCompile("(?s)```(?:javascript|js)[ \t]*\r?\n(.*?)\r?\n```")
)

type completionPayload struct {
	HTML         string          `json:"html"`
	CSS          string          `json:"css"`
	JS           string          `json:"js"`
	Instructions string          `json:"instructions"`
	TechStack    json.RawMessage `json:"techStack"`
}

// ParseCompletion extracts a site from a model completion. It first looks
// for a JSON object spanning the first '{' to the last '}', then for fenced
// html/css/javascript code blocks. Parts that were not found are left empty.
// The boolean is false when neither form is present.
func ParseCompletion(content string) (types.GeneratedSite, bool) {
	if site, ok := parseJSONObject(content); ok {
		return site, true
	}
	return parseCodeBlocks(content)
}

func parseJSONObject(content string) (types.GeneratedSite, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return types.GeneratedSite{}, false
	}

	var payload completionPayload
	if err := json.Unmarshal([]byte(content[start:end+1]), &payload); err != nil {
		return types.GeneratedSite{}, false
	}
	if strings.TrimSpace(payload.HTML) == "" {
		return types.GeneratedSite{}, false
	}

	return types.GeneratedSite{
		HTML:         payload.HTML,
		CSS:          payload.CSS,
		JS:           payload.JS,
		Instructions: payload.Instructions,
		TechStack:    decodeTechStack(payload.TechStack),
	}, true
}

// decodeTechStack accepts either an array of strings or a comma separated string.
func decodeTechStack(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil
	}
	var out []string
	for _, item := range strings.Split(joined, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseCodeBlocks(content string) (types.GeneratedSite, bool) {
	var site types.GeneratedSite
	found := false
	if m := htmlBlock.FindStringSubmatch(content); m != nil {
		site.HTML = m[1]
		found = true
	}
	if m := cssBlock.FindStringSubmatch(content); m != nil {
		site.CSS = m[1]
		found = true
	}
	if m := jsBlock.FindStringSubmatch(content); m != nil {
		site.JS = m[1]
		found = true
	}
	return site, found
}
