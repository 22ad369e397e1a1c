package types

// Specification describes the site a user asked for.
// Every field is optional; the site generator fills in defaults.
type Specification struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Theme       string   `json:"theme"`
	Pages       []string `json:"pages,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Style       string   `json:"style,omitempty"`
	Tech        string   `json:"tech,omitempty"`
}

// GeneratedSite is the html/css/js triple produced for a Specification.
type GeneratedSite struct {
	HTML         string   `json:"html"`
	CSS          string   `json:"css"`
	JS           string   `json:"js"`
	Instructions string   `json:"instructions,omitempty"`
	TechStack    []string `json:"techStack,omitempty"`
}

// GeneratedFile is a single file of a site as written to disk or a bundle.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "HTML", "CSS", "JavaScript"
	Content  string `json:"content"`
}
