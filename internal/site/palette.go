package site

import "sort"

// DefaultTheme is used whenever a theme key is missing or unknown.
const DefaultTheme = "blue"

// Palette is the set of colors associated with a theme key.
type Palette struct {
	Name      string `json:"name" yaml:"name"`
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

func builtins() map[string]Palette {
	return map[string]Palette{
		"blue": {
			Name:      "blue",
			Primary:   "#2563eb",
			Secondary: "#3b82f6",
			Accent:    "#1d4ed8",
		},
		"purple": {
			Name:      "purple",
			Primary:   "#7c3aed",
			Secondary: "#8b5cf6",
			Accent:    "#6d28d9",
		},
		"green": {
			Name:      "green",
			Primary:   "#059669",
			Secondary: "#10b981",
			Accent:    "#047857",
		},
		"red": {
			Name:      "red",
			Primary:   "#dc2626",
			Secondary: "#ef4444",
			Accent:    "#b91c1c",
		},
	}
}

// Lookup returns the palette for name, falling back to the blue palette.
// Keys are matched exactly: "GREEN" is not "green".
func Lookup(name string) Palette {
	if p, ok := builtins()[name]; ok {
		return p
	}
	return builtins()[DefaultTheme]
}

// Exists reports whether name is one of the built-in theme keys.
func Exists(name string) bool {
	_, ok := builtins()[name]
	return ok
}

// List returns all palettes ordered by name.
func List() []Palette {
	items := make([]Palette, 0, len(builtins()))
	for _, p := range builtins() {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
