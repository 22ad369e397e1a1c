package bundle

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// InstructionsHTML renders deployment instructions for display in a browser.
// Raw HTML in the input is not passed through.
func InstructionsHTML(instructions string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(instructions), &buf); err != nil {
		return "", fmt.Errorf("render instructions: %w", err)
	}
	return buf.String(), nil
}
