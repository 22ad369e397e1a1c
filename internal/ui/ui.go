// Package ui holds the browser front end served at "/".
package ui

import _ "embed"

//go:embed index.html
var indexHTML []byte

// Index returns the builder page.
func Index() []byte {
	return indexHTML
}
