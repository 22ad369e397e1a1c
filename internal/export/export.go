// Package export writes generated sites to disk and optionally hands the
// folder to an external publishing CLI.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"aura_server/internal/types"
)

type Exporter struct {
	dir        string
	publishCmd []string
}

// NewExporter writes into dir. An empty dir means a fresh temporary
// directory per export. publishCmd, when set, is run with the export
// directory appended as its last argument, e.g. "netlify deploy --prod --dir".
func NewExporter(dir string, publishCmd ...string) *Exporter {
	return &Exporter{dir: dir, publishCmd: publishCmd}
}

// WriteFiles saves files and returns the directory they were written to.
func (e *Exporter) WriteFiles(ctx context.Context, files []types.GeneratedFile) (string, error) {
	dir := e.dir
	if dir == "" {
		tempDir, err := os.MkdirTemp("", "aura-site-*")
		if err != nil {
			return "", fmt.Errorf("failed to create temp dir: %w", err)
		}
		dir = tempDir
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !filepath.IsLocal(f.Filename) {
			return "", fmt.Errorf("refusing to write %q outside %s", f.Filename, dir)
		}
		path := filepath.Join(dir, f.Filename)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("failed to create subdirectories for %s: %w", f.Filename, err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return "", fmt.Errorf("failed to write file %s: %w", f.Filename, err)
		}
	}
	log.Printf("Info: wrote %d files to %s", len(files), dir)
	return dir, nil
}

// Publish runs the configured publish command against dir and returns the
// first URL found in its output. Without a command it is a no-op.
func (e *Exporter) Publish(ctx context.Context, dir string) (string, error) {
	if len(e.publishCmd) == 0 {
		return "", nil
	}

	args := append(append([]string(nil), e.publishCmd[1:]...), dir)
	cmd := exec.CommandContext(ctx, e.publishCmd[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Printf("Info: running publish command: %s", cmd.String())
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("publish failed: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	url := extractURL(stdout.String())
	if url == "" {
		log.Printf("WARN: no URL found in publish output: %s", stdout.String())
	}
	return url, nil
}

// extractURL returns the last http(s) URL in output. Deploy CLIs tend to
// print draft or log URLs before the final site address.
func extractURL(output string) string {
	var found string
	for _, field := range strings.Fields(output) {
		field = strings.Trim(field, `"'<>()[],`)
		if strings.HasPrefix(field, "https://") || strings.HasPrefix(field, "http://") {
			found = field
		}
	}
	return found
}
