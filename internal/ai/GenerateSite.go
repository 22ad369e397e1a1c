package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"aura_server/internal/ai/prompts"
	"aura_server/internal/site"
	"aura_server/internal/types"
	"aura_server/internal/utils"
)

// Source records which stage of the pipeline produced a site.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// ErrNoCodeFound is returned when a completion holds neither a JSON site nor code blocks.
var ErrNoCodeFound = errors.New("no site code found in completion")

// Result is the outcome of GenerateSite. RemoteErr holds the remote failure
// that caused a local fallback; it is informational only.
type Result struct {
	Site      types.GeneratedSite
	Source    Source
	RemoteErr error
}

// GenerateSite asks the remote provider for a site and falls back to the
// local templates on any failure. It always returns a usable site.
func (g *Generator) GenerateSite(ctx context.Context, spec types.Specification) Result {
	spec = site.Normalize(spec)

	if g.completer == nil {
		return Result{Site: g.local.Generate(spec), Source: SourceLocal}
	}

	generated, err := g.generateRemote(ctx, spec)
	if err == nil {
		log.Printf("Info: site %q generated remotely via %s", spec.Name, g.completer.Name())
		return Result{Site: generated, Source: SourceRemote}
	}

	if utils.IsTransient(err) {
		log.Printf("WARN: transient %s failure for site %q, using local templates: %v", g.completer.Name(), spec.Name, err)
	} else {
		log.Printf("WARN: %s generation failed for site %q, using local templates: %v", g.completer.Name(), spec.Name, err)
	}
	return Result{Site: g.local.Generate(spec), Source: SourceLocal, RemoteErr: err}
}

func (g *Generator) generateRemote(ctx context.Context, spec types.Specification) (generated types.GeneratedSite, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("remote generation panicked: %v", r)
		}
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	userPrompt, systemPrompt := prompts.GetSiteGenerationPrompt(spec)
	content, err := g.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return types.GeneratedSite{}, err
	}

	parsed, ok := ParseCompletion(content)
	if !ok {
		return types.GeneratedSite{}, ErrNoCodeFound
	}
	return g.fillMissing(spec, parsed), nil
}

// fillMissing completes a partially parsed site with the local rendering.
func (g *Generator) fillMissing(spec types.Specification, parsed types.GeneratedSite) types.GeneratedSite {
	if parsed.HTML != "" && parsed.CSS != "" && parsed.JS != "" && parsed.Instructions != "" && len(parsed.TechStack) > 0 {
		return parsed
	}
	local := g.local.Generate(spec)
	if parsed.HTML == "" {
		parsed.HTML = local.HTML
	}
	if parsed.CSS == "" {
		parsed.CSS = local.CSS
	}
	if parsed.JS == "" {
		parsed.JS = local.JS
	}
	if parsed.Instructions == "" {
		parsed.Instructions = local.Instructions
	}
	if len(parsed.TechStack) == 0 {
		parsed.TechStack = []string{"HTML5", "CSS3", "JavaScript"}
	}
	return parsed
}
