// Package extract drives batch theme extraction: it merges requested theme
// names from all sources, resolves each one and assembles the final document.
package extract

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"dtx/css"
)

// ThemeError records a single theme failure during batch extraction.
type ThemeError struct {
	Theme string
	Err   error
}

func (e ThemeError) Error() string {
	return fmt.Sprintf("theme %q: %v", e.Theme, e.Err)
}

func (e ThemeError) Unwrap() error {
	return e.Err
}

// ModuleResolver locates and invokes an installed theme definition module.
type ModuleResolver interface {
	Resolve(ctx context.Context, theme string) (*css.StyleMap, error)
}

// Orchestrator performs batch extraction over a set of theme names.
type Orchestrator struct {
	log      *zap.Logger
	parser   *css.Parser
	resolver ModuleResolver
}

func NewOrchestrator(log *zap.Logger, resolver ModuleResolver) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		log:      log.Named("orchestrator"),
		parser:   css.NewParser(log),
		resolver: resolver,
	}
}

// Extract collects theme names from the explicit list and, when parseCSS is
// set, from reference and inline blocks in cssText. The merged list keeps
// first-seen order: explicit names, then referenced, then inline. Inline
// definitions short-circuit module resolution for their theme. Themes are
// processed sequentially, a failure of one never affects the others - failed
// themes are reported alongside the successful collection.
func (o *Orchestrator) Extract(ctx context.Context, names []string, cssText string, parseCSS bool) (*Collection, []ThemeError) {
	var ordered []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if len(name) == 0 {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}

	for _, name := range names {
		add(name)
	}

	inline := make(map[string]*css.StyleMap)
	if parseCSS {
		for _, name := range o.parser.ExtractNames(cssText) {
			add(name)
		}
		for _, rec := range o.parser.ExtractInline(cssText) {
			add(rec.Name)
			inline[rec.Name] = rec.Styles
		}
	}

	collection := NewCollection()
	var failed []ThemeError

	for _, name := range ordered {
		if styles, ok := inline[name]; ok {
			o.log.Debug("Using inline theme definition", zap.String("theme", name))
			collection.Set(name, styles)
			continue
		}
		styles, err := o.resolver.Resolve(ctx, name)
		if err != nil {
			o.log.Warn("Unable to resolve theme", zap.String("theme", name), zap.Error(err))
			failed = append(failed, ThemeError{Theme: name, Err: err})
			continue
		}
		collection.Set(name, styles)
	}

	return collection, failed
}
