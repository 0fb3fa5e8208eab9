// Package resolve locates installed daisyUI theme definition modules and
// invokes them to obtain raw style maps. Theme definitions are JavaScript, so
// candidates are executed in-process under a minimal CommonJS environment.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"dtx/css"
)

// ErrThemeNotFound is returned when no installed module defines a theme.
var ErrThemeNotFound = errors.New("theme definition not found")

// ThemeFunc reports style entries of a single theme through the provided
// collector. It may call the collector any number of times; on key collisions
// later entries overwrite earlier ones.
type ThemeFunc func(collect func(*css.StyleMap)) error

// Resolver performs one-shot, stateless theme module lookups.
type Resolver struct {
	log   *zap.Logger
	conv  *css.Parser
	bases []string
}

// NewResolver creates a resolver probing the standard locations, with
// extraRoots (if any) consulted first.
func NewResolver(log *zap.Logger, extraRoots ...string) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	workDir, _ := os.Getwd()
	var exeDir string
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return &Resolver{
		log:   log.Named("resolver"),
		conv:  css.NewParser(log),
		bases: baseDirs(workDir, exeDir, extraRoots),
	}
}

// Resolve locates the definition module for the named theme, invokes it and
// returns the converted style map. Candidates are tried strictly in priority
// order, the first one that loads, exposes a callable default export and
// executes without error wins. Candidate failures are swallowed - only
// exhausting the whole list is an error.
func (r *Resolver) Resolve(ctx context.Context, theme string) (*css.StyleMap, error) {
	candidates := existingOnly(candidatePaths(theme, r.bases))
	r.log.Debug("Probing theme module candidates", zap.String("theme", theme), zap.Strings("candidates", candidates))

	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fn, err := loadThemeFunc(path)
		if err != nil {
			r.log.Debug("Candidate failed to load", zap.String("path", path), zap.Error(err))
			continue
		}
		if fn == nil {
			r.log.Debug("Candidate default export is not callable", zap.String("path", path))
			continue
		}

		acc := css.NewStyleMap()
		err = fn(func(part *css.StyleMap) {
			for key, val := range part.All() {
				acc.Set(key, val)
			}
		})
		if err != nil {
			r.log.Debug("Candidate failed during invocation", zap.String("path", path), zap.Error(err))
			continue
		}

		r.log.Debug("Resolved theme module", zap.String("theme", theme), zap.String("path", path))
		return r.conv.ConvertStyles(acc), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, theme)
}

// loadThemeFunc executes the module at path and wraps its default export.
// A nil ThemeFunc with nil error means the module loaded but its default
// export is not callable - the caller should simply move on.
func loadThemeFunc(path string) (ThemeFunc, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	vm := goja.New()
	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("module", module); err != nil {
		return nil, err
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}
	// theme definitions have no real dependencies, keep require inert
	if err := vm.Set("require", func(goja.FunctionCall) goja.Value { return goja.Undefined() }); err != nil {
		return nil, err
	}

	if _, err := vm.RunScript(path, rewriteModuleSource(string(src))); err != nil {
		return nil, err
	}

	fn, ok := defaultExport(module)
	if !ok {
		return nil, nil
	}

	return func(collect func(*css.StyleMap)) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("theme module paniced: %v", rec)
			}
		}()

		capability := vm.NewObject()
		addBase := func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Undefined()
			}
			if obj, ok := call.Arguments[0].(*goja.Object); ok {
				collect(exportStyles(obj))
			}
			return goja.Undefined()
		}
		if err := capability.Set("addBase", addBase); err != nil {
			return err
		}
		if err := capability.Set("prefix", ""); err != nil {
			return err
		}
		_, err = fn(goja.Undefined(), capability)
		return err
	}, nil
}

// rewriteModuleSource bridges the single ESM shape theme definitions use into
// the CommonJS environment we provide.
func rewriteModuleSource(src string) string {
	return strings.Replace(src, "export default", "module.exports.default =", 1)
}

// defaultExport picks the callable default export: either module.exports
// itself or its "default" member.
func defaultExport(module *goja.Object) (goja.Callable, bool) {
	exp := module.Get("exports")
	if fn, ok := goja.AssertFunction(exp); ok {
		return fn, true
	}
	if obj, ok := exp.(*goja.Object); ok {
		if fn, ok := goja.AssertFunction(obj.Get("default")); ok {
			return fn, true
		}
	}
	return nil, false
}

// exportStyles converts a JS object into a raw style map preserving JS
// property order. Booleans and anything exotic are not style data and are
// skipped.
func exportStyles(obj *goja.Object) *css.StyleMap {
	styles := css.NewStyleMap()
	for _, key := range obj.Keys() {
		val := obj.Get(key)
		switch exported := val.Export().(type) {
		case string:
			styles.Set(key, css.StringValue(exported))
		case int64:
			styles.Set(key, css.NumberValue(float64(exported)))
		case float64:
			styles.Set(key, css.NumberValue(exported))
		case map[string]interface{}:
			if sub, ok := val.(*goja.Object); ok {
				styles.Set(key, css.MapValue(exportStyles(sub)))
			}
		}
	}
	return styles
}
