// Package css recognizes the two daisyUI "@plugin" directive shapes in CSS
// text and turns declared themes into normalized style maps. It is not a
// general CSS parser - anything outside these two directives is ignored.
package css

import (
	"go.uber.org/zap"
)

// Parser extracts theme declarations from CSS text.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new theme declaration parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ConvertStyles is the combined style conversion step: property names go
// through CleanKey, string values through NormalizeColor, nested groups are
// converted recursively. Numbers pass through as is.
func (p *Parser) ConvertStyles(in *StyleMap) *StyleMap {
	out := NewStyleMap()
	for key, val := range in.All() {
		cleaned := CleanKey(key)
		switch val.Kind {
		case ValueString:
			out.Set(cleaned, StringValue(NormalizeColor(val.Str)))
		case ValueMap:
			out.Set(cleaned, MapValue(p.ConvertStyles(val.Map)))
		default:
			out.Set(cleaned, val)
		}
	}
	return out
}
