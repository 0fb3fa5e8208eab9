package css

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Inline block micro grammar:
//
//	@plugin "daisyui/theme" {
//	  name: mytheme;
//	  color-scheme: dark;
//	  --color-primary: oklch(62.8% 0.25768 29.234);
//	}
//
// The body is treated as a flat list of declarations separated by semicolons
// or line breaks, with the trailing semicolon optional.
var (
	inlineBlockRx = regexp.MustCompile(`@plugin\s+["']daisyui/theme["']\s*\{([^}]*)\}`)
	propRx        = regexp.MustCompile(`^(-*[A-Za-z][A-Za-z0-9_-]*)\s*:\s*(.+?)\s*$`)
)

// ExtractInline scans CSS text for inline theme blocks and returns complete
// theme records in match order. A block without a name or without any usable
// property carries no data and is silently discarded.
func (p *Parser) ExtractInline(cssText string) []ThemeRecord {
	var themes []ThemeRecord

	for _, block := range inlineBlockRx.FindAllStringSubmatch(cssText, -1) {
		var name string
		styles := NewStyleMap()

		for line := range strings.Lines(block[1]) {
			line = strings.TrimSpace(line)
			if len(line) == 0 || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
				continue
			}
			for decl := range strings.SplitSeq(line, ";") {
				decl = strings.TrimSpace(decl)
				if len(decl) == 0 {
					continue
				}
				m := propRx.FindStringSubmatch(decl)
				if m == nil {
					continue
				}
				key, val := m[1], m[2]
				switch {
				case key == "name":
					// last occurrence wins, though normally it appears once
					name = val
				case strings.HasPrefix(key, varPrefix):
					styles.Set(key, StringValue(val))
				case key == "color-scheme":
					styles.Set(key, StringValue(val))
				default:
					// boolean metadata such as "default" or "prefersdark" is not a style
				}
			}
		}

		converted := p.ConvertStyles(styles)
		if len(name) == 0 || converted.Len() == 0 {
			p.log.Debug("Dropping incomplete inline theme block", zap.String("name", name), zap.Int("styles", converted.Len()))
			continue
		}
		themes = append(themes, ThemeRecord{Name: name, Styles: converted})
	}

	return themes
}
