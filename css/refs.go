package css

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Reference block micro grammar:
//
//	@plugin "daisyui" { themes: light --default, dark; }
//
// Quotes may be single or double, flags after a name are ignored. Matching is
// non-overlapping left to right; an unterminated block is simply not a match.
var (
	refBlockRx   = regexp.MustCompile(`@plugin\s+["']daisyui["']\s*\{([^}]*)\}`)
	themesListRx = regexp.MustCompile(`themes\s*:\s*([^;}]+)`)
	flagMarkerRx = regexp.MustCompile(`\s--`)
)

// ExtractNames scans CSS text for reference blocks and returns declared theme
// names in order of first occurrence, deduplicated across all blocks. Absence
// of well-formed blocks yields an empty list, never an error.
func (p *Parser) ExtractNames(cssText string) []string {
	var names []string
	seen := make(map[string]struct{})

	for _, block := range refBlockRx.FindAllStringSubmatch(cssText, -1) {
		list := themesListRx.FindStringSubmatch(block[1])
		if list == nil {
			continue
		}
		for item := range strings.SplitSeq(list[1], ",") {
			// drop modifier flags such as "--default" before trimming, the
			// marker is whitespace followed by a double dash
			if loc := flagMarkerRx.FindStringIndex(item); loc != nil {
				item = item[:loc[0]]
			}
			item = strings.TrimSpace(item)
			if len(item) == 0 || strings.HasPrefix(item, varPrefix) {
				// nothing left or the entry was a bare flag
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			names = append(names, item)
		}
	}

	p.log.Debug("Extracted referenced theme names", zap.Strings("themes", names))
	return names
}
