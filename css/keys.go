package css

import "strings"

const (
	colorVarPrefix = "--color-"
	varPrefix      = "--"
)

// CleanKey strips a single structural prefix from a raw property name to
// produce its canonical form: the compound color variable prefix wins over the
// generic one, keys without either (such as "color-scheme") pass through.
func CleanKey(key string) string {
	if strings.HasPrefix(key, colorVarPrefix) {
		return strings.TrimPrefix(key, colorVarPrefix)
	}
	if strings.HasPrefix(key, varPrefix) {
		return strings.TrimPrefix(key, varPrefix)
	}
	return key
}
