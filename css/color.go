package css

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Functional notations we are willing to convert. Anything else passes through
// untouched - this is a normalizer, not a color library.
var colorMarkers = []string{"oklch(", "rgb(", "hsl(", "lch("}

func isColorCandidate(value string) bool {
	for _, m := range colorMarkers {
		if strings.Contains(value, m) {
			return true
		}
	}
	return false
}

// NormalizeColor converts a color value in one of the supported functional
// notations to its #rrggbb form. On any parse or conversion problem the
// original string is returned unchanged - a property is never dropped and
// normalization never fails the caller.
func NormalizeColor(value string) string {
	if !isColorCandidate(value) {
		return value
	}
	c, ok := parseColor(value)
	if !ok {
		return value
	}
	return c.Clamped().Hex()
}

type colorArg struct {
	val  float64
	pct  bool
	unit string
}

// parseColor tokenizes the value and converts the first recognized color
// function found in it.
func parseColor(value string) (colorful.Color, bool) {
	l := css.NewLexer(parse.NewInputString(value))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return colorful.Color{}, false
		case css.FunctionToken:
			fn := strings.ToLower(string(data))
			switch fn {
			case "oklch(", "rgb(", "hsl(", "lch(":
				args, ok := lexColorArgs(l)
				if !ok || len(args) < 3 {
					return colorful.Color{}, false
				}
				return convertColor(strings.TrimSuffix(fn, "("), args[0], args[1], args[2])
			}
		}
	}
}

// lexColorArgs collects component tokens until the closing parenthesis.
// Everything after an alpha separator is ignored.
func lexColorArgs(l *css.Lexer) ([]colorArg, bool) {
	var args []colorArg
	alpha := false
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return nil, false
		case css.RightParenthesisToken:
			return args, true
		case css.WhitespaceToken, css.CommaToken:
			continue
		case css.DelimToken:
			if len(data) == 1 && data[0] == '/' {
				alpha = true
				continue
			}
			return nil, false
		}
		if alpha {
			continue
		}
		switch tt {
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return nil, false
			}
			args = append(args, colorArg{val: v})
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return nil, false
			}
			args = append(args, colorArg{val: v, pct: true})
		case css.DimensionToken:
			v, unit, ok := splitDimension(string(data))
			if !ok {
				return nil, false
			}
			args = append(args, colorArg{val: v, unit: unit})
		case css.IdentToken:
			if strings.EqualFold(string(data), "none") {
				args = append(args, colorArg{})
				continue
			}
			return nil, false
		default:
			return nil, false
		}
	}
}

// splitDimension separates numeric value and unit of a dimension token.
func splitDimension(s string) (float64, string, bool) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", false
	}
	return v, strings.ToLower(s[numEnd:]), true
}

// toDegrees normalizes a hue component to degrees.
func toDegrees(a colorArg) (float64, bool) {
	if a.pct {
		return 0, false
	}
	switch a.unit {
	case "", "deg":
		return a.val, true
	case "rad":
		return a.val * 180 / math.Pi, true
	case "grad":
		return a.val * 0.9, true
	case "turn":
		return a.val * 360, true
	default:
		return 0, false
	}
}

// scalar rejects components carrying a dimension unit, those are only valid
// on hue.
func scalar(a colorArg) (float64, bool) {
	if a.unit != "" {
		return 0, false
	}
	return a.val, true
}

func convertColor(fn string, a, b, c colorArg) (colorful.Color, bool) {
	switch fn {
	case "rgb":
		return rgbColor(a, b, c)
	case "hsl":
		return hslColor(a, b, c)
	case "lch":
		return lchColor(a, b, c)
	case "oklch":
		return oklchColor(a, b, c)
	}
	return colorful.Color{}, false
}

func rgbChannel(a colorArg) (float64, bool) {
	v, ok := scalar(a)
	if !ok {
		return 0, false
	}
	if a.pct {
		return v / 100, true
	}
	return v / 255, true
}

func rgbColor(r, g, b colorArg) (colorful.Color, bool) {
	cr, okR := rgbChannel(r)
	cg, okG := rgbChannel(g)
	cb, okB := rgbChannel(b)
	if !okR || !okG || !okB {
		return colorful.Color{}, false
	}
	return colorful.Color{R: cr, G: cg, B: cb}, true
}

func hslColor(h, s, l colorArg) (colorful.Color, bool) {
	deg, okH := toDegrees(h)
	sv, okS := scalar(s)
	lv, okL := scalar(l)
	if !okH || !okS || !okL {
		return colorful.Color{}, false
	}
	return colorful.Hsl(deg, sv/100, lv/100), true
}

// lchColor converts CSS lch() where lightness is 0-100 and chroma 100% equals
// 150, into the CIE L*C*h(ab) constructor which expects normalized values.
func lchColor(l, c, h colorArg) (colorful.Color, bool) {
	deg, okH := toDegrees(h)
	lv, okL := scalar(l)
	cv, okC := scalar(c)
	if !okH || !okL || !okC {
		return colorful.Color{}, false
	}
	chroma := cv / 100
	if c.pct {
		chroma = cv * 1.5 / 100
	}
	return colorful.Hcl(deg, chroma, lv/100), true
}

// oklchColor converts CSS oklch() through the OkLab cube-root transform into
// linear sRGB. Lightness 100% equals 1.0, chroma 100% equals 0.4.
func oklchColor(l, c, h colorArg) (colorful.Color, bool) {
	deg, okH := toDegrees(h)
	lv, okL := scalar(l)
	cv, okC := scalar(c)
	if !okH || !okL || !okC {
		return colorful.Color{}, false
	}
	lightness := lv
	if l.pct {
		lightness = lv / 100
	}
	chroma := cv
	if c.pct {
		chroma = cv * 0.4 / 100
	}
	hr := deg * math.Pi / 180
	la, lb := chroma*math.Cos(hr), chroma*math.Sin(hr)

	l_ := lightness + 0.3963377774*la + 0.2158037573*lb
	m_ := lightness - 0.1055613458*la - 0.0638541728*lb
	s_ := lightness - 0.0894841775*la - 1.2914855480*lb
	l3, m3, s3 := l_*l_*l_, m_*m_*m_, s_*s_*s_

	return colorful.LinearRgb(
		4.0767416621*l3-3.3077115913*m3+0.2309699292*s3,
		-1.2684380046*l3+2.6097574011*m3-0.3413193965*s3,
		-0.0041960863*l3-0.7034186147*m3+1.7076147010*s3), true
}
