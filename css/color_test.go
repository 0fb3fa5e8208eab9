package css_test

import (
	"strings"
	"testing"

	"dtx/css"
)

func TestNormalizeColor_Exact(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"rgb(255 0 0)", "#ff0000"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"rgb(100% 0% 0%)", "#ff0000"},
		{"rgb(0 128 0)", "#008000"},
		{"hsl(0 100% 50%)", "#ff0000"},
		{"hsl(120 100% 25%)", "#008000"},
		{"hsl(0.5turn 100% 50%)", "#00ffff"},
		{"hsl(120deg 100% 25%)", "#008000"},
		// out of gamut components are clamped, not rejected
		{"rgb(300 0 0)", "#ff0000"},
		{"rgb(-20 0 0)", "#000000"},
		// achromatic endpoints are stable across color spaces
		{"oklch(100% 0 0)", "#ffffff"},
		{"oklch(0% 0 0)", "#000000"},
		{"lch(100% 0 0)", "#ffffff"},
		{"lch(0% 0 0)", "#000000"},
	}
	for _, tc := range cases {
		if got := css.NormalizeColor(tc.in); got != tc.want {
			t.Errorf("NormalizeColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeColor_Oklch(t *testing.T) {
	got := css.NormalizeColor("oklch(62.8% 0.25768 29.234)")
	if !strings.HasPrefix(got, "#") || len(got) != 7 {
		t.Fatalf("expected #rrggbb form, got %q", got)
	}
	if got == "oklch(62.8% 0.25768 29.234)" {
		t.Fatal("value was not converted")
	}
}

func TestNormalizeColor_AlphaIgnored(t *testing.T) {
	plain := css.NormalizeColor("oklch(62.8% 0.25768 29.234)")
	alpha := css.NormalizeColor("oklch(62.8% 0.25768 29.234 / 0.5)")
	if plain != alpha {
		t.Errorf("alpha channel should be ignored: %q != %q", plain, alpha)
	}
	if got := css.NormalizeColor("rgb(255 0 0 / 30%)"); got != "#ff0000" {
		t.Errorf("NormalizeColor with alpha = %q, want #ff0000", got)
	}
}

func TestNormalizeColor_Passthrough(t *testing.T) {
	// anything that is not a supported functional notation or does not parse
	// comes back unchanged
	cases := []string{
		"mediumseagreen",
		"#ff0000",
		"1rem",
		"oklch(abc def)",
		"oklch(62.8%",
		"rgb()",
		"rgb(10 20)",
		"hsl(50% 100% 50%)",
		"color-mix(in oklab, red, blue)",
	}
	for _, in := range cases {
		if got := css.NormalizeColor(in); got != in {
			t.Errorf("NormalizeColor(%q) = %q, want passthrough", in, got)
		}
	}
}
