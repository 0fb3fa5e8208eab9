package css_test

import (
	"slices"
	"testing"

	"dtx/css"
)

func TestExtractNames(t *testing.T) {
	p := css.NewParser(nil)

	input := `
@import "tailwindcss";
@plugin "daisyui" {
  themes: light --default, dark --prefersdark, cupcake;
}
`
	got := p.ExtractNames(input)
	want := []string{"light", "dark", "cupcake"}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractNames() = %v, want %v", got, want)
	}
}

func TestExtractNames_SingleQuotes(t *testing.T) {
	p := css.NewParser(nil)

	got := p.ExtractNames(`@plugin 'daisyui' { themes: nord; }`)
	if !slices.Equal(got, []string{"nord"}) {
		t.Errorf("ExtractNames() = %v, want [nord]", got)
	}
}

func TestExtractNames_DeduplicatesAcrossBlocks(t *testing.T) {
	p := css.NewParser(nil)

	input := `
@plugin "daisyui" { themes: dark, light; }
@plugin "daisyui" { themes: light, retro; }
`
	got := p.ExtractNames(input)
	want := []string{"dark", "light", "retro"}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractNames() = %v, want %v", got, want)
	}
}

func TestExtractNames_NoMatch(t *testing.T) {
	p := css.NewParser(nil)

	cases := []string{
		"",
		"body { color: red; }",
		`@plugin "daisyui";`,                      // no block
		`@plugin "daisyui" { logs: true; }`,       // block without themes
		`@plugin "daisyui" { themes: light`,       // unterminated block
		`@plugin "daisyui/theme" { name: mine; }`, // inline directive, different grammar
	}
	for _, in := range cases {
		if got := p.ExtractNames(in); len(got) != 0 {
			t.Errorf("ExtractNames(%q) = %v, want empty", in, got)
		}
	}
}

func TestExtractNames_FlagOnlyEntry(t *testing.T) {
	p := css.NewParser(nil)

	// entry reduced to nothing after flag stripping is skipped
	got := p.ExtractNames(`@plugin "daisyui" { themes: --default, dark; }`)
	if !slices.Equal(got, []string{"dark"}) {
		t.Errorf("ExtractNames() = %v, want [dark]", got)
	}
}
