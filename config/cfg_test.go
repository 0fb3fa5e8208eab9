package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if !strings.HasSuffix(cfg.Extraction.OutputPath, "themes.json") {
		t.Errorf("Default output path = %q, want themes.json", cfg.Extraction.OutputPath)
	}
	if cfg.Extraction.Overwrite {
		t.Error("Default overwrite must be off")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
extraction:
  themes: "light, dark"
  output_path: ` + filepath.Join(tmpDir, "out.json") + `
  overwrite: true
  search_paths:
    - ` + tmpDir + `
logging:
  console:
    level: debug
  file:
    level: none
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Extraction.Themes != "light, dark" {
		t.Errorf("Themes = %q, want %q", cfg.Extraction.Themes, "light, dark")
	}
	if !cfg.Extraction.Overwrite {
		t.Error("Overwrite = false, want true")
	}
	if len(cfg.Extraction.SearchPaths) != 1 || cfg.Extraction.SearchPaths[0] != tmpDir {
		t.Errorf("SearchPaths = %v, want [%s]", cfg.Extraction.SearchPaths, tmpDir)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nno_such_section:\n  value: 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected error for unknown configuration field")
	}
}

func TestLoadConfiguration_BadVersion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected validation error for unsupported version")
	}
}

func TestThemeNames(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"light", []string{"light"}},
		{"light, dark", []string{"light", "dark"}},
		{" light ,  dark ,,", []string{"light", "dark"}},
	}
	for _, tc := range cases {
		conf := ExtractionConfig{Themes: tc.in}
		if got := conf.ThemeNames(); !slices.Equal(got, tc.want) {
			t.Errorf("ThemeNames(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDump_RoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if _, err := unmarshalConfig(data, &Config{}, false); err != nil {
		t.Errorf("dumped configuration does not load back: %v", err)
	}
}
