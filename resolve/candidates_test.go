package resolve

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestCandidatePaths_Order(t *testing.T) {
	got := candidatePaths("dark", []string{"/app"})
	want := []string{
		filepath.Join("/app", "node_modules", "daisyui", "theme", "dark.js"),
		filepath.Join("/app", "node_modules", "daisyui", "dist", "theme", "dark.js"),
		filepath.Join("/app", "node_modules", "daisyui", "src", "theming", "dark.js"),
		filepath.Join("/app", "node_modules", "daisyui", "dist", "dark.js"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("candidatePaths() = %v, want %v", got, want)
	}
}

func TestCandidatePaths_Deduplicates(t *testing.T) {
	got := candidatePaths("dark", []string{"/app", "/app", "/other"})
	if len(got) != 8 {
		t.Errorf("expected 8 unique candidates, got %d: %v", len(got), got)
	}
}

func TestBaseDirs_Priority(t *testing.T) {
	got := baseDirs("/proj/sub", "/usr/local/bin", []string{"/extra"})

	if len(got) == 0 || got[0] != "/extra" {
		t.Fatalf("configured roots must come first, got %v", got)
	}
	if got[1] != "/proj/sub" || got[2] != "/proj" {
		t.Errorf("expected working directory and its parent next, got %v", got)
	}
	if got[len(got)-1] != "/usr/local/bin" {
		t.Errorf("executable directory must come last, got %v", got)
	}
}

func TestManifestRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := manifestRoot(nested); got != root {
		t.Errorf("manifestRoot(%q) = %q, want %q", nested, got, root)
	}
}

func TestManifestRoot_NotFound(t *testing.T) {
	dir := t.TempDir()
	if got := manifestRoot(filepath.Join(dir, "a", "b")); got != "" {
		t.Errorf("manifestRoot() = %q, want empty", got)
	}
}

func TestExistingOnly(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.js")
	if err := os.WriteFile(present, []byte("// nothing"), 0644); err != nil {
		t.Fatal(err)
	}

	got := existingOnly([]string{
		filepath.Join(dir, "missing.js"),
		present,
		dir, // directories do not qualify
	})
	if !slices.Equal(got, []string{present}) {
		t.Errorf("existingOnly() = %v, want [%s]", got, present)
	}
}
