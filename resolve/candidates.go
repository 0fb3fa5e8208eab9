package resolve

import (
	"os"
	"path/filepath"
)

// Candidate locations are produced from a fixed, ordered list of npm
// installation layouts applied over a fixed, ordered list of base directories.
// Keeping both lists explicit and statically declared makes the probing order
// a testable contract.

type layoutFn func(base, theme string) string

func themedLayout(base, theme string) string {
	return filepath.Join(base, "node_modules", "daisyui", "theme", theme+".js")
}

func distThemedLayout(base, theme string) string {
	return filepath.Join(base, "node_modules", "daisyui", "dist", "theme", theme+".js")
}

func sourceLayout(base, theme string) string {
	return filepath.Join(base, "node_modules", "daisyui", "src", "theming", theme+".js")
}

func distLayout(base, theme string) string {
	return filepath.Join(base, "node_modules", "daisyui", "dist", theme+".js")
}

var layouts = []layoutFn{themedLayout, distThemedLayout, sourceLayout, distLayout}

// baseDirs returns probing bases in priority order: explicitly configured
// roots, the working directory, its parent (covers being invoked from a
// nested directory), the nearest ancestor with a package manifest and finally
// the directory the tool itself is installed in (covers global installs).
func baseDirs(workDir, exeDir string, extra []string) []string {
	bases := append([]string(nil), extra...)
	if len(workDir) > 0 {
		bases = append(bases, workDir, filepath.Dir(workDir))
		if root := manifestRoot(workDir); len(root) > 0 {
			bases = append(bases, root)
		}
	}
	if len(exeDir) > 0 {
		bases = append(bases, exeDir)
	}
	return bases
}

// manifestRoot walks up from dir looking for package.json.
func manifestRoot(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// candidatePaths produces the ordered, deduplicated candidate list for a theme.
func candidatePaths(theme string, bases []string) []string {
	var paths []string
	seen := make(map[string]struct{})
	for _, base := range bases {
		for _, layout := range layouts {
			p := layout(base, theme)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}

// existingOnly filters out candidates that are not present on disk.
func existingOnly(paths []string) []string {
	var out []string
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			out = append(out, p)
		}
	}
	return out
}
