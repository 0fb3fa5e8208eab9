// Package misc keeps program identity helpers out of the way of everything else.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "dtx"

// GetAppName returns short program name used for logs, temp files and reports.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() (info struct{ version, hash string }) {
	info.version = "development"
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.hash = s.Value
		}
	}
	return
})

// GetVersion returns program version as recorded by the build system.
func GetVersion() string {
	return buildInfo().version
}

// GetGitHash returns VCS revision the program was built from, if known.
func GetGitHash() string {
	return buildInfo().hash
}
