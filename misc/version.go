// Package misc carries program identity shared by all commands.
package misc

import (
	"runtime/debug"
	"sync"
)

// Overwritten by the build (task) via ldflags for release builds.
var (
	appName = "tcss"
	version = ""
	gitHash = ""
)

var fromBuildInfo = sync.OnceFunc(func() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if len(version) == 0 {
		version = bi.Main.Version
	}
	if len(gitHash) == 0 {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				gitHash = s.Value
				break
			}
		}
	}
})

func GetAppName() string {
	return appName
}

func GetVersion() string {
	fromBuildInfo()
	if len(version) == 0 {
		return "(devel)"
	}
	return version
}

func GetGitHash() string {
	fromBuildInfo()
	if len(gitHash) == 0 {
		return "unknown"
	}
	return gitHash
}
