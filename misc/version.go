// Package misc provides program identification helpers.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "bemc"

// set by the build (go build -ldflags "-X bemc/misc.version=... -X bemc/misc.gitHash=...")
var (
	version = ""
	gitHash = ""
)

var readBuildInfo = sync.OnceValues(func() (string, string) {
	ver, hash := version, gitHash
	if bi, ok := debug.ReadBuildInfo(); ok {
		if ver == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			ver = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && hash == "" {
				hash = s.Value
			}
		}
	}
	if ver == "" {
		ver = "dev"
	}
	if hash == "" {
		hash = "unknown"
	}
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return ver, hash
})

func GetAppName() string {
	return appName
}

func GetVersion() string {
	v, _ := readBuildInfo()
	return v
}

func GetGitHash() string {
	_, h := readBuildInfo()
	return h
}
