// Package build provides variables that are set at build-time with the
// -X ldflag. If the values are not given at build-time, they are
// determined from [debug.ReadBuildInfo].
package build

import (
	"regexp"
	"runtime/debug"
	"sync"
)

var (
	version   string
	buildTime string
)

var once sync.Once

func semver(v string) string {
	loc := regexp.MustCompile(`v?\d+(\.\d+){0,2}`).FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func load() {
	if version != "" && buildTime != "" {
		version = semver(version)
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "" {
		version = info.Main.Version
	}
	if buildTime == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.time" {
				buildTime = s.Value
				break
			}
		}
	}
}

// Version returns the module version, either from the -X ldflag or the
// embedded build info.
func Version() string {
	once.Do(load)
	return version
}

// BuildTime returns the time of the build, either from the -X ldflag or
// the vcs.time build setting.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
