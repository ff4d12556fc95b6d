// Package buildinfo reports which waffle build is running.
//
// Release builds stamp the variables below through ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/waffle/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/waffle/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/waffle/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with go install carry no ldflags; [Read] then falls back to
// the module version and VCS stamps recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes a build. It is served by the API health endpoint.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go"`
}

var readBuildInfo = debug.ReadBuildInfo

// Read returns the build information, preferring ldflags values.
func Read() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// ShortCommit returns the first 7 characters of the commit.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String returns a one-line summary, e.g. "v1.2.0 (3f2a9c1, 2026-01-05, go1.24.0)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s, %s)", i.Version, i.ShortCommit(), i.Date, i.GoVersion)
}

// String returns the summary of the running build.
func String() string { return Read().String() }

// Template returns the version template for cobra.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
