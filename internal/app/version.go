package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/cellar-backend/internal/app.Version=1.0.0" ./cmd/server
//
// When Commit or BuildTime are not set, the VCS stamp embedded by the Go
// toolchain is used instead.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported in startup logs and by
// the health endpoint.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromVCS(info.Settings, commit, built)
	}
	return formatVersion(Version, commit, built)
}

// fromVCS fills commit and built from the vcs.* build settings when they
// still hold their "unknown" defaults. A modified tree marks the commit dirty.
func fromVCS(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, vcsTime string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if commit == "unknown" && revision != "" {
		commit = revision
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if modified {
			commit += "-dirty"
		}
	}
	if built == "unknown" && vcsTime != "" {
		built = vcsTime
	}
	return commit, built
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
