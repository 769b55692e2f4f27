// Command gitref resolves git dependency specifiers to commits without
// cloning.
package main

import (
	"os"
	"runtime/debug"

	"github.com/jokarl/gitref/internal/cli"
)

// Set via ldflags during release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	fillFromBuildInfo()

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// fillFromBuildInfo fills whatever ldflags left unset from the module
// version and VCS stamps, as recorded by `go install module@version`.
func fillFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if commit != "none" {
		return
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.time":
			date = setting.Value
		}
	}
}
