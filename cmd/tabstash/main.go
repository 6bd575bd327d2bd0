// Command tabstash stores suspended browser windows as tab groups.
package main

import (
	"runtime"

	"github.com/bnema/tabstash/internal/cli/cmd"
	"github.com/bnema/tabstash/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// A browser launching the native host lands in the host command.
	cmd.Execute()
}
