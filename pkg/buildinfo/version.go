// Package buildinfo holds the version stamped into the binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/sbgnconv/pkg/buildinfo.Version=v0.4.0 \
//	    -X github.com/matzehuels/sbgnconv/pkg/buildinfo.Commit=$(git rev-parse HEAD)" ./cmd/sbgnconv
//
// Binaries installed with "go install" fall back to the module version and
// VCS revision recorded by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// ProgramName is written into the render information of converted maps.
const ProgramName = "sbgnconv"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fillFrom(bi)
}

// fillFrom replaces unset variables with what the toolchain recorded.
func fillFrom(bi *debug.BuildInfo) {
	if v := bi.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = v
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template of the sbgnconv command.
func Template() string {
	return "{{.Name}} version {{.Version}}\n" + fmt.Sprintf("commit: %s\nbuilt: %s\n", Commit, Date)
}
