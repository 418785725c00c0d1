// Package buildinfo holds the version stamped into the binary at link time:
//
//	go build -ldflags "-X github.com/jmclachlan11/boxbuilder/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/jmclachlan11/boxbuilder/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/jmclachlan11/boxbuilder/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/boxbuilder
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build information as reported by the health endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info { return Info{Version: Version, Commit: Commit, Date: Date} }

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
