package main

import "github.com/arr-ai/grammarguide/cmd"

// Build information, set with -ldflags "-X main.Version=...".
//
//nolint:gochecknoglobals
var (
	Version   = "unspecified"
	GitCommit = "unspecified"
	BuildDate = "unspecified"
	BuildOS   = "unspecified"
)

func main() {
	cmd.Main(cmd.VersionTags{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate, BuildOS: BuildOS})
}
