// Package version holds build metadata, set with -ldflags "-X" at build time
package version

var (
	GitSource   string
	GitTag      string
	GitBranch   string
	GitHash     string
	GoBuildTime string
)
