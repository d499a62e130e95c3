// In file: internal/version/version.go

// Package version reports what build is running. The variables are
// overridden at link time:
//
//	go build -ldflags "-X github.com/dileep-u-k/weather-gateway/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// ToolsVersion changes whenever tool behaviour visible to the model changes
// (names, schemas or result wording).
const ToolsVersion = "v1.0"

type BuildInfo struct {
	Version      string `json:"version"`
	BuildDate    string `json:"build_date"`
	GitCommit    string `json:"git_commit"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	ToolsVersion string `json:"tools_version"`
}

func Get() BuildInfo {
	return BuildInfo{
		Version:      Version,
		BuildDate:    BuildDate,
		GitCommit:    GitCommit,
		GoVersion:    runtime.Version(),
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		ToolsVersion: ToolsVersion,
	}
}
