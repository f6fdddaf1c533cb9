package app

import "fmt"

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/canteen-backend/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/canteen-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
//
// Version alone is reported by /health and attached to every log record.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the long form logged once at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", appName, Version, Commit, BuildTime)
}
