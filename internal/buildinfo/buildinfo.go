// Package buildinfo reports the build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/dmitrijs2005/voteportal/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/voteportal/internal/buildinfo.buildDate=2026-10-19 \
//	  -X github.com/dmitrijs2005/voteportal/internal/buildinfo.buildCommit=abc123"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes version, date and commit to w, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
