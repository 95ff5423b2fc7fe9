// Package main provides the entry point for the countryinfo CLI tool.
package main

import (
	"github.com/ben10dynartio/countryinfo/cmd/countryinfo/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
