package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/voteportal/internal/flagx"
)

var knownFlags = []string{"-a", "-l", "-d", "-t", "-s", "-p", "-v"}

// parseFlags overlays cfg with the flags listed in the package doc. Only
// those flags are looked at, so -c and anything else on the command line is
// left to other parsers. Malformed values panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "remote API base address")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "portal listen address")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local state database path")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "outgoing request timeout, 0 disables it")
	fs.BoolVar(&cfg.StrictOfflineLogin, "s", cfg.StrictOfflineLogin, "check passwords during offline login")
	fs.DurationVar(&cfg.OnlineCheckInterval, "p", cfg.OnlineCheckInterval, "API ping interval of the terminal client")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
