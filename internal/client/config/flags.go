package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/courtside/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the stats backend (default from Config)
//	-p string   websocket URL of the push channel (default from Config)
//	-d string   path of the local credential database (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the stats backend")
	fs.StringVar(&cfg.PushURL, "p", cfg.PushURL, "websocket URL of the push channel")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local credential database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
