package config

import (
	"flag"
	"os"
	"time"

	"github.com/reymom/zkp-chaum-pedersen/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   address:port of the backend gRPC endpoint
//	-t int      per-call request timeout, seconds
//	-g int      group size in bits, 1024 or 2048
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server endpoint address")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.IntVar(&config.GroupBits, "g", config.GroupBits, "group size in bits (1024 or 2048)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
