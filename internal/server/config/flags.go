package config

import (
	"flag"
	"os"
	"time"

	"github.com/reymom/zkp-chaum-pedersen/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   session token HMAC secret key
//	-t int      session token validity, minutes
//	-l int      auth_id token length
//	-g int      group size in bits, 1024 or 2048
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")

	fs.IntVar(&config.AuthIDLength, "l", config.AuthIDLength, "auth_id token length")
	fs.IntVar(&config.GroupBits, "g", config.GroupBits, "group size in bits (1024 or 2048)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
}
