// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not
//     use test defaults in prod.
//   - SessionValidityDuration: session token lifetime.
//   - AuthIDLength: length of the opaque auth_id tokens.
//   - GroupBits: which RFC 5114 group to use, 1024 or 2048.
type Config struct {
	EndpointAddrGRPC        string
	SecretKey               string
	SessionValidityDuration time.Duration
	AuthIDLength            int
	GroupBits               int
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: The secret key is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 30 * time.Minute
	c.AuthIDLength = 12
	c.GroupBits = 1024
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
