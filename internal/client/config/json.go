package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/reymom/zkp-chaum-pedersen/internal/flagx"
	"github.com/reymom/zkp-chaum-pedersen/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "12s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	GroupBits          int            `json:"group_bits"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path is taken from the -c or -config flags; if neither is set, no JSON
// is loaded. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.GroupBits = jc.GroupBits
}
