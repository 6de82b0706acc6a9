// Package patternctlcfg loads the patternctl configuration from
// patternctl.yaml, PATTERNCTL_* environment variables and command flags.
package patternctlcfg

import "time"

// Root is the resolved configuration.
type Root struct {
	Server Server `mapstructure:"server"`
	DB     DB     `mapstructure:"db"`
	Log    Log    `mapstructure:"log"`
	Serve  Serve  `mapstructure:"serve"`
}

// Server configures the remote executor. An empty URL selects the local mux.
type Server struct {
	URL      string            `mapstructure:"url"`      // ws:// or wss:// endpoint
	Username string            `mapstructure:"username"` // stamped on outgoing datagrams
	Timeout  time.Duration     `mapstructure:"timeout"`  // per call, 0 disables
	Header   map[string]string `mapstructure:"header"`   // extra handshake headers
}

// DB selects the call journal store.
type DB struct {
	URL string `mapstructure:"url"` // memory: | sqlite:/path/to.db
}

// Log mirrors logging.LogConfig.
type Log struct {
	Format        string `mapstructure:"format"` // human (default) | text | json
	Level         string `mapstructure:"level"`
	Output        string `mapstructure:"output"` // "-" (default) | "none" | path
	Dir           string `mapstructure:"dir"`
	RetentionDays int    `mapstructure:"retentionDays"`
}

// Serve configures `patternctl serve`.
type Serve struct {
	Addr string `mapstructure:"addr"`
	Path string `mapstructure:"path"`
}
