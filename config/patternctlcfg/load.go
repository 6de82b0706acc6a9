package patternctlcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigName = "patternctl"
	EnvPrefix  = "PATTERNCTL"
)

// FlagKeys maps command line flags onto configuration keys. Flags that were
// set explicitly take precedence over the environment and the file.
var FlagKeys = map[string]string{
	"server-url": "server.url",
	"username":   "server.username",
	"timeout":    "server.timeout",
	"db-url":     "db.url",
	"log-format": "log.format",
	"log-level":  "log.level",
	"log-output": "log.output",
	"addr":       "serve.addr",
	"path":       "serve.path",
}

// Dir returns $HOME/.config/patternctl, or "." when no home is known.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", ConfigName)
}

func setDefaults(v *viper.Viper) {
	dir := Dir()
	v.SetDefault("server.url", "")
	v.SetDefault("server.username", "")
	v.SetDefault("server.timeout", "30s")
	v.SetDefault("server.header", map[string]string{})
	v.SetDefault("db.url", "sqlite:"+filepath.Join(dir, "journal.db"))
	v.SetDefault("log.format", "human")
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.output", "-")
	v.SetDefault("log.dir", filepath.Join(dir, "logs"))
	v.SetDefault("log.retentionDays", 7)
	v.SetDefault("serve.addr", "127.0.0.1:8080")
	v.SetDefault("serve.path", "/ws")
}

// Load resolves the configuration. configFile, when non-empty, must exist;
// otherwise patternctl.yaml is looked up in "." and Dir() and may be absent.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Root, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
