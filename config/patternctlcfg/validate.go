package patternctlcfg

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if err := r.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := r.DB.validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	if err := r.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if r.Serve.Path != "" && !strings.HasPrefix(r.Serve.Path, "/") {
		return fmt.Errorf("serve.path must start with '/', got: %s", r.Serve.Path)
	}
	return nil
}

func (s *Server) validate() error {
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if s.URL == "" {
		return nil
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("url scheme must be ws or wss, got: %q", u.Scheme)
	}
	return nil
}

func (d *DB) validate() error {
	switch {
	case d.URL == "", d.URL == "memory:":
	case strings.HasPrefix(d.URL, "sqlite:"), strings.HasPrefix(d.URL, "sqlite3:"):
	default:
		return fmt.Errorf("unsupported url %q (memory: | sqlite:/path/to.db)", d.URL)
	}
	return nil
}

func (l *Log) validate() error {
	switch l.Format {
	case "", "human", "text", "json":
	default:
		return fmt.Errorf("unsupported format %q", l.Format)
	}
	if l.RetentionDays < 0 {
		return fmt.Errorf("retentionDays must not be negative")
	}
	return nil
}
