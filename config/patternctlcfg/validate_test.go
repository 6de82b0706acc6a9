package patternctlcfg

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		root    Root
		wantErr bool
	}{
		{name: "zero", root: Root{}},
		{name: "ws url", root: Root{Server: Server{URL: "ws://localhost:8080/ws"}}},
		{name: "http url", root: Root{Server: Server{URL: "http://localhost"}}, wantErr: true},
		{name: "negative timeout", root: Root{Server: Server{Timeout: -time.Second}}, wantErr: true},
		{name: "sqlite", root: Root{DB: DB{URL: "sqlite:/tmp/x.db"}}},
		{name: "memory", root: Root{DB: DB{URL: "memory:"}}},
		{name: "postgres", root: Root{DB: DB{URL: "postgres://x"}}, wantErr: true},
		{name: "log format", root: Root{Log: Log{Format: "xml"}}, wantErr: true},
		{name: "retention", root: Root{Log: Log{RetentionDays: -1}}, wantErr: true},
		{name: "serve path", root: Root{Serve: Serve{Path: "ws"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.root.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
