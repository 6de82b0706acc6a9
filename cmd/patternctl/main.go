package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kompox/patternapi/config/patternctlcfg"
	"github.com/kompox/patternapi/internal/logging"
)

type stateKey struct{}

// state is resolved once in PersistentPreRunE and shared by subcommands.
type state struct {
	cfg     *patternctlcfg.Root
	logFile *logging.LogFile
}

func stateFrom(cmd *cobra.Command) *state {
	if s, ok := cmd.Context().Value(stateKey{}).(*state); ok {
		return s
	}
	return &state{cfg: &patternctlcfg.Root{}}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patternctl",
		Short:   "Pattern API contract tool",
		Long:    "Inspect, export and invoke the pattern-keyed command API of the Kubernetes management backend.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default ./patternctl.yaml or $HOME/.config/patternctl/patternctl.yaml)")
	pf.String("server-url", "", "Remote executor websocket URL; empty uses the local mux (env PATTERNCTL_SERVER_URL)")
	pf.String("db-url", "", "Call journal URL (memory: | sqlite:/path/to.db); quote it in YAML config files (env PATTERNCTL_DB_URL)")
	pf.String("log-format", "human", "Log format (human|text|json) (env PATTERNCTL_LOG_FORMAT)")
	pf.String("log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR) (env PATTERNCTL_LOG_LEVEL)")
	pf.String("log-output", "-", `Log destination ("-" stderr, "none", or a file path) (env PATTERNCTL_LOG_OUTPUT)`)

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		file, _ := c.Flags().GetString("config")
		cfg, err := patternctlcfg.Load(file, c.Flags())
		if err != nil {
			return err
		}
		l, lf, err := logging.Setup(c.Context(), &logging.LogConfig{
			Format:        cfg.Log.Format,
			Level:         cfg.Log.Level,
			Output:        cfg.Log.Output,
			Dir:           cfg.Log.Dir,
			RetentionDays: cfg.Log.RetentionDays,
		}, os.Args)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l.With("runId", uuid.NewString()))
		ctx = context.WithValue(ctx, stateKey{}, &state{cfg: cfg, logFile: lf})
		c.SetContext(ctx)
		return nil
	}
	cmd.PersistentPostRunE = func(c *cobra.Command, _ []string) error {
		if lf := stateFrom(c).logFile; lf != nil {
			return lf.Close()
		}
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdPatterns())
	cmd.AddCommand(newCmdExport())
	cmd.AddCommand(newCmdCall())
	cmd.AddCommand(newCmdHistory())
	cmd.AddCommand(newCmdServe())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	root.SetContext(ctx)
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		var exitCodeErr ExitCodeError
		if errors.As(err, &exitCodeErr) {
			os.Exit(exitCodeErr.Code)
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
