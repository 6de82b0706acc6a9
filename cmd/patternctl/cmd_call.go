package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/usecase/call"
)

// exitRemoteError is the exit code when the executor answered with an error envelope.
const exitRemoteError = 2

// readPayload loads the request body from -d or -f. YAML files are
// converted to JSON; "-" reads stdin.
func readPayload(cmd *cobra.Command, data, file string) ([]byte, error) {
	if data != "" && file != "" {
		return nil, fmt.Errorf("--data and --file cannot be specified together")
	}
	if data != "" {
		return []byte(data), nil
	}
	if file == "" {
		return nil, nil
	}
	var (
		b   []byte
		err error
	)
	if file == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		if b, err = codec.YAMLToJSON(b); err != nil {
			return nil, fmt.Errorf("convert yaml payload: %w", err)
		}
	}
	return b, nil
}

func newCmdCall() *cobra.Command {
	var data, file string
	var timeout string
	var username string
	cmd := &cobra.Command{
		Use:   "call <pattern> [-d json | -f payload.(json|yaml)]",
		Short: "Invoke a pattern and print the response envelope",
		Long: `Invoke a pattern through the configured executor and print the response
envelope. Without --server-url the local mux answers describe and
audit-log/list; every other pattern reports a missing handler.

The command exits with status 2 when the executor answers with an error
envelope.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "call", args[0])
			defer func() { cleanup(err) }()

			payload, err := readPayload(cmd, data, file)
			if err != nil {
				return err
			}
			uc, closeFn, err := buildCallUseCase(ctx, cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := uc.Invoke(ctx, &call.InvokeInput{Pattern: args[0], Payload: payload})
			if err != nil {
				return err
			}
			b, err := codec.MarshalIndent(out.Envelope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			if out.Envelope.Status != envelope.StatusSuccess {
				return ExitCodeError{Code: exitRemoteError, Msg: out.Envelope.Message}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "Request payload as inline JSON")
	cmd.Flags().StringVarP(&file, "file", "f", "", `Request payload file (.json, .yaml, or "-" for stdin)`)
	cmd.Flags().StringVar(&timeout, "timeout", "", "Per call timeout, e.g. 10s (env PATTERNCTL_SERVER_TIMEOUT)")
	cmd.Flags().StringVar(&username, "username", "", "Username stamped on the datagram (env PATTERNCTL_SERVER_USERNAME)")
	return cmd
}
