package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kompox/patternapi/usecase/export"
)

// formatValue is a pflag.Value restricted to the export formats.
type formatValue export.Format

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }
func (f *formatValue) Type() string   { return "format" }
func (f *formatValue) Set(s string) error {
	v, err := export.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatValue(v)
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}

func newCmdExport() *cobra.Command {
	format := formatValue(export.FormatJSON)
	var output string
	var patterns []string
	var skipDeprecated bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the contract registry as json, yaml or typescript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "export", string(format))
			defer func() { cleanup(err) }()

			uc := &export.UseCase{}
			out, err := uc.Export(ctx, &export.ExportInput{
				Format:         export.Format(format),
				Patterns:       patterns,
				SkipDeprecated: skipDeprecated,
			})
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out.Content)
				return err
			}
			if err := os.WriteFile(output, out.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d patterns to %s\n", out.Count, output)
			return nil
		},
	}
	cmd.Flags().Var(&format, "format", "Output format ("+formatNames()+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringSliceVarP(&patterns, "pattern", "p", nil, "Only export these patterns (wire strings or identifiers)")
	cmd.Flags().BoolVar(&skipDeprecated, "skip-deprecated", false, "Leave deprecated patterns out")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(formatNames(), "|"), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
