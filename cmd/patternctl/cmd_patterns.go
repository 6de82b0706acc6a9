package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/domain/schema"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/internal/naming"
)

// patternInfo is the listing shape of one contract.
type patternInfo struct {
	Pattern           string `json:"pattern"`
	Identifier        string `json:"identifier"`
	Request           string `json:"request"`
	Response          string `json:"response"`
	Deprecated        bool   `json:"deprecated,omitempty"`
	DeprecatedMessage string `json:"deprecatedMessage,omitempty"`
	Stream            bool   `json:"stream,omitempty"`
}

func newPatternInfo(d *contract.Descriptor) patternInfo {
	return patternInfo{
		Pattern:           d.Pattern().String(),
		Identifier:        d.Pattern().Identifier(),
		Request:           d.RequestType().String(),
		Response:          d.ResponseType().String(),
		Deprecated:        d.Deprecated(),
		DeprecatedMessage: d.DeprecatedMessage(),
		Stream:            d.Stream(),
	}
}

func newCmdPatterns() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "patterns",
		Aliases:       []string{"pattern"},
		Short:         "Inspect the pattern registry",
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdPatternsList())
	cmd.AddCommand(newCmdPatternsResolve())
	cmd.AddCommand(newCmdPatternsDescribe())
	cmd.AddCommand(newCmdPatternsCheck())
	return cmd
}

func newCmdPatternsList() *cobra.Command {
	var asJSON bool
	var prefix string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every pattern and its contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []patternInfo
			for _, d := range contract.Descriptors() {
				if prefix != "" && !strings.HasPrefix(d.Pattern().String(), prefix) {
					continue
				}
				items = append(items, newPatternInfo(d))
			}
			if asJSON {
				b, err := codec.MarshalIndent(items)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			t := newTable(cmd)
			t.AppendHeader(table.Row{"PATTERN", "IDENTIFIER", "REQUEST", "RESPONSE", "FLAGS"})
			for _, it := range items {
				var flags []string
				if it.Deprecated {
					flags = append(flags, colorize(cmd, text.Colors{text.FgYellow}, "deprecated"))
				}
				if it.Stream {
					flags = append(flags, "stream")
				}
				t.AppendRow(table.Row{it.Pattern, it.Identifier, it.Request, it.Response, strings.Join(flags, ",")})
			}
			t.AppendFooter(table.Row{"TOTAL", len(items)})
			t.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list patterns whose wire string starts with this prefix")
	return cmd
}

func newCmdPatternsResolve() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <wire|IDENTIFIER>...",
		Short: "Translate wire strings and identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				p, err := pattern.Resolve(a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.String(), p.Identifier())
			}
			return nil
		},
	}
}

func newCmdPatternsDescribe() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <wire|IDENTIFIER>",
		Short: "Show the contract of a pattern with its schemas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pattern.Resolve(args[0])
			if err != nil {
				return err
			}
			d, ok := contract.Lookup(p)
			if !ok {
				return fmt.Errorf("%w: %s", contract.ErrNotRegistered, p)
			}
			req, resp, err := d.Schemas()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			info := newPatternInfo(d)
			fmt.Fprintf(out, "pattern: %s\nidentifier: %s\nrequest: %s\nresponse: %s\n", info.Pattern, info.Identifier, info.Request, info.Response)
			if info.Deprecated {
				fmt.Fprintf(out, "deprecated: %s\n", info.DeprecatedMessage)
			}
			if info.Stream {
				fmt.Fprintln(out, "stream: true")
			}
			if err := writeSchema(out, "requestSchema", req); err != nil {
				return err
			}
			if err := writeSchema(out, "responseSchema", resp); err != nil {
				return err
			}
			return nil
		},
	}
}

func writeSchema(w io.Writer, title string, s *schema.Schema) error {
	if s == nil {
		fmt.Fprintf(w, "%s: null\n", title)
		return nil
	}
	y, err := s.Yaml()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s:\n%s", title, indent(y, "  "))
	return nil
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(l)
	}
	return b.String()
}

func newCmdPatternsCheck() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the registry is exhaustive and every schema generates",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, cleanup := withCmdRunLogger(cmd.Context(), "patterns.check", "registry")
			defer func() { cleanup(err) }()

			if err := contract.Validate(); err != nil {
				return err
			}
			var fp strings.Builder
			for _, d := range contract.Descriptors() {
				cfg, err := d.Config()
				if err != nil {
					return err
				}
				b, err := codec.Marshal(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(&fp, "%s=%s\n", d.Pattern(), b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d patterns, %d contracts, fingerprint %s\n",
				pattern.Len(), len(contract.Descriptors()), naming.Fingerprint(fp.String()))
			return nil
		},
	}
}
