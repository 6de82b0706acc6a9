package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/usecase/call"
	"github.com/kompox/patternapi/usecase/journal"
)

func newCmdHistory() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "history",
		Short:         "Show or prune the call journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	list := newCmdHistoryList()
	cmd.RunE = list.RunE
	cmd.Flags().AddFlagSet(list.Flags())
	cmd.AddCommand(list)
	cmd.AddCommand(newCmdHistoryPrune())
	return cmd
}

func statusColor(status string) text.Colors {
	switch status {
	case string(envelope.StatusSuccess):
		return text.Colors{text.FgGreen}
	case string(envelope.StatusError):
		return text.Colors{text.FgYellow}
	case call.StatusFailed:
		return text.Colors{text.FgRed}
	}
	return nil
}

func newCmdHistoryList() *cobra.Command {
	var in journal.ListInput
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded calls, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildJournalUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := uc.List(cmd.Context(), &in)
			if err != nil {
				return err
			}
			if asJSON {
				b, err := codec.MarshalIndent(out)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			t := newTable(cmd)
			t.AppendHeader(table.Row{"TIME", "PATTERN", "STATUS", "DURATION", "USER", "MESSAGE"})
			for _, c := range out.Calls {
				msg := c.Message
				if len(msg) > 60 {
					msg = msg[:57] + "..."
				}
				t.AppendRow(table.Row{
					c.CreatedAt.Local().Format(time.DateTime),
					c.Pattern,
					colorize(cmd, statusColor(c.Status), c.Status),
					c.Duration.Round(time.Millisecond),
					c.Username,
					msg,
				})
			}
			t.AppendFooter(table.Row{"SHOWN", len(out.Calls), "TOTAL", out.Total})
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&in.Limit, "limit", "n", journal.DefaultLimit, "Maximum number of calls")
	cmd.Flags().IntVar(&in.Offset, "offset", 0, "Number of calls to skip")
	cmd.Flags().StringVarP(&in.Pattern, "pattern", "p", "", "Only calls of this wire pattern")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCmdHistoryPrune() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete recorded calls older than --older-than",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "history.prune", olderThan.String())
			defer func() { cleanup(err) }()

			uc, err := buildJournalUseCase(cmd)
			if err != nil {
				return err
			}
			out, err := uc.Prune(ctx, &journal.PruneInput{OlderThan: olderThan})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d calls\n", out.Deleted)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 7*24*time.Hour, "Minimum age of calls to delete")
	return cmd
}
