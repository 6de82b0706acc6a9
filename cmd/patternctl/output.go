package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newTable returns a table writer mirroring to the command output. Colors
// are only kept on terminals.
func newTable(cmd *cobra.Command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	if isTerminal(cmd) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleLight)
	}
	return t
}

// colorize applies c only when writing to a terminal.
func colorize(cmd *cobra.Command, c text.Colors, s string) string {
	if c == nil || !isTerminal(cmd) {
		return s
	}
	return c.Sprint(s)
}
