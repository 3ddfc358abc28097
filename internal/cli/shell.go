package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/expenses/category"
	"github.com/rustyeddy/expenses/expense"
	"github.com/rustyeddy/expenses/journal"
	"github.com/rustyeddy/expenses/tracker"
)

const shellHelp = `Commands:
  add <description> | <amount> | <category>   record an expense
  list                                       show all expenses
  total [category]                           total spend, optionally for one category
  summary                                    totals for every category
  categories                                 configured categories
  save                                       write the expense file now
  help                                       this text
  quit                                       leave (saves pending changes)`

func newShellCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive expense entry",
		Long: `Start an interactive session reading commands from stdin.

` + shellHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := rc.open()
			if err != nil {
				return err
			}
			return runShell(tr, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell executes one command per input line until quit or EOF. Command
// errors are printed and the loop carries on.
func runShell(tr *tracker.Tracker, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, journal.FormatEntries(tr.Entries()))

	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(verb) {
		case "":
		case "add":
			shellAdd(tr, rest, out)
		case "list":
			fmt.Fprint(out, journal.FormatEntries(tr.Entries()))
		case "total":
			if rest == "" {
				fmt.Fprintln(out, formatTotal(tr))
			} else {
				fmt.Fprintln(out, formatCategoryTotal(tr, rest))
			}
		case "summary":
			writeSummary(out, tr)
		case "categories":
			fmt.Fprintln(out, strings.Join(tr.Categories().Names(), ", "))
		case "save":
			if err := tr.Save(); err != nil {
				fmt.Fprintf(out, "Could not save: %v\n", err)
			} else {
				fmt.Fprintln(out, "Saved.")
			}
		case "help", "?":
			fmt.Fprintln(out, shellHelp)
		case "quit", "exit":
			return finishShell(tr, out)
		default:
			fmt.Fprintf(out, "Unknown command %q. Type help for a list.\n", verb)
		}
		fmt.Fprint(out, "> ")
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(out)
	return finishShell(tr, out)
}

func shellAdd(tr *tracker.Tracker, args string, out io.Writer) {
	parts := strings.Split(args, "|")
	if len(parts) < 2 || len(parts) > 3 {
		fmt.Fprintln(out, "Usage: add <description> | <amount> | <category>")
		return
	}
	desc := strings.TrimSpace(parts[0])
	amount := strings.TrimSpace(parts[1])
	cat := defaultCategory(tr)
	if len(parts) == 3 {
		cat = strings.TrimSpace(parts[2])
	}

	e, err := tr.Submit(desc, amount, cat)
	switch {
	case errors.Is(err, expense.ErrInvalidAmount):
		fmt.Fprintln(out, "Invalid expense amount.")
		return
	case errors.Is(err, category.ErrUnknown):
		fmt.Fprintf(out, "Unknown category %q. Choose one of: %s\n", cat, strings.Join(tr.Categories().Names(), ", "))
		return
	case err != nil:
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(out, e.String())
	if tr.Dirty() {
		fmt.Fprintln(out, "Warning: not saved yet.")
	}
}

func finishShell(tr *tracker.Tracker, out io.Writer) error {
	if !tr.Dirty() {
		return nil
	}
	if err := tr.Save(); err != nil {
		return fmt.Errorf("unsaved expenses: %w", err)
	}
	fmt.Fprintln(out, "Saved.")
	return nil
}
