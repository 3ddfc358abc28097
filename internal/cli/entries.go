package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/expenses/journal"
	"github.com/rustyeddy/expenses/tracker"
)

func newAddCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description> <amount> [category]",
		Short: "Record an expense",
		Long: `Record a new expense and write the expense file.

The category defaults to the first configured category.

Examples:
  expenses add "Coffee" 4.50 Food
  expenses add Bus 2 Transportation`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := rc.open()
			if err != nil {
				return err
			}

			cat := defaultCategory(tr)
			if len(args) == 3 {
				cat = args[2]
			}

			e, err := tr.Submit(args[0], args[1], cat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
			if tr.Dirty() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: expense not saved to %s\n", rc.cfg.Data.Path)
			}
			return nil
		},
	}
}

func newListCmd(rc *RootConfig) *cobra.Command {
	var org bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := rc.open()
			if err != nil {
				return err
			}
			if org {
				fmt.Fprint(cmd.OutOrStdout(), journal.FormatLedgerOrg(tr.Entries(), tr.Categories()))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatEntries(tr.Entries()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&org, "org", false, "render as an Org-mode document with totals")
	return cmd
}

func newTotalCmd(rc *RootConfig) *cobra.Command {
	var cat string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show total spend, overall or for one category",
		Long: `Show the sum of all recorded amounts, or with --category only those whose
category matches exactly (case-sensitive).

Examples:
  expenses total
  expenses total --category Food`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := rc.open()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("category") {
				fmt.Fprintln(cmd.OutOrStdout(), formatCategoryTotal(tr, cat))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatTotal(tr))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cat, "category", "c", "", "only sum this category")
	return cmd
}

func newSummaryCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals for every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := rc.open()
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), tr)
			return nil
		},
	}
}

func newCategoriesCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := rc.categories()
			if err != nil {
				return err
			}
			for _, n := range cats.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newCheckCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report which lines of the expense file load and which are skipped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rep, err := rc.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case rep.Missing:
				fmt.Fprintf(out, "%s: no such file (starts empty)\n", rc.cfg.Data.Path)
				return nil
			case rep.Err != nil:
				fmt.Fprintf(out, "%s: unreadable: %v\n", rc.cfg.Data.Path, rep.Err)
				return nil
			}
			skipped := rep.Skipped()
			fmt.Fprintf(out, "%s: %d accepted, %d skipped\n", rc.cfg.Data.Path, rep.Accepted(), len(skipped))
			for _, lr := range skipped {
				fmt.Fprintf(out, "  line %d: %s: %s\n", lr.Line, lr.Skip, lr.Raw)
			}
			return nil
		},
	}
}

func defaultCategory(tr *tracker.Tracker) string {
	names := tr.Categories().Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func formatTotal(tr *tracker.Tracker) string {
	return fmt.Sprintf("Total Expenses: $%s", tr.Total().String())
}

func formatCategoryTotal(tr *tracker.Tracker, cat string) string {
	return fmt.Sprintf("Total Expenses for Category %s: $%s", cat, tr.CategoryTotal(cat).String())
}

func writeSummary(w io.Writer, tr *tracker.Tracker) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tAMOUNT")
	n := 0
	for _, row := range tr.Breakdown() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Name, row.Count, row.Amount.StringFixed(2))
		n += row.Count
	}
	fmt.Fprintf(tw, "Total\t%d\t%s\n", n, tr.Total().StringFixed(2))
	tw.Flush()
}
