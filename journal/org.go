package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/expenses/aggregate"
	"github.com/rustyeddy/expenses/category"
	"github.com/rustyeddy/expenses/expense"
)

// FormatEntries renders the display list, one entry per line.
func FormatEntries(entries []expense.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

// FormatLedgerOrg renders the ledger as an Org-mode document: an entries
// table followed by a per-category totals table. Org realigns the columns
// on the first C-c C-c.
func FormatLedgerOrg(entries []expense.Entry, set category.Set) string {
	var b strings.Builder

	b.WriteString("* Expenses\n")
	b.WriteString("| Description | Amount | Category |\n")
	b.WriteString("|-------------+--------+----------|\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			orgCell(e.Description()), e.Amount().StringFixed(2), orgCell(e.Category())))
	}

	b.WriteString("\n** Totals\n")
	b.WriteString("| Category | Count | Amount |\n")
	b.WriteString("|----------+-------+--------|\n")
	for _, row := range aggregate.ByCategory(entries, set) {
		b.WriteString(fmt.Sprintf("| %s | %d | %s |\n", orgCell(row.Name), row.Count, row.Amount.StringFixed(2)))
	}
	b.WriteString("|----------+-------+--------|\n")
	b.WriteString(fmt.Sprintf("| Total | %d | %s |\n", len(entries), aggregate.Total(entries).StringFixed(2)))

	return b.String()
}

// orgCell keeps a pipe inside a field from splitting the table cell.
func orgCell(s string) string {
	return strings.ReplaceAll(s, "|", `\vert{}`)
}
