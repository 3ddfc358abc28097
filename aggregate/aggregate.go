// Package aggregate sums entry amounts.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/expenses/category"
	"github.com/rustyeddy/expenses/expense"
)

// CategoryAmount is the amount aggregated for one category name.
type CategoryAmount struct {
	Name   string
	Count  int
	Amount decimal.Decimal
}

// Total sums every amount. An empty slice totals zero.
func Total(entries []expense.Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount())
	}
	return sum
}

// CategoryTotal sums amounts whose category equals name exactly
// (case-sensitive).
func CategoryTotal(entries []expense.Entry, name string) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Category() == name {
			sum = sum.Add(e.Amount())
		}
	}
	return sum
}

func Count(entries []expense.Entry, name string) int {
	n := 0
	for _, e := range entries {
		if e.Category() == name {
			n++
		}
	}
	return n
}

// ByCategory returns one row per configured category, in set order and
// including zero rows, followed by rows for categories that appear in the
// entries but not in the set, in first-seen order.
func ByCategory(entries []expense.Entry, set category.Set) []CategoryAmount {
	names := set.Names()
	rows := make([]CategoryAmount, len(names))
	pos := make(map[string]int, len(names))
	for i, n := range names {
		rows[i] = CategoryAmount{Name: n, Amount: decimal.Zero}
		pos[n] = i
	}

	for _, e := range entries {
		i, ok := pos[e.Category()]
		if !ok {
			i = len(rows)
			pos[e.Category()] = i
			rows = append(rows, CategoryAmount{Name: e.Category(), Amount: decimal.Zero})
		}
		rows[i].Count++
		rows[i].Amount = rows[i].Amount.Add(e.Amount())
	}
	return rows
}
