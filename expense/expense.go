// Package expense holds the Entry record kept in the ledger.
package expense

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when amount text is not a number.
var ErrInvalidAmount = errors.New("invalid expense amount")

// Entry is a single spending record. Entries are immutable once built.
type Entry struct {
	description string
	amount      decimal.Decimal
	category    string
}

// New stores all three fields verbatim. Nothing is validated here: negative
// amounts and unknown categories are accepted.
func New(description string, amount decimal.Decimal, category string) Entry {
	return Entry{
		description: description,
		amount:      amount,
		category:    category,
	}
}

func (e Entry) Description() string     { return e.description }
func (e Entry) Amount() decimal.Decimal { return e.amount }
func (e Entry) Category() string        { return e.category }

// Line renders the entry as description,amount,category. Commas inside the
// text fields are written as-is.
func (e Entry) Line() string {
	return e.description + "," + e.amount.String() + "," + e.category
}

// String is the display form shown in entry lists.
func (e Entry) String() string {
	return fmt.Sprintf("Description: %s, Amount: $%s, Category: %s",
		e.description, e.amount.String(), e.category)
}

// Equal compares amounts numerically, so 4.50 equals 4.5.
func (e Entry) Equal(o Entry) bool {
	return e.description == o.description &&
		e.category == o.category &&
		e.amount.Equal(o.amount)
}

// ParseAmount parses user or file supplied amount text. Surrounding
// whitespace is ignored.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
