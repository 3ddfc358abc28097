// Package tracker is the entry point used by interaction shells. It loads
// the ledger, validates submitted input and answers total queries.
package tracker

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/expenses/aggregate"
	"github.com/rustyeddy/expenses/category"
	"github.com/rustyeddy/expenses/expense"
	"github.com/rustyeddy/expenses/internal/logging"
	"github.com/rustyeddy/expenses/journal"
	"github.com/rustyeddy/expenses/ledger"
)

// Options configures Open. The zero value uses the default categories and
// write-through saving.
type Options struct {
	Categories *category.Set
	Policy     ledger.Policy
	Logger     *log.Logger
}

type Tracker struct {
	store      journal.Store
	ledger     *ledger.Ledger
	categories category.Set
	logger     *log.Logger
}

// Open loads store into a new ledger. Load problems are logged and reported
// in the returned Report; they never prevent the tracker from opening.
func Open(store journal.Store, opts Options) (*Tracker, journal.Report) {
	logger := logging.Component(opts.Logger, logging.ComponentTracker)

	cats := category.Default()
	if opts.Categories != nil {
		cats = *opts.Categories
	}

	rep := store.Load()
	switch {
	case rep.Missing:
		logger.Info("no expense file yet, starting empty", logging.FieldOperation, logging.OpLoad)
	case rep.Err != nil:
		logger.Warn("could not read all of the expense file",
			logging.FieldOperation, logging.OpLoad,
			logging.FieldError, rep.Err)
	}
	for _, lr := range rep.Skipped() {
		logger.Warn("skipped expense line",
			logging.FieldLine, lr.Line,
			logging.FieldReason, lr.Skip.String())
	}

	// Lines read before a read error are kept.
	entries := rep.Entries()
	logger.Debug("expenses loaded",
		logging.FieldEntries, len(entries),
		logging.FieldSkipped, len(rep.Skipped()))

	l := ledger.New(store,
		ledger.WithEntries(entries),
		ledger.WithPolicy(opts.Policy),
		ledger.WithLogger(opts.Logger),
	)

	return &Tracker{
		store:      store,
		ledger:     l,
		categories: cats,
		logger:     logger,
	}, rep
}

// Submit parses amountText and appends a new entry. Validation failures
// leave the ledger untouched; the error wraps expense.ErrInvalidAmount or
// category.ErrUnknown.
func (t *Tracker) Submit(description, amountText, cat string) (expense.Entry, error) {
	amount, err := expense.ParseAmount(amountText)
	if err != nil {
		t.logger.Debug("rejected expense", logging.FieldOperation, logging.OpSubmit, logging.FieldError, err)
		return expense.Entry{}, err
	}
	if err := t.categories.Validate(cat); err != nil {
		t.logger.Debug("rejected expense", logging.FieldOperation, logging.OpSubmit, logging.FieldError, err)
		return expense.Entry{}, err
	}

	e := expense.New(description, amount, cat)
	t.ledger.Append(e)
	t.logger.Debug("expense added",
		logging.FieldDescription, description,
		logging.FieldAmount, amount.String(),
		logging.FieldCategory, cat)
	return e, nil
}

// Entries is the display list in insertion order.
func (t *Tracker) Entries() []expense.Entry { return t.ledger.All() }

func (t *Tracker) Total() decimal.Decimal {
	return aggregate.Total(t.ledger.All())
}

// CategoryTotal accepts any category name, configured or not.
func (t *Tracker) CategoryTotal(name string) decimal.Decimal {
	return aggregate.CategoryTotal(t.ledger.All(), name)
}

func (t *Tracker) Breakdown() []aggregate.CategoryAmount {
	return aggregate.ByCategory(t.ledger.All(), t.categories)
}

func (t *Tracker) Categories() category.Set { return t.categories }

func (t *Tracker) Dirty() bool { return t.ledger.Dirty() }

// Save flushes the ledger. Needed only with the manual policy or after a
// failed write-through.
func (t *Tracker) Save() error {
	if err := t.ledger.Save(); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}
	return nil
}
