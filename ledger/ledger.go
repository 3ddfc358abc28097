// Package ledger keeps the ordered, in-memory list of expense entries and
// decides when it is written to storage.
package ledger

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/rustyeddy/expenses/expense"
	"github.com/rustyeddy/expenses/internal/logging"
)

// Saver persists the full entry list. journal.File and journal.Memory
// implement it.
type Saver interface {
	Save(entries []expense.Entry) error
}

// Policy controls when Append writes to the Saver.
type Policy int

const (
	// WriteThrough saves after every append.
	WriteThrough Policy = iota
	// Manual leaves saving to explicit Save calls.
	Manual
)

func (p Policy) String() string {
	switch p {
	case WriteThrough:
		return "write-through"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts the names used in configuration.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "always", "write-through":
		return WriteThrough, nil
	case "manual":
		return Manual, nil
	default:
		return 0, fmt.Errorf("unknown sync policy %q (supported: always, manual)", s)
	}
}

// Ledger is not safe for concurrent use.
type Ledger struct {
	entries []expense.Entry
	saver   Saver
	policy  Policy
	logger  *log.Logger
	dirty   bool
}

type Option func(*Ledger)

// WithEntries seeds the ledger, typically from a load. Seeded entries are
// considered in sync with storage.
func WithEntries(entries []expense.Entry) Option {
	return func(l *Ledger) {
		l.entries = append([]expense.Entry(nil), entries...)
	}
}

func WithPolicy(p Policy) Option {
	return func(l *Ledger) { l.policy = p }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New builds a ledger. A nil saver keeps everything in memory.
func New(saver Saver, opts ...Option) *Ledger {
	l := &Ledger{saver: saver}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.Component(l.logger, logging.ComponentLedger)
	return l
}

// Append adds e at the end. With WriteThrough the whole list is saved
// immediately. A failed save is logged and leaves the ledger dirty; the
// entry stays in memory.
func (l *Ledger) Append(e expense.Entry) {
	l.entries = append(l.entries, e)
	l.dirty = true

	if l.policy != WriteThrough {
		return
	}
	if err := l.Save(); err != nil {
		l.logger.Error("expense kept in memory but not saved",
			logging.FieldOperation, logging.OpAppend,
			logging.FieldDescription, e.Description(),
			logging.FieldError, err)
	}
}

// All returns a copy of the entries in insertion order.
func (l *Ledger) All() []expense.Entry {
	return append([]expense.Entry(nil), l.entries...)
}

func (l *Ledger) Len() int { return len(l.entries) }

// Dirty reports whether memory holds appends that storage does not.
func (l *Ledger) Dirty() bool { return l.dirty }

func (l *Ledger) Policy() Policy { return l.policy }

// Save writes every entry to the Saver and clears the dirty flag on success.
func (l *Ledger) Save() error {
	if l.saver == nil {
		l.dirty = false
		return nil
	}
	if err := l.saver.Save(l.entries); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	l.dirty = false
	l.logger.Debug("ledger saved", logging.FieldEntries, len(l.entries))
	return nil
}
