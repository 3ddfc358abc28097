package ledger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/expenses/expense"
	"github.com/rustyeddy/expenses/journal"
)

func entry(desc, amount, cat string) expense.Entry {
	return expense.New(desc, decimal.RequireFromString(amount), cat)
}

func TestAppendKeepsOrder(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.Append(entry("Coffee", "4.50", "Food"))
	l.Append(entry("Bus", "2.00", "Transportation"))
	l.Append(entry("Lunch", "10", "Food"))

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Coffee", all[0].Description())
	assert.Equal(t, "Bus", all[1].Description())
	assert.Equal(t, "Lunch", all[2].Description())
	assert.Equal(t, 3, l.Len())
}

func TestAllIsACopy(t *testing.T) {
	t.Parallel()

	l := New(nil, WithEntries([]expense.Entry{entry("a", "1", "Food")}))
	all := l.All()
	all[0] = entry("z", "9", "Other")

	assert.Equal(t, "a", l.All()[0].Description())
}

func TestWriteThroughSavesEveryAppend(t *testing.T) {
	t.Parallel()

	store := journal.NewMemory(nil)
	l := New(store)
	assert.Equal(t, WriteThrough, l.Policy())

	l.Append(entry("Coffee", "4.50", "Food"))
	l.Append(entry("Bus", "2.00", "Transportation"))

	assert.Equal(t, 2, store.Saves())
	assert.False(t, l.Dirty())

	// memory and storage agree after every append
	loaded := store.Load().Entries()
	require.Len(t, loaded, 2)
	for i, e := range l.All() {
		assert.True(t, e.Equal(loaded[i]))
	}
}

func TestWriteThroughFailureKeepsEntry(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel})

	store := journal.NewMemory(nil)
	l := New(store, WithLogger(logger))
	l.Append(entry("Coffee", "4.50", "Food"))

	store.FailWith(errors.New("permission denied"))
	l.Append(entry("Bus", "2.00", "Transportation"))

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Dirty())
	assert.Contains(t, logs.String(), "permission denied")
	assert.Len(t, store.Load().Entries(), 1)

	// once storage recovers an explicit save syncs everything
	store.FailWith(nil)
	require.NoError(t, l.Save())
	assert.False(t, l.Dirty())
	assert.Len(t, store.Load().Entries(), 2)
}

func TestManualPolicy(t *testing.T) {
	t.Parallel()

	store := journal.NewMemory(nil)
	l := New(store, WithPolicy(Manual))

	l.Append(entry("Coffee", "4.50", "Food"))
	l.Append(entry("Bus", "2.00", "Transportation"))
	assert.Equal(t, 0, store.Saves())
	assert.True(t, l.Dirty())

	require.NoError(t, l.Save())
	assert.Equal(t, 1, store.Saves())
	assert.False(t, l.Dirty())
	assert.Len(t, store.Load().Entries(), 2)
}

func TestSaveError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	store := journal.NewMemory(nil)
	store.FailWith(boom)

	l := New(store, WithPolicy(Manual))
	l.Append(entry("a", "1", "Food"))

	err := l.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, l.Dirty())
}

func TestWithEntriesStartsClean(t *testing.T) {
	t.Parallel()

	l := New(journal.NewMemory(nil), WithEntries([]expense.Entry{entry("a", "1", "Food")}))
	assert.False(t, l.Dirty())
	assert.Equal(t, 1, l.Len())
}

func TestNilSaver(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.Append(entry("a", "1", "Food"))
	assert.NoError(t, l.Save())
	assert.False(t, l.Dirty())
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Policy{"": WriteThrough, "always": WriteThrough, "write-through": WriteThrough, "manual": Manual} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("sometimes")
	assert.Error(t, err)

	assert.Equal(t, "write-through", WriteThrough.String())
	assert.Equal(t, "manual", Manual.String())
}
