// Package journal persists ledger entries to a line-oriented text file and
// reads them back.
//
// Loading never fails outright. Every input line gets a LineResult saying
// whether it became an entry or why it was skipped, and a missing or
// unreadable file yields an empty Report.
package journal

import (
	"fmt"

	"github.com/rustyeddy/expenses/expense"
)

// Store is implemented by File and Memory.
type Store interface {
	Save(entries []expense.Entry) error
	Load() Report
}

// SkipReason says why a line was dropped while loading.
type SkipReason int

const (
	Accepted SkipReason = iota
	// SkipFieldCount: the line did not split into exactly three fields.
	SkipFieldCount
	// SkipAmount: the middle field is not a number.
	SkipAmount
	// SkipMalformed: quoting errors (CSV codec only).
	SkipMalformed
)

func (r SkipReason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case SkipFieldCount:
		return "wrong field count"
	case SkipAmount:
		return "invalid amount"
	case SkipMalformed:
		return "malformed record"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// LineResult is the outcome for one input line. Line is 1-based.
type LineResult struct {
	Line  int
	Raw   string
	Entry expense.Entry
	Skip  SkipReason
}

func (lr LineResult) OK() bool { return lr.Skip == Accepted }

// Report is the result of a load.
type Report struct {
	Lines []LineResult
	// Missing is set when there was no file to read. It is the normal first
	// run state, not an error.
	Missing bool
	// Err holds an open or read failure. Lines read before the failure are
	// kept.
	Err error
}

// Entries returns the accepted entries in file order.
func (r Report) Entries() []expense.Entry {
	out := make([]expense.Entry, 0, len(r.Lines))
	for _, lr := range r.Lines {
		if lr.OK() {
			out = append(out, lr.Entry)
		}
	}
	return out
}

// Skipped returns the dropped lines in file order.
func (r Report) Skipped() []LineResult {
	var out []LineResult
	for _, lr := range r.Lines {
		if !lr.OK() {
			out = append(out, lr)
		}
	}
	return out
}

func (r Report) Accepted() int {
	n := 0
	for _, lr := range r.Lines {
		if lr.OK() {
			n++
		}
	}
	return n
}
