// Package category keeps the configured list of expense categories.
//
// The list is only consulted when accepting new input and when laying out a
// per-category summary. Stored entries and category totals accept any string.
package category

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrUnknown = errors.New("unknown category")

// Set is an ordered, de-duplicated list of category names.
type Set struct {
	names []string
	index map[string]struct{}
}

// Default returns the stock categories.
func Default() Set {
	return New("Food", "Transportation", "Entertainment", "Utilities", "Other")
}

// New trims names, drops blanks and keeps the first occurrence of duplicates.
// Input order is preserved.
func New(names ...string) Set {
	s := Set{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := s.index[n]; ok {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s
}

// ReadFile loads a set from a seed file with one category per line. Blank
// lines and lines starting with # are ignored.
func ReadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open categories file: %w", err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return Set{}, fmt.Errorf("read categories file: %w", err)
	}
	return New(names...), nil
}

// Names returns a copy of the categories in order.
func (s Set) Names() []string {
	return append([]string(nil), s.names...)
}

func (s Set) Len() int { return len(s.names) }

// Contains reports an exact, case-sensitive match.
func (s Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Validate accepts any name when the set is empty.
func (s Set) Validate(name string) error {
	if s.Len() == 0 || s.Contains(name) {
		return nil
	}
	return fmt.Errorf("%w %q (expected one of %s)", ErrUnknown, name, strings.Join(s.names, ", "))
}
