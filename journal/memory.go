package journal

import (
	"bytes"

	"github.com/rustyeddy/expenses/expense"
)

// Memory is an in-process Store. It encodes through a real codec so that
// what Load returns is exactly what a file would give back.
type Memory struct {
	codec Codec
	data  []byte
	saved bool
	saves int
	fail  error
}

func NewMemory(codec Codec) *Memory {
	if codec == nil {
		codec = Plain{}
	}
	return &Memory{codec: codec}
}

// FailWith makes every following Save return err. Pass nil to clear.
func (m *Memory) FailWith(err error) { m.fail = err }

// Saves counts successful saves.
func (m *Memory) Saves() int { return m.saves }

// Bytes returns the encoded contents of the last successful save.
func (m *Memory) Bytes() []byte { return append([]byte(nil), m.data...) }

// SetBytes replaces the stored contents, as if the file had been edited.
func (m *Memory) SetBytes(b []byte) {
	m.data = append([]byte(nil), b...)
	m.saved = true
}

func (m *Memory) Save(entries []expense.Entry) error {
	if m.fail != nil {
		return m.fail
	}
	var buf bytes.Buffer
	if err := m.codec.Encode(&buf, entries); err != nil {
		return err
	}
	m.data = buf.Bytes()
	m.saved = true
	m.saves++
	return nil
}

func (m *Memory) Load() Report {
	if !m.saved {
		return Report{Missing: true}
	}
	return m.codec.Decode(bytes.NewReader(m.data))
}

var _ Store = (*Memory)(nil)
