package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rustyeddy/expenses/expense"
)

// File stores entries in a single text file. Save truncates and rewrites the
// whole file; there is no temp file, rename or backup.
type File struct {
	path  string
	codec Codec
}

// NewFile uses the plain codec when codec is nil.
func NewFile(path string, codec Codec) *File {
	if codec == nil {
		codec = Plain{}
	}
	return &File{path: path, codec: codec}
}

func (f *File) Path() string { return f.path }
func (f *File) Codec() Codec { return f.codec }

func (f *File) Save(entries []expense.Entry) error {
	fh, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	if err := f.codec.Encode(fh, entries); err != nil {
		fh.Close()
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	return nil
}

func (f *File) Load() Report {
	fh, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{Missing: true}
		}
		return Report{Err: fmt.Errorf("load %s: %w", f.path, err)}
	}
	defer fh.Close()

	rep := f.codec.Decode(fh)
	if rep.Err != nil {
		rep.Err = fmt.Errorf("load %s: %w", f.path, rep.Err)
	}
	return rep
}

var _ Store = (*File)(nil)
