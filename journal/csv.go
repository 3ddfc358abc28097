package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/expenses/expense"
)

// CSV quotes fields as needed, so descriptions and categories containing
// commas, quotes or newlines survive a save and load.
type CSV struct{}

func (CSV) Name() string { return FormatCSV }

func (CSV) Encode(w io.Writer, entries []expense.Entry) error {
	cw := csv.NewWriter(w)
	for _, e := range entries {
		err := cw.Write([]string{
			e.Description(),
			e.Amount().String(),
			e.Category(),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (CSV) Decode(r io.Reader) Report {
	var rep Report

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				// the reader does not expose the offending text
				rep.Lines = append(rep.Lines, LineResult{
					Line: perr.StartLine,
					Raw:  perr.Err.Error(),
					Skip: SkipMalformed,
				})
				continue
			}
			rep.Err = fmt.Errorf("read csv: %w", err)
			break
		}
		line, _ := cr.FieldPos(0)
		rep.Lines = append(rep.Lines, parseFields(line, strings.Join(rec, ","), rec))
	}
	return rep
}
