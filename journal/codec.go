package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/expenses/expense"
)

// Codec converts entries to and from their on-disk text form.
type Codec interface {
	Name() string
	Encode(w io.Writer, entries []expense.Entry) error
	Decode(r io.Reader) Report
}

const (
	FormatPlain = "plain"
	FormatCSV   = "csv"
)

// CodecByName maps a configured format name to its codec.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatPlain:
		return Plain{}, nil
	case FormatCSV:
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("unknown journal format %q (supported: %s, %s)", name, FormatPlain, FormatCSV)
	}
}

// Plain is the bare description,amount,category format. Fields are not
// quoted, so a comma inside a description or category produces a line that
// will not load back.
type Plain struct{}

func (Plain) Name() string { return FormatPlain }

func (Plain) Encode(w io.Writer, entries []expense.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.Line() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads one record per line with no limit on line length. Trailing
// empty fields are dropped before the field count is checked, so
// "Coffee,4.5," has two fields and "Coffee,4.5,Food,," has three.
func (Plain) Decode(r io.Reader) Report {
	var rep Report

	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			// the partial line may be cut short, so it is not kept
			rep.Err = fmt.Errorf("read line %d: %w", n, err)
			break
		}
		if raw != "" {
			raw = strings.TrimRight(raw, "\r\n")
			rep.Lines = append(rep.Lines, parseFields(n, raw, splitLine(raw)))
		}
		if err == io.EOF {
			break
		}
	}
	return rep
}

func splitLine(raw string) []string {
	fields := strings.Split(raw, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// parseFields applies the shared record rules: exactly three fields, each
// trimmed, the middle one numeric.
func parseFields(line int, raw string, fields []string) LineResult {
	lr := LineResult{Line: line, Raw: raw}
	if len(fields) != 3 {
		lr.Skip = SkipFieldCount
		return lr
	}
	amount, err := expense.ParseAmount(fields[1])
	if err != nil {
		lr.Skip = SkipAmount
		return lr
	}
	lr.Entry = expense.New(strings.TrimSpace(fields[0]), amount, strings.TrimSpace(fields[2]))
	return lr
}
