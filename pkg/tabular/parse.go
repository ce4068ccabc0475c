package tabular

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/oleg578/swiftcsv"
)

const defaultDelimiter = ','

// Parse converts delimited text into a Table.
//
// Lines beginning with '#' and empty lines are skipped before the grammar
// sees them. Headers come from opts.Headers when set, otherwise from the
// first surviving line. Cell values are coerced: integer strings become
// int64, other numeric strings become float64, everything else stays a
// string.
//
// Records that fail under the active column/delimiter configuration are
// silently discarded so that partial, noisy input stays usable. Parse only
// fails as a whole, with a *ParseError, when the input cannot be
// interpreted at all (malformed encoding, unusable delimiter, or a broken
// underlying stream).
func Parse(text string, opts ParseOptions) (Table, error) {
	if !utf8.ValidString(text) {
		return Table{}, &ParseError{Msg: "input is not valid UTF-8"}
	}

	delim := byte(defaultDelimiter)
	if opts.Delimiter != "" {
		if len(opts.Delimiter) != 1 {
			return Table{}, &ParseError{Msg: fmt.Sprintf("delimiter must be a single byte, got %q", opts.Delimiter)}
		}
		delim = opts.Delimiter[0]
	}

	r := swiftcsv.NewReader(strings.NewReader(stripComments(text)))
	r.Comma = delim

	var headers []string
	if len(opts.Headers) > 0 {
		headers = append([]string(nil), opts.Headers...)
		r.FieldsPerRecord = len(headers)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Per-record leniency: a malformed or mis-sized record is
			// dropped and parsing continues with the next one.
			var perr *swiftcsv.ParseError
			if errors.As(err, &perr) || errors.Is(err, swiftcsv.ErrorFieldCount) {
				continue
			}
			return Table{}, &ParseError{Msg: "cannot parse input", Err: err}
		}

		if headers == nil {
			headers = append([]string(nil), record...)
			r.FieldsPerRecord = len(headers)
			continue
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = coerce(record[i])
		}
		rows = append(rows, row)
	}

	return Table{Columns: headers, Rows: rows}, nil
}

// TryParse is the fail-soft variant of Parse. On whole-operation failure it
// reports the error once through sink (when non-nil) and returns ok=false
// instead of propagating the failure.
func TryParse(text string, opts ParseOptions, sink DiagnosticSink) (t Table, ok bool) {
	t, err := Parse(text, opts)
	if err != nil {
		if sink != nil {
			sink.Error("failed to parse tabular input", err)
		}
		return Table{}, false
	}
	return t, true
}

// stripComments drops comment lines (leading '#') and empty lines so the
// delimiter grammar only sees data. CRLF line endings are tolerated.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSuffix(line, "\r")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// coerce turns numeric strings into numbers and leaves everything else as
// the original string.
func coerce(s string) any {
	if s == "" {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
