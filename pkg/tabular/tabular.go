// Package tabular converts delimited text into structured records and
// renders those records as Markdown tables.
//
// Grammar-level parsing (quoting, escaping, multi-line fields) is delegated
// to github.com/oleg578/swiftcsv; this package owns the options surface,
// the fail-soft/fail-hard duality, and the exact Markdown escaping rules.
package tabular

// Row maps a column name to a scalar cell value. Values are string, int64,
// float64, or nil depending on the coercion applied at parse time.
type Row map[string]any

// Table is an ordered sequence of rows produced by a single Parse call.
// Columns preserves the header order observed in the input (or supplied via
// ParseOptions.Headers); Go maps carry no order, so rendering relies on it.
//
// A Table is never mutated after Parse returns. Rendering is read-only.
type Table struct {
	Columns []string
	Rows    []Row
}

// ParseOptions configures Parse and TryParse. The zero value selects a
// comma delimiter and infers headers from the first non-comment line.
type ParseOptions struct {
	// Delimiter overrides the column separator. Must be a single byte.
	Delimiter string
	// Headers supplies explicit column names. When set, every input line
	// is treated as data and records of a different width are discarded.
	Headers []string
}

// RenderOptions configures ToMarkdown.
type RenderOptions struct {
	// Headers overrides the rendered column set. Defaults to Table.Columns.
	Headers []string
}

// ParseError reports that an input could not be interpreted at all.
// Individual malformed records are skipped, not raised; see Parse.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
