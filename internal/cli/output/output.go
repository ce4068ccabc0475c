// Package output renders parsed tables in the formats the CLI supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/oleg578/swiftcsv"
	"golang.org/x/term"

	"github.com/tabmark-labs/tabmark/pkg/tabular"
)

// Mode selects an output format.
type Mode string

const (
	// ModeAuto picks ModeTable on a terminal and ModeMarkdown otherwise.
	ModeAuto     Mode = "auto"
	ModeTable    Mode = "table"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeCSV      Mode = "csv"
)

// Modes lists the accepted --output values.
var Modes = []string{string(ModeAuto), string(ModeTable), string(ModeMarkdown), string(ModeJSON), string(ModeCSV)}

// Renderer writes tables to an output stream in a configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. An empty or unknown mode behaves as auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// EffectiveMode resolves ModeAuto against the output stream: styled tables
// for humans on a TTY, markdown for pipes and scripts.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeTable
	}
	return ModeMarkdown
}

// Render writes t in the effective mode.
func (r *Renderer) Render(t tabular.Table) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.renderJSON(t)
	case ModeCSV:
		return r.renderCSV(t)
	case ModeMarkdown:
		return r.renderMarkdown(t)
	default:
		return r.renderTable(t)
	}
}

func (r *Renderer) renderTable(t tabular.Table) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(r.out, "(0 rows)")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		headerRow[i] = col
	}
	tw.AppendHeader(headerRow)

	for _, rec := range t.Rows {
		row := make(table.Row, len(t.Columns))
		for i, col := range t.Columns {
			row[i] = formatValue(rec[col])
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, err := fmt.Fprintf(r.out, "(%d rows)\n", len(t.Rows))
	return err
}

func (r *Renderer) renderMarkdown(t tabular.Table) error {
	md := tabular.ToMarkdown(t, tabular.RenderOptions{})
	if md == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.out, md)
	return err
}

func (r *Renderer) renderJSON(t tabular.Table) error {
	rows := t.Rows
	if rows == nil {
		rows = []tabular.Row{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// renderCSV re-emits the table as normalized CSV, quoting through the same
// grammar the parser delegates to.
func (r *Renderer) renderCSV(t tabular.Table) error {
	w := swiftcsv.NewWriter(r.out)

	if len(t.Columns) > 0 {
		if err := w.Write(t.Columns); err != nil {
			return err
		}
	}

	record := make([]string, len(t.Columns))
	for _, rec := range t.Rows {
		for i, col := range t.Columns {
			record[i] = formatValue(rec[col])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Flush()
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
