package tabular

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// markdownEscaper backslash-escapes characters Markdown treats as syntax.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`.`, `\.`,
	`!`, `\!`,
)

// ToMarkdown renders a Table as a Markdown table: one header row, a
// separator row of single dashes, then one row per record. Columns are
// joined with '|' and rows with '\n'; a table with no rows renders as "".
//
// Headers come from opts.Headers when set, else Table.Columns, else the
// sorted key set of the first row (for tables assembled by hand).
// ToMarkdown is pure: it never mutates t and repeat calls yield identical
// strings.
func ToMarkdown(t Table, opts RenderOptions) string {
	if len(t.Rows) == 0 {
		return ""
	}

	headers := opts.Headers
	if len(headers) == 0 {
		headers = t.Columns
	}
	if len(headers) == 0 {
		headers = make([]string, 0, len(t.Rows[0]))
		for k := range t.Rows[0] {
			headers = append(headers, k)
		}
		sort.Strings(headers)
	}

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, "|"+strings.Join(headers, "|")+"|")

	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "-"
	}
	lines = append(lines, "|"+strings.Join(seps, "|")+"|")

	cells := make([]string, len(headers))
	for _, row := range t.Rows {
		for i, h := range headers {
			cells[i] = escapeCell(row[h])
		}
		lines = append(lines, "|"+strings.Join(cells, "|")+"|")
	}

	return strings.Join(lines, "\n")
}

// escapeCell renders one cell value. The exact substitutions (including the
// literal "lt;"/"gt;" replacements, which are not valid HTML entities) are
// load-bearing for downstream renderers; do not "fix" them.
func escapeCell(v any) string {
	if v == nil {
		return ""
	}
	s := fmt.Sprintf("%v", v)
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = markdownEscaper.Replace(s)
	s = strings.ReplaceAll(s, "<", "lt;")
	s = strings.ReplaceAll(s, ">", "gt;")
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}
