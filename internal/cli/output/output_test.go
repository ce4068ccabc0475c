package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabmark-labs/tabmark/pkg/tabular"
)

func sampleTable() tabular.Table {
	return tabular.Table{
		Columns: []string{"name", "age"},
		Rows: []tabular.Row{
			{"name": "Alice", "age": int64(30)},
			{"name": "Bob", "age": int64(25)},
		},
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{name: "explicit table", mode: ModeTable, want: ModeTable},
		{name: "explicit json", mode: ModeJSON, want: ModeJSON},
		{name: "explicit csv", mode: ModeCSV, want: ModeCSV},
		{name: "explicit markdown", mode: ModeMarkdown, want: ModeMarkdown},
		// A bytes.Buffer is not a TTY, so auto resolves to markdown.
		{name: "auto on non-tty", mode: ModeAuto, want: ModeMarkdown},
		{name: "empty behaves as auto", mode: "", want: ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(&buf, &buf, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_Markdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeMarkdown)
	require.NoError(t, r.Render(sampleTable()))

	assert.Equal(t, "|name|age|\n|-|-|\n|Alice|30|\n|Bob|25|\n", buf.String())
}

func TestRenderer_MarkdownEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeMarkdown)
	require.NoError(t, r.Render(tabular.Table{}))

	assert.Empty(t, buf.String())
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)
	require.NoError(t, r.Render(sampleTable()))

	want := `[
  {
    "age": 30,
    "name": "Alice"
  },
  {
    "age": 25,
    "name": "Bob"
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestRenderer_JSONEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)
	require.NoError(t, r.Render(tabular.Table{}))

	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderer_CSV(t *testing.T) {
	tbl := tabular.Table{
		Columns: []string{"name", "note"},
		Rows: []tabular.Row{
			{"name": "Smith, Jane", "note": "ok"},
		},
	}

	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeCSV)
	require.NoError(t, r.Render(tbl))

	assert.Equal(t, "name,note\n\"Smith, Jane\",ok\n", buf.String())
}

func TestRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeTable)
	require.NoError(t, r.Render(sampleTable()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "(2 rows)")
}

func TestRenderer_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeTable)
	require.NoError(t, r.Render(tabular.Table{}))

	assert.Equal(t, "(0 rows)\n", buf.String())
}
