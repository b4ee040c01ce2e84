package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type productTable struct{}

func (productTable) Headers() []string { return []string{"NAME", "SKU", "STOCK"} }
func (productTable) Rows() [][]string {
	return [][]string{
		{"Desk", "DSK-1", "4"},
		{"Lamp", "LMP-1", "30"},
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, productTable{}))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Desk")
	assert.Contains(t, out, "LMP-1")
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, KeyValueTable(&buf, [][2]string{
		{"Name", "A"},
		{"Role", "admin"},
	}))

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "admin")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"products": 3}))
	assert.JSONEq(t, `{"products":3}`, buf.String())
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintYAML(&buf, map[string]int{"products": 3}))
	assert.Equal(t, "products: 3\n", buf.String())
}

func TestPrinterColors(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true)
	printer.Success("created")
	assert.Contains(t, buf.String(), "\033[32m")

	buf.Reset()
	plain := NewPrinter(&buf, false)
	plain.Error("failed")
	assert.Equal(t, "failed\n", buf.String())
}
