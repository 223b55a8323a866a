package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"json":    FormatJSON,
		"yaml":    FormatYAML,
		"tsv":     FormatTSV,
		"table":   FormatTable,
		"":        FormatTable,
		"unknown": FormatTable,
	}
	for input, want := range cases {
		if got := ParseFormat(input); got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRenderRowsTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable)

	err := r.RenderRows(nil,
		[]string{"ID", "NAME"},
		[][]string{
			{"EV-00001", "Gala"},
			{"EV-00002", "Product Launch"},
		})
	if err != nil {
		t.Fatalf("RenderRows: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[3], "Product Launch") {
		t.Errorf("row = %q", lines[3])
	}
}

func TestRenderRowsTableEmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable)

	if err := r.RenderRows(nil, []string{"ID"}, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty table produced output: %q", buf.String())
	}
}

func TestRenderRowsTSV(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTSV)

	err := r.RenderRows(nil, []string{"ID", "NAME"}, [][]string{{"EV-00001", "Gala"}})
	if err != nil {
		t.Fatal(err)
	}
	want := "ID\tNAME\nEV-00001\tGala\n"
	if buf.String() != want {
		t.Errorf("tsv = %q, want %q", buf.String(), want)
	}
}

func TestRenderRowsJSONUsesRawData(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	data := []map[string]string{{"id": "EV-00001"}}
	if err := r.RenderRows(data, []string{"ID"}, [][]string{{"ignored"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"id": "EV-00001"`) {
		t.Errorf("json = %q", buf.String())
	}
	if strings.Contains(buf.String(), "ignored") {
		t.Error("json output used flattened rows instead of raw data")
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatYAML)

	if err := r.RenderYAML(map[string]string{"currency": "USD"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "currency: USD") {
		t.Errorf("yaml = %q", buf.String())
	}
}
