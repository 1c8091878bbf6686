package format

import (
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "Alpha")
	table.AddRow("bb", "Bravo")

	want := "a   Alpha\nbb  Bravo\n"
	if got := table.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTableIgnoresANSIWidths(t *testing.T) {
	table := NewTable()
	table.AddRow("\x1b[96;1ma\x1b[0m", "x")
	table.AddRow("bb", "y")

	want := "\x1b[96;1ma\x1b[0m   x\nbb  y\n"
	if got := table.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTableWideRunes(t *testing.T) {
	table := NewTable()
	table.AddRow("日本", "x")
	table.AddRow("abc", "y")

	want := "日本  x\nabc   y\n"
	if got := table.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTableSingleColumn(t *testing.T) {
	table := NewTable()
	table.AddRow("a")
	table.AddRow("bb")

	want := "a\nbb\n"
	if got := table.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable().String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}
