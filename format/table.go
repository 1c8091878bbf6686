package format

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches SGR escape sequences, so column widths can be
// computed on the visible characters only.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Table lays out rows of cells in left-aligned columns separated by
// two spaces. Cells may contain ANSI color sequences and wide
// characters; both are accounted for when aligning.
type Table struct {
	rows [][]string
}

func NewTable() *Table {
	return &Table{}
}

// AddRow appends a row. Rows may have different cell counts.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// String renders the table, one row per line. The last cell of a row
// is not padded.
func (t *Table) String() string {
	widths := t.columnWidths()
	var sb strings.Builder
	for _, row := range t.rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-visibleWidth(cell)))
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Table) columnWidths() []int {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := visibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// visibleWidth is the on-screen width of s, ignoring ANSI sequences.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiPattern.ReplaceAllString(s, ""))
}
