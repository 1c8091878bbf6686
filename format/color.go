package format

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/wouterdebie/salph/alphabet"
)

// Styler colors terminal output: spelled words green, numbers yellow,
// the input word bright cyan and bold. Styling degrades to plain text
// when w is not a terminal or when disabled.
type Styler struct {
	out *termenv.Output
}

func NewStyler(w io.Writer, disableColor bool) *Styler {
	var opts []termenv.OutputOption
	if disableColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Styler{out: termenv.NewOutput(w, opts...)}
}

// Input styles the word being spelled.
func (s *Styler) Input(text string) string {
	return s.out.String(text).Foreground(termenv.ANSIBrightCyan).Bold().String()
}

// Word styles a spelled-out letter.
func (s *Styler) Word(text string) string {
	return s.out.String(text).Foreground(termenv.ANSIGreen).String()
}

// Number styles a spelled-out number.
func (s *Styler) Number(text string) string {
	return s.out.String(text).Foreground(termenv.ANSIYellow).String()
}

// Spelling styles sp.Word according to its kind.
func (s *Styler) Spelling(sp alphabet.Spelling) string {
	if sp.IsNumber {
		return s.Number(sp.Word)
	}
	return s.Word(sp.Word)
}
