package format

import (
	"io"
	"strings"
)

// TextEncoder renders results as an aligned two-column table, the
// input word on the left and its spelling on the right, spelled-out
// words joined by separator.
type TextEncoder struct {
	w         io.Writer
	styler    *Styler
	separator string
	results   []Result
}

func NewTextEncoder(w io.Writer, separator string, disableColor bool) *TextEncoder {
	return &TextEncoder{
		w:         w,
		styler:    NewStyler(w, disableColor),
		separator: separator,
	}
}

func (e *TextEncoder) Encode(results []Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	table := NewTable()
	for _, result := range e.results {
		styled := make([]string, len(result.Spellings))
		for i, spelling := range result.Spellings {
			styled[i] = e.styler.Spelling(spelling)
		}
		table.AddRow(e.styler.Input(result.Input), strings.Join(styled, e.separator))
	}
	return []byte(table.String()), nil
}
