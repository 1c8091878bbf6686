package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder renders results as an indented JSON array.
type JSONEncoder struct {
	w       io.Writer
	results []Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(results []Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.results, "", "  ")
}
