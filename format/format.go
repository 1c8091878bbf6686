package format

import (
	"encoding"

	"github.com/wouterdebie/salph/alphabet"
)

// Result is one input word with its spelling.
type Result struct {
	Input     string              `json:"input"`
	Spellings []alphabet.Spelling `json:"spellings"`
}

// Encoder renders spelling results to a stream.
type Encoder interface {
	encoding.TextMarshaler
	Encode(results []Result) error
}
