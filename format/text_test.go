package format

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"

	"github.com/wouterdebie/salph/alphabet"
)

func TestTextEncoderPlain(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf, " ", true)

	results := []Result{
		{Input: "hi", Spellings: []alphabet.Spelling{{Word: "Hotel"}, {Word: "India"}}},
		{Input: "a1", Spellings: []alphabet.Spelling{{Word: "Alpha"}, {Word: "One", IsNumber: true}}},
	}
	if err := enc.Encode(results); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "hi  Hotel India\na1  Alpha One\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() wrote %q, want %q", got, want)
	}
}

func TestTextEncoderSeparator(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf, "-", true)

	results := []Result{
		{Input: "hi", Spellings: []alphabet.Spelling{{Word: "Hotel"}, {Word: "India"}}},
	}
	if err := enc.Encode(results); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "hi  Hotel-India\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() wrote %q, want %q", got, want)
	}
}

func TestTextEncoderColors(t *testing.T) {
	var buf bytes.Buffer
	enc := &TextEncoder{
		w:         &buf,
		styler:    &Styler{out: termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))},
		separator: " ",
	}

	results := []Result{
		{Input: "a", Spellings: []alphabet.Spelling{{Word: "Alpha"}}},
		{Input: "bb", Spellings: []alphabet.Spelling{{Word: "One", IsNumber: true}}},
	}
	if err := enc.Encode(results); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "\x1b[96;1ma\x1b[0m   \x1b[32mAlpha\x1b[0m\n" +
		"\x1b[96;1mbb\x1b[0m  \x1b[33mOne\x1b[0m\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() wrote %q, want %q", got, want)
	}
}

func TestTextEncoderEmpty(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf, " ", true)

	if err := enc.Encode(nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := buf.String(); got != "" {
		t.Errorf("Encode() wrote %q, want empty", got)
	}
}
