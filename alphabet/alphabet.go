package alphabet

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrEmptyAlphabet is returned when an alphabet is constructed from a
// source that defines no symbols.
var ErrEmptyAlphabet = errors.New("alphabet: no symbols defined")

// Entry is a single symbol-to-word mapping as it appears in an
// alphabet source.
type Entry struct {
	Symbol string `json:"symbol"`
	Word   string `json:"word"`
}

// Spelling is one matched symbol mapped to its spoken word. IsNumber
// is set when the matched input was a number, so renderers can style
// digits differently from letters.
type Spelling struct {
	Word     string `json:"word"`
	IsNumber bool   `json:"is_number"`
}

// SpellingAlphabet maps symbols to the words used to spell them out
// loud. Symbols are usually single letters but may be longer, such as
// the Spanish "ll", the German "sch", or multi-digit numbers. A
// SpellingAlphabet is immutable after construction and safe for
// concurrent use.
type SpellingAlphabet struct {
	name   string
	words  map[string]string // case-folded symbol -> word
	order  []string          // symbols in first-seen order
	maxLen int               // longest symbol, in runes
}

// New builds a SpellingAlphabet from symbol/word entries. Symbols are
// folded to lowercase, so lookup is case-insensitive. When the same
// symbol appears more than once the last word wins, but the symbol
// keeps the position of its first occurrence. Entries with an empty
// symbol are ignored. Returns ErrEmptyAlphabet when no symbols remain.
func New(name string, entries []Entry) (*SpellingAlphabet, error) {
	words := make(map[string]string, len(entries))
	order := make([]string, 0, len(entries))
	maxLen := 0
	for _, entry := range entries {
		symbol := strings.ToLower(entry.Symbol)
		if symbol == "" {
			continue
		}
		if _, seen := words[symbol]; !seen {
			order = append(order, symbol)
		}
		words[symbol] = entry.Word
		if n := utf8.RuneCountInString(symbol); n > maxLen {
			maxLen = n
		}
	}
	if len(words) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return &SpellingAlphabet{
		name:   name,
		words:  words,
		order:  order,
		maxLen: maxLen,
	}, nil
}

// Name returns the alphabet's display name, such as "NATO phonetic
// alphabet". It may be empty for alphabets built without one.
func (a *SpellingAlphabet) Name() string { return a.name }

// Len returns the number of distinct symbols.
func (a *SpellingAlphabet) Len() int { return len(a.words) }

// Entries returns the symbol/word pairs in the order the source
// defined them, with symbols in their case-folded form.
func (a *SpellingAlphabet) Entries() []Entry {
	entries := make([]Entry, len(a.order))
	for i, symbol := range a.order {
		entries[i] = Entry{Symbol: symbol, Word: a.words[symbol]}
	}
	return entries
}

// Spell segments s into known symbols, left to right, and maps each to
// its word. At every position the longest matching symbol wins: with
// both "l" and "ll" defined, "ll" is consumed as a single symbol.
// Lookup is case-insensitive. Positions that start no known symbol are
// skipped without producing a Spelling, so unknown characters vanish
// from the result. A symbol made of digits is marked IsNumber.
func (a *SpellingAlphabet) Spell(s string) []Spelling {
	runes := []rune(s)
	var spellings []Spelling
	for start := 0; start < len(runes); {
		width := 1
		for n := a.maxLen; n >= 1; n-- {
			if start+n > len(runes) {
				continue
			}
			chunk := string(runes[start : start+n])
			word, ok := a.words[strings.ToLower(chunk)]
			if !ok {
				continue
			}
			_, err := strconv.Atoi(chunk)
			spellings = append(spellings, Spelling{Word: word, IsNumber: err == nil})
			width = n
			break
		}
		start += width
	}
	return spellings
}

// Words is Spell reduced to the words alone.
func (a *SpellingAlphabet) Words(s string) []string {
	spellings := a.Spell(s)
	words := make([]string, len(spellings))
	for i, spelling := range spellings {
		words[i] = spelling.Word
	}
	return words
}

// String renders one "SYMBOL word" line per entry, in the order the
// source defined them.
func (a *SpellingAlphabet) String() string {
	lines := make([]string, len(a.order))
	for i, symbol := range a.order {
		lines[i] = strings.ToUpper(symbol) + " " + a.words[symbol]
	}
	return strings.Join(lines, "\n")
}
