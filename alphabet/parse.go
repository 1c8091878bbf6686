package alphabet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// commentPrefix marks comment lines in alphabet sources. When the very
// first line is a comment it carries the alphabet's display name.
const commentPrefix = "#"

// Parse reads an alphabet source: an optional "# Name" header, then
// one "symbol word" entry per line, split at the first space. The word
// part may itself contain spaces. Blank lines and later comment lines
// are ignored. A non-blank line without a space is an error.
func Parse(r io.Reader) (*SpellingAlphabet, error) {
	var (
		name    string
		entries []Entry
	)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, commentPrefix) {
			if lineNo == 1 {
				name = strings.TrimSpace(strings.TrimPrefix(line, commentPrefix))
			}
			continue
		}
		symbol, word, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("alphabet: line %d: expected \"symbol word\", got %q", lineNo, line)
		}
		entries = append(entries, Entry{Symbol: symbol, Word: word})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("alphabet: read source: %w", err)
	}
	return New(name, entries)
}
