// Package alphabet spells text out loud: it maps each symbol of an
// input string to the word a spelling alphabet assigns it, such as
// "Alpha" for "a" in the NATO alphabet.
//
// Matching is greedy. At each position in the input the longest
// defined symbol wins, which is how digraphs work: with the Spanish
// alphabet, "ll" becomes "Llobregat" rather than "Lorenzo Lorenzo".
// Lookup folds case, positions count runes rather than bytes, and
// characters that start no known symbol are skipped.
//
// A set of common alphabets ships embedded in the binary. Load fetches
// one by code:
//
//	nato, err := alphabet.Load("nato")
//	if err != nil {
//		return err
//	}
//	words := nato.Words("hi5") // ["Hotel", "India", "Five"]
//
// Custom alphabets come from New, or from Parse for the "symbol word"
// line format the embedded sources use.
package alphabet
