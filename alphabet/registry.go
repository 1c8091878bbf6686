package alphabet

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed alphabets
var assets embed.FS

// assetDir is the embedded directory holding one source file per
// alphabet, named after its code (e.g. "nato", "de-DE").
const assetDir = "alphabets"

// ErrNotFound is returned when no alphabet exists under the requested
// name. Use Names or List for the known set.
var ErrNotFound = errors.New("alphabet: unknown alphabet")

// Info pairs an alphabet's code with its display name.
type Info struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Load reads the named embedded alphabet.
func Load(name string) (*SpellingAlphabet, error) {
	data, err := assets.ReadFile(assetDir + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	a, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return a, nil
}

// Validate reports whether name refers to a known alphabet, without
// parsing it.
func Validate(name string) error {
	if _, err := fs.Stat(assets, assetDir+"/"+name); err != nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Names returns the codes of all embedded alphabets, sorted.
func Names() []string {
	entries, err := assets.ReadDir(assetDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// List returns code and display name for every embedded alphabet,
// sorted by code. Display names come from each source's header line.
func List() ([]Info, error) {
	names := Names()
	infos := make([]Info, 0, len(names))
	for _, code := range names {
		a, err := Load(code)
		if err != nil {
			return nil, err
		}
		infos = append(infos, Info{Code: code, Name: a.Name()})
	}
	return infos, nil
}
