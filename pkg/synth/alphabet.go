package synth

import (
	"slices"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

// Symbol is a named integer code usable as a grid cell value.
// Ids are caller-chosen; uniqueness is enforced only within an Alphabet.
type Symbol struct {
	ID   int
	Name string
}

// Reserved sentinel symbols. They carry special meaning in patterns and are
// never inserted into an Alphabet automatically:
//
//   - Empty denotes "nothing here".
//   - Wildcard matches any cell in a search pattern and leaves the output
//     cell unchanged in a replacement pattern.
var (
	Empty    = Symbol{ID: 0, Name: "empty"}
	Wildcard = Symbol{ID: -1, Name: "wildcard"}
)

// Alphabet is the registry of known symbols, keyed by id.
//
// Alphabet values are not safe for concurrent use. The engine is the sole
// mutator; transformations only read the alphabet during an apply call.
type Alphabet struct {
	symbols map[int]Symbol
}

// NewAlphabet creates an empty alphabet. The sentinels Empty and Wildcard
// are not registered.
func NewAlphabet() *Alphabet {
	return &Alphabet{symbols: make(map[int]Symbol)}
}

// AddSymbol registers s unless a symbol with the same id already exists.
// First registration wins; duplicates are silently ignored.
func (a *Alphabet) AddSymbol(s Symbol) {
	if _, ok := a.symbols[s.ID]; !ok {
		a.symbols[s.ID] = s
	}
}

// RemoveSymbol removes the symbol with the given id. Removing an absent id
// is a no-op.
func (a *Alphabet) RemoveSymbol(id int) {
	delete(a.symbols, id)
}

// HasSymbol reports whether a symbol with the given id is registered.
func (a *Alphabet) HasSymbol(id int) bool {
	_, ok := a.symbols[id]
	return ok
}

// GetSymbol returns the symbol registered under id.
// It fails with OUT_OF_RANGE when the id is not registered.
func (a *Alphabet) GetSymbol(id int) (Symbol, error) {
	s, ok := a.symbols[id]
	if !ok {
		return Symbol{}, errors.New(errors.ErrCodeOutOfRange, "symbol %d not registered", id)
	}
	return s, nil
}

// Symbols returns all registered symbols in ascending-id order.
// The slice is recomputed on every call; mutations between calls are
// always reflected.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a.symbols))
	for _, s := range a.symbols {
		out = append(out, s)
	}
	slices.SortFunc(out, func(x, y Symbol) int { return x.ID - y.ID })
	return out
}

// Len returns the number of registered symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }
