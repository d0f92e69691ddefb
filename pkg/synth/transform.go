package synth

import (
	"math/rand/v2"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

// Kind discriminates the transformation variants. The same tag is used for
// apply dispatch and for archive type tags, avoiding run-time type
// inspection.
type Kind string

const (
	// KindRandomFill fills every cell with a uniformly drawn alphabet symbol.
	KindRandomFill Kind = "random"

	// KindRuleBased performs windowed pattern match-and-replace.
	KindRuleBased Kind = "rule_based"
)

// Replacement is one weighted entry of a rule's replacement list.
// Weights need not sum to 1 across a list; unmatched probability mass means
// no replacement is applied even on a match.
type Replacement struct {
	Probability float64
	Pattern     *Grid
}

// Transformation is a named, toggleable rewrite step in the engine pipeline.
// It is a pure function from an input grid to an output grid of equal size;
// the alphabet it samples is borrowed from the engine for the duration of an
// Apply call and never stored.
type Transformation struct {
	name    string
	enabled bool
	kind    Kind

	// Rule-based state. Unused by random fill.
	search       *Grid
	replacements []Replacement
}

// NewRandomFill creates an enabled random-fill transformation.
func NewRandomFill(name string) *Transformation {
	return &Transformation{name: name, enabled: true, kind: KindRandomFill}
}

// NewRuleBased creates an enabled rule-based transformation with no search
// pattern and no replacements. Use [Transformation.SetSearch] and
// [Transformation.AddReplacement] to configure it.
func NewRuleBased(name string) *Transformation {
	return &Transformation{name: name, enabled: true, kind: KindRuleBased}
}

// Name returns the transformation's display name.
func (t *Transformation) Name() string { return t.name }

// Kind returns the variant discriminant.
func (t *Transformation) Kind() Kind { return t.kind }

// Enabled reports whether the transformation participates in synthesis.
func (t *Transformation) Enabled() bool { return t.enabled }

// SetEnabled toggles participation in synthesis.
func (t *Transformation) SetEnabled(enabled bool) { t.enabled = enabled }

// Search returns the search pattern, or nil for random-fill transformations.
func (t *Transformation) Search() *Grid { return t.search }

// SetSearch sets the search pattern of a rule-based transformation.
func (t *Transformation) SetSearch(search *Grid) { t.search = search }

// Replacements returns the ordered replacement list.
func (t *Transformation) Replacements() []Replacement { return t.replacements }

// AddReplacement appends a weighted replacement pattern.
func (t *Transformation) AddReplacement(probability float64, pattern *Grid) {
	t.replacements = append(t.replacements, Replacement{Probability: probability, Pattern: pattern})
}

// Apply runs the transformation, reading in and writing out. The grids must
// have identical dimensions; out is fully overwritten. The alphabet is read
// only for the duration of the call.
func (t *Transformation) Apply(rng *rand.Rand, alphabet *Alphabet, in, out *Grid) error {
	switch t.kind {
	case KindRandomFill:
		return t.applyRandomFill(rng, alphabet, in, out)
	case KindRuleBased:
		t.applyRuleBased(rng, in, out)
		return nil
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown transformation kind %q", t.kind)
	}
}

// applyRandomFill sets every output cell to the id of a symbol drawn
// uniformly at random. Each draw is independent; there is no spatial
// correlation. An empty alphabet is a hard precondition failure.
func (t *Transformation) applyRandomFill(rng *rand.Rand, alphabet *Alphabet, in, out *Grid) error {
	symbols := alphabet.Symbols()
	if len(symbols) == 0 {
		return errors.New(errors.ErrCodeEmptyAlphabet, "random fill %q requires at least one registered symbol", t.name)
	}
	for i := 0; i < in.Width(); i++ {
		for j := 0; j < in.Height(); j++ {
			out.Set(i, j, symbols[rng.IntN(len(symbols))].ID)
		}
	}
	return nil
}

// applyRuleBased scans every anchor position in x-outer/y-inner order and,
// on a match, applies at most one weighted replacement.
//
// Matching always reads the frozen input grid while replacement writes
// accumulate in the output, so overlapping anchors can both match and the
// later-scanned anchor's non-wildcard writes win for shared cells. The scan
// nesting determines this overlap resolution order and must not change.
func (t *Transformation) applyRuleBased(rng *rand.Rand, in, out *Grid) {
	out.CopyFrom(in)
	if t.search == nil {
		return
	}

	sw, sh := t.search.Width(), t.search.Height()
	for i := 0; i < in.Width(); i++ {
		for j := 0; j < in.Height(); j++ {
			if !in.InBounds(i+sw-1, j+sh-1) {
				continue
			}
			if !t.matchesAt(in, i, j) {
				continue
			}

			r := rng.Float64()
			acc := 0.0
			for _, rep := range t.replacements {
				acc += rep.Probability
				if r <= acc {
					writePattern(out, rep.Pattern, i, j)
					break
				}
			}
		}
	}
}

// matchesAt tests the search pattern anchored at (i, j) against g.
// Wildcard pattern cells match unconditionally.
func (t *Transformation) matchesAt(g *Grid, i, j int) bool {
	for x := 0; x < t.search.Width(); x++ {
		for y := 0; y < t.search.Height(); y++ {
			v := t.search.Get(x, y)
			if v == Wildcard.ID {
				continue
			}
			if g.Get(i+x, j+y) != v {
				return false
			}
		}
	}
	return true
}

// writePattern overwrites out with the pattern anchored at (i, j).
// Wildcard pattern cells leave the output untouched.
func writePattern(out, pattern *Grid, i, j int) {
	for x := 0; x < pattern.Width(); x++ {
		for y := 0; y < pattern.Height(); y++ {
			v := pattern.Get(x, y)
			if v == Wildcard.ID {
				continue
			}
			out.Set(i+x, j+y, v)
		}
	}
}
