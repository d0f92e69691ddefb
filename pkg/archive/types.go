package archive

import (
	"github.com/matzehuels/gridsynth/pkg/errors"
	"github.com/matzehuels/gridsynth/pkg/synth"
)

// Version is the archive format version this package reads and writes.
const Version = 1

// Type tags for serialized transformations. They mirror the synth.Kind
// discriminants so no run-time type inspection is needed on either side.
const (
	TypeRandom    = string(synth.KindRandomFill)
	TypeRuleBased = string(synth.KindRuleBased)
)

// Document is the canonical serialization format for engine state.
// Used for files, API payloads and the archive store.
type Document struct {
	Version         int                  `json:"version" bson:"version"`
	Grid            GridData             `json:"grid" bson:"grid"`
	Alphabet        AlphabetData         `json:"alphabet" bson:"alphabet"`
	Transformations []TransformationData `json:"transformations" bson:"transformations"`
}

// GridData serializes a grid: row-major cells with explicit dimensions.
type GridData struct {
	Width  int   `json:"width" bson:"width"`
	Height int   `json:"height" bson:"height"`
	Data   []int `json:"data" bson:"data"`
}

// AlphabetData serializes the symbol registry in ascending-id order.
type AlphabetData struct {
	Symbols []SymbolData `json:"symbols" bson:"symbols"`
}

// SymbolData serializes one registered symbol.
type SymbolData struct {
	ID   int    `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// TransformationData serializes one pipeline entry. Search and Replacements
// are present only for rule-based transformations.
type TransformationData struct {
	Name         string            `json:"name" bson:"name"`
	Enabled      bool              `json:"enabled" bson:"enabled"`
	Type         string            `json:"type" bson:"type"`
	Search       *GridData         `json:"search,omitempty" bson:"search,omitempty"`
	Replacements []ReplacementData `json:"replacements,omitempty" bson:"replacements,omitempty"`
}

// ReplacementData serializes one weighted replacement pattern.
type ReplacementData struct {
	Probability float64  `json:"probability" bson:"probability"`
	Grid        GridData `json:"grid" bson:"grid"`
}

// =============================================================================
// Engine ↔ Document Conversion
// =============================================================================

// FromEngine converts an engine's full state to its serialization format.
func FromEngine(e *synth.Engine) Document {
	doc := Document{
		Version:  Version,
		Grid:     fromGrid(e.Grid()),
		Alphabet: AlphabetData{Symbols: []SymbolData{}},
	}

	for _, s := range e.Alphabet().Symbols() {
		doc.Alphabet.Symbols = append(doc.Alphabet.Symbols, SymbolData{ID: s.ID, Name: s.Name})
	}

	for _, t := range e.Transformations() {
		td := TransformationData{
			Name:    t.Name(),
			Enabled: t.Enabled(),
			Type:    string(t.Kind()),
		}
		if t.Kind() == synth.KindRuleBased {
			if s := t.Search(); s != nil {
				sd := fromGrid(s)
				td.Search = &sd
			}
			for _, rep := range t.Replacements() {
				td.Replacements = append(td.Replacements, ReplacementData{
					Probability: rep.Probability,
					Grid:        fromGrid(rep.Pattern),
				})
			}
		}
		doc.Transformations = append(doc.Transformations, td)
	}

	return doc
}

// Engine validates the document and constructs a fully populated engine.
// Any structural problem fails with MALFORMED_ARCHIVE and no engine is
// returned; the operation never partially applies.
func (d Document) Engine(opts ...synth.Option) (*synth.Engine, error) {
	if d.Version != Version {
		return nil, errors.New(errors.ErrCodeMalformedArchive, "unsupported archive version %d (want %d)", d.Version, Version)
	}

	grid, err := toGrid(d.Grid, "grid")
	if err != nil {
		return nil, err
	}

	e := synth.New(grid.Width(), grid.Height(), 0, opts...)
	e.Grid().CopyFrom(grid)

	seen := make(map[int]bool, len(d.Alphabet.Symbols))
	for _, s := range d.Alphabet.Symbols {
		if seen[s.ID] {
			return nil, errors.New(errors.ErrCodeMalformedArchive, "alphabet: duplicate symbol id %d", s.ID)
		}
		seen[s.ID] = true
		e.Alphabet().AddSymbol(synth.Symbol{ID: s.ID, Name: s.Name})
	}

	for i, td := range d.Transformations {
		t, err := toTransformation(td, i)
		if err != nil {
			return nil, err
		}
		e.AddTransformation(t)
	}

	return e, nil
}

func fromGrid(g *synth.Grid) GridData {
	data := make([]int, len(g.Cells()))
	copy(data, g.Cells())
	return GridData{Width: g.Width(), Height: g.Height(), Data: data}
}

// toGrid validates a serialized grid and rebuilds it. The field argument
// names the document location for error messages.
func toGrid(gd GridData, field string) (*synth.Grid, error) {
	if err := errors.ValidateDimensions(gd.Width, gd.Height); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedArchive, err, "%s: invalid dimensions", field)
	}
	if len(gd.Data) != gd.Width*gd.Height {
		return nil, errors.New(errors.ErrCodeMalformedArchive,
			"%s: data length %d does not match %dx%d", field, len(gd.Data), gd.Width, gd.Height)
	}
	g := synth.NewGrid(gd.Width, gd.Height, 0)
	copy(g.Cells(), gd.Data)
	return g, nil
}

func toTransformation(td TransformationData, index int) (*synth.Transformation, error) {
	switch td.Type {
	case TypeRandom:
		t := synth.NewRandomFill(td.Name)
		t.SetEnabled(td.Enabled)
		return t, nil

	case TypeRuleBased:
		if td.Search == nil {
			return nil, errors.New(errors.ErrCodeMalformedArchive,
				"transformations[%d]: rule_based requires a search pattern", index)
		}
		search, err := toGrid(*td.Search, "search")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedArchive, err, "transformations[%d]", index)
		}
		t := synth.NewRuleBased(td.Name)
		t.SetEnabled(td.Enabled)
		t.SetSearch(search)
		for ri, rd := range td.Replacements {
			if err := errors.ValidateProbability(rd.Probability); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedArchive, err,
					"transformations[%d].replacements[%d]", index, ri)
			}
			pattern, err := toGrid(rd.Grid, "replacement grid")
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedArchive, err,
					"transformations[%d].replacements[%d]", index, ri)
			}
			t.AddReplacement(rd.Probability, pattern)
		}
		return t, nil

	default:
		return nil, errors.New(errors.ErrCodeMalformedArchive,
			"transformations[%d]: unknown type %q", index, td.Type)
	}
}
