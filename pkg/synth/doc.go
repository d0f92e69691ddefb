// Package synth implements the grid-rewriting synthesis engine.
//
// # Overview
//
// The engine holds a rectangular [Grid] of integer-coded symbols, an
// [Alphabet] naming those symbols, and an ordered pipeline of
// [Transformation] values. A synthesis run applies each enabled
// transformation in order, producing a new grid state from the previous one.
//
// # Basic Usage
//
// Create an engine with [New], register symbols, append transformations and
// call [Engine.Synthesize]:
//
//	e := synth.New(16, 16, synth.Empty.ID)
//	e.Alphabet().AddSymbol(synth.Symbol{ID: 1, Name: "F"})
//	e.Alphabet().AddSymbol(synth.Symbol{ID: 2, Name: "G"})
//	e.AddTransformation(synth.NewRandomFill("Random"))
//	if err := e.Synthesize(); err != nil {
//	    return err
//	}
//
// # Transformations
//
// Two transformation kinds exist, discriminated by [Kind]:
//
//   - [KindRandomFill]: every cell is drawn uniformly at random from the
//     registered alphabet.
//   - [KindRuleBased]: a windowed pattern match-and-replace. A search
//     pattern grid is tested at every anchor position; on a match one of
//     the weighted replacement patterns may be applied.
//
// The sentinel [Wildcard] matches any cell in a search pattern and leaves
// the output cell unchanged in a replacement pattern. The sentinel [Empty]
// is the conventional "nothing here" code. Neither sentinel is ever an
// ordinary alphabet entry.
//
// # Pipeline Execution
//
// [Engine.Synthesize] runs the enabled transformations through two grid
// buffers whose roles swap after every applied transformation. Matching
// always reads the frozen input buffer while replacement writes accumulate
// in the output buffer, so overlapping rule matches resolve in scan order
// with later anchors overwriting earlier writes. Disabled transformations
// are skipped without a buffer swap.
//
// # Randomness
//
// By default every engine draws fresh entropy, so two synthesis runs are
// not expected to produce identical output. Pass [WithSeed] or [WithRandom]
// to New for deterministic replay.
//
// # Concurrency
//
// Engine values serialize Synthesize calls internally, but the Grid and
// Alphabet handles they expose are not safe for concurrent mutation.
// Mutate symbols and transformations only between synthesis runs.
package synth
