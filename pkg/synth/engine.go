package synth

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/matzehuels/gridsynth/pkg/observability"
)

// Engine owns a grid, the shared alphabet and the ordered transformation
// pipeline. It is the top-level entity of the package: editors and services
// consume it exclusively through its accessors.
//
// Synthesize calls are serialized internally. Everything else (alphabet and
// transformation mutation) follows single-writer discipline and must happen
// between synthesis runs.
type Engine struct {
	mu              sync.Mutex
	grid            *Grid
	alphabet        *Alphabet
	transformations []*Transformation
	rng             *rand.Rand
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithSeed makes the engine's random source deterministic. Without it every
// engine draws fresh entropy and no two synthesis runs are expected to
// produce identical output.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, 0)) }
}

// WithRandom supplies an explicit random source, overriding the default.
func WithRandom(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New creates an engine whose grid has the given dimensions with every cell
// set to defaultValue. The alphabet starts empty and the pipeline has no
// transformations.
func New(width, height, defaultValue int, opts ...Option) *Engine {
	e := &Engine{
		grid:     NewGrid(width, height, defaultValue),
		alphabet: NewAlphabet(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the engine's grid. The handle is mutable; editors paint
// cells through it directly.
func (e *Engine) Grid() *Grid { return e.grid }

// Alphabet returns the shared alphabet handle.
func (e *Engine) Alphabet() *Alphabet { return e.alphabet }

// AddTransformation appends t to the pipeline. Ownership transfers to the
// engine.
func (e *Engine) AddTransformation(t *Transformation) {
	e.transformations = append(e.transformations, t)
}

// Transformations returns the ordered pipeline. The slice aliases the
// engine's storage so callers can toggle entries in place; use
// RemoveTransformation and MoveTransformation for structural edits.
func (e *Engine) Transformations() []*Transformation { return e.transformations }

// RemoveTransformation removes the pipeline entry at index i.
// Out-of-range indices are ignored.
func (e *Engine) RemoveTransformation(i int) {
	if i < 0 || i >= len(e.transformations) {
		return
	}
	e.transformations = append(e.transformations[:i], e.transformations[i+1:]...)
}

// MoveTransformation moves the entry at index from to index to, shifting
// the entries between them. Out-of-range indices are ignored.
func (e *Engine) MoveTransformation(from, to int) {
	n := len(e.transformations)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	t := e.transformations[from]
	rest := append(e.transformations[:from], e.transformations[from+1:]...)
	e.transformations = append(rest[:to], append([]*Transformation{t}, rest[to:]...)...)
}

// Synthesize runs every enabled transformation in pipeline order and
// replaces the engine's grid contents with the final output.
//
// Execution is double-buffered: an active buffer (initially the engine
// grid) and a scratch buffer swap roles after each applied transformation.
// Disabled transformations are skipped without a swap. When the final
// active buffer is the scratch, its contents are copied back into the
// engine's grid so the Grid handle stays valid across calls.
//
// Synthesize blocks until every transformation has completed; there is no
// suspension point, cancellation or timeout. It fails fast on the first
// transformation error without copying partial output back.
func (e *Engine) Synthesize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	observability.Synth().OnSynthesizeStart(len(e.transformations))

	active := e.grid
	scratch := NewGrid(e.grid.Width(), e.grid.Height(), 0)

	applied := 0
	for _, t := range e.transformations {
		if !t.Enabled() {
			continue
		}
		stepStart := time.Now()
		if err := t.Apply(e.rng, e.alphabet, active, scratch); err != nil {
			observability.Synth().OnSynthesizeComplete(applied, time.Since(start), err)
			return err
		}
		observability.Synth().OnTransformationApplied(t.Name(), string(t.Kind()), time.Since(stepStart))
		active, scratch = scratch, active
		applied++
	}

	if active != e.grid {
		e.grid.CopyFrom(active)
	}

	observability.Synth().OnSynthesizeComplete(applied, time.Since(start), nil)
	return nil
}
