package synth

import (
	"testing"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

func TestNew_Defaults(t *testing.T) {
	e := New(4, 3, 2)

	if e.Grid().Width() != 4 || e.Grid().Height() != 3 {
		t.Errorf("grid = %dx%d, want 4x3", e.Grid().Width(), e.Grid().Height())
	}
	if got := e.Grid().Get(0, 0); got != 2 {
		t.Errorf("default cell = %d, want 2", got)
	}
	if e.Alphabet().Len() != 0 {
		t.Errorf("alphabet starts with %d symbols, want 0", e.Alphabet().Len())
	}
	if len(e.Transformations()) != 0 {
		t.Errorf("pipeline starts with %d entries, want 0", len(e.Transformations()))
	}
}

func TestEngine_PipelineEdits(t *testing.T) {
	e := New(2, 2, 0)
	a := NewRandomFill("a")
	b := NewRandomFill("b")
	c := NewRandomFill("c")
	e.AddTransformation(a)
	e.AddTransformation(b)
	e.AddTransformation(c)

	e.MoveTransformation(2, 0)
	got := names(e.Transformations())
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after move: %v, want %v", got, want)
		}
	}

	e.RemoveTransformation(1)
	got = names(e.Transformations())
	want = []string{"c", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after remove: %v, want %v", got, want)
		}
	}

	// Out-of-range edits are ignored.
	e.RemoveTransformation(-1)
	e.RemoveTransformation(5)
	e.MoveTransformation(0, 9)
	if len(e.Transformations()) != 2 {
		t.Errorf("pipeline length = %d after no-op edits, want 2", len(e.Transformations()))
	}
}

func names(ts []*Transformation) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name()
	}
	return out
}

func TestSynthesize_EmptyPipeline(t *testing.T) {
	e := New(2, 2, 3)
	before := e.Grid().Clone()

	if err := e.Synthesize(); err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	if !e.Grid().Equal(before) {
		t.Error("empty pipeline changed the grid")
	}
}

func TestSynthesize_GridHandleStaysValid(t *testing.T) {
	e := New(4, 4, 0)
	e.Alphabet().AddSymbol(Symbol{ID: 7, Name: "x"})
	e.AddTransformation(NewRandomFill("fill"))

	handle := e.Grid()
	if err := e.Synthesize(); err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	if e.Grid() != handle {
		t.Fatal("Synthesize() replaced the grid handle")
	}
	for i, v := range handle.Cells() {
		if v != 7 {
			t.Fatalf("cell %d = %d after fill, want 7", i, v)
		}
	}
}

func TestSynthesize_DisabledSkipped(t *testing.T) {
	e := New(3, 3, 1)
	e.Alphabet().AddSymbol(Symbol{ID: 9, Name: "x"})

	fill := NewRandomFill("fill")
	fill.SetEnabled(false)
	e.AddTransformation(fill)

	if err := e.Synthesize(); err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	for i, v := range e.Grid().Cells() {
		if v != 1 {
			t.Fatalf("cell %d = %d, want 1 (disabled transformation ran)", i, v)
		}
	}
}

func TestSynthesize_ChainsTransformations(t *testing.T) {
	// Fill with the single symbol 1, then rewrite every 1 to 2. The second
	// step must see the first step's output.
	e := New(3, 3, 0, WithSeed(11))
	e.Alphabet().AddSymbol(Symbol{ID: 1, Name: "a"})
	e.AddTransformation(NewRandomFill("fill"))

	rule := NewRuleBased("promote")
	rule.SetSearch(gridOf(1, 1, 1))
	rule.AddReplacement(1.0, gridOf(1, 1, 2))
	e.AddTransformation(rule)

	if err := e.Synthesize(); err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	for i, v := range e.Grid().Cells() {
		if v != 2 {
			t.Fatalf("cell %d = %d, want 2", i, v)
		}
	}
}

func TestSynthesize_FailsFastOnError(t *testing.T) {
	e := New(2, 2, 5)
	e.AddTransformation(NewRandomFill("fill")) // empty alphabet: hard failure

	err := e.Synthesize()
	if err == nil {
		t.Fatal("Synthesize() with empty alphabet succeeded")
	}
	if errors.GetCode(err) != errors.ErrCodeEmptyAlphabet {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeEmptyAlphabet)
	}
	for i, v := range e.Grid().Cells() {
		if v != 5 {
			t.Fatalf("cell %d = %d after failed run, want 5 (no partial output)", i, v)
		}
	}
}

func TestSynthesize_SeedDeterminism(t *testing.T) {
	run := func() []int {
		e := New(8, 8, 0, WithSeed(42))
		e.Alphabet().AddSymbol(Symbol{ID: 1, Name: "a"})
		e.Alphabet().AddSymbol(Symbol{ID: 2, Name: "b"})
		e.Alphabet().AddSymbol(Symbol{ID: 3, Name: "c"})
		e.AddTransformation(NewRandomFill("fill"))
		if err := e.Synthesize(); err != nil {
			t.Fatalf("Synthesize() error: %v", err)
		}
		out := make([]int, len(e.Grid().Cells()))
		copy(out, e.Grid().Cells())
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded runs diverge at cell %d: %d vs %d", i, first[i], second[i])
		}
	}
}
