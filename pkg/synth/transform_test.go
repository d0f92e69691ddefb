package synth

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func gridOf(width, height int, values ...int) *Grid {
	g := NewGrid(width, height, 0)
	copy(g.Cells(), values)
	return g
}

func TestRandomFill_SingleSymbol(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 7, Name: "only"})

	in := NewGrid(4, 4, 0)
	out := NewGrid(4, 4, 0)

	tr := NewRandomFill("fill")
	if err := tr.Apply(testRNG(), a, in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	for i, v := range out.Cells() {
		if v != 7 {
			t.Fatalf("cell %d = %d, want 7 (only registered symbol)", i, v)
		}
	}
}

func TestRandomFill_EmptyAlphabet(t *testing.T) {
	in := NewGrid(2, 2, 0)
	out := NewGrid(2, 2, 0)

	tr := NewRandomFill("fill")
	err := tr.Apply(testRNG(), NewAlphabet(), in, out)
	if err == nil {
		t.Fatal("Apply() with empty alphabet succeeded")
	}
	if errors.GetCode(err) != errors.ErrCodeEmptyAlphabet {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeEmptyAlphabet)
	}
}

func TestRandomFill_DrawsOnlyRegisteredSymbols(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 1, Name: "a"})
	a.AddSymbol(Symbol{ID: 2, Name: "b"})
	a.AddSymbol(Symbol{ID: 5, Name: "c"})

	in := NewGrid(8, 8, 0)
	out := NewGrid(8, 8, 0)

	tr := NewRandomFill("fill")
	if err := tr.Apply(testRNG(), a, in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	valid := map[int]bool{1: true, 2: true, 5: true}
	for i, v := range out.Cells() {
		if !valid[v] {
			t.Fatalf("cell %d = %d, not a registered symbol", i, v)
		}
	}
}

func TestRuleBased_SimpleReplace(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(1, 1, 3))
	tr.AddReplacement(1.0, gridOf(1, 1, 9))

	in := gridOf(3, 1, 3, 0, 3)
	out := NewGrid(3, 1, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	want := []int{9, 0, 9}
	for i, v := range out.Cells() {
		if v != want[i] {
			t.Errorf("cell %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestRuleBased_NoSearchCopiesThrough(t *testing.T) {
	tr := NewRuleBased("rule")

	in := gridOf(2, 2, 1, 2, 3, 4)
	out := NewGrid(2, 2, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if !out.Equal(in) {
		t.Error("output differs from input with no search pattern")
	}
}

func TestRuleBased_NoReplacementsCopiesThrough(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(1, 1, 1))

	in := gridOf(2, 2, 1, 1, 1, 1)
	out := NewGrid(2, 2, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if !out.Equal(in) {
		t.Error("output differs from input with empty replacement list")
	}
}

// Overlapping matches both fire because matching reads the frozen input,
// and the later anchor in scan order wins shared output cells.
func TestRuleBased_OverlapLaterAnchorWins(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(2, 1, 5, 5))
	tr.AddReplacement(1.0, gridOf(2, 1, 7, 8))

	in := gridOf(3, 1, 5, 5, 5)
	out := NewGrid(3, 1, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	want := []int{7, 7, 8}
	for i, v := range out.Cells() {
		if v != want[i] {
			t.Errorf("cell %d = %d, want %d (full grid %v)", i, v, want[i], out.Cells())
		}
	}
}

func TestRuleBased_BoundarySkip(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(2, 2, 1, 1, 1, 1))
	tr.AddReplacement(1.0, gridOf(2, 2, 9, 9, 9, 9))

	// All 1s, but the grid is a single row: no 2x2 window ever fits.
	in := gridOf(3, 1, 1, 1, 1)
	out := NewGrid(3, 1, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("out = %v, want unchanged input (no window fits)", out.Cells())
	}
}

func TestRuleBased_WildcardInSearchMatchesAnything(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(2, 1, Wildcard.ID, 4))
	tr.AddReplacement(1.0, gridOf(2, 1, 9, 9))

	in := gridOf(2, 1, 123, 4)
	out := NewGrid(2, 1, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	want := []int{9, 9}
	for i, v := range out.Cells() {
		if v != want[i] {
			t.Errorf("cell %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestRuleBased_WildcardInReplacementLeavesCell(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(2, 1, 4, 4))
	tr.AddReplacement(1.0, gridOf(2, 1, Wildcard.ID, 9))

	in := gridOf(2, 1, 4, 4)
	out := NewGrid(2, 1, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if got := out.Get(0, 0); got != 4 {
		t.Errorf("cell 0 = %d, want 4 (wildcard leaves output untouched)", got)
	}
	if got := out.Get(1, 0); got != 9 {
		t.Errorf("cell 1 = %d, want 9", got)
	}
}

// Weighted selection: two replacements with weights 0.5/0.5 must both occur
// over many anchors, and nothing else may be written.
func TestRuleBased_WeightedSelection(t *testing.T) {
	tr := NewRuleBased("rule")
	tr.SetSearch(gridOf(1, 1, 1))
	tr.AddReplacement(0.5, gridOf(1, 1, 7))
	tr.AddReplacement(0.5, gridOf(1, 1, 8))

	in := NewGrid(32, 32, 1)
	out := NewGrid(32, 32, 0)

	if err := tr.Apply(testRNG(), NewAlphabet(), in, out); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	counts := map[int]int{}
	for _, v := range out.Cells() {
		counts[v]++
	}
	if counts[7] == 0 || counts[8] == 0 {
		t.Errorf("expected both replacements over 1024 anchors, got counts %v", counts)
	}
	for v := range counts {
		if v != 7 && v != 8 {
			t.Errorf("unexpected cell value %d (weights sum to 1.0)", v)
		}
	}
}

func TestTransformation_EnabledToggle(t *testing.T) {
	tr := NewRandomFill("fill")
	if !tr.Enabled() {
		t.Error("new transformation should start enabled")
	}
	tr.SetEnabled(false)
	if tr.Enabled() {
		t.Error("SetEnabled(false) did not stick")
	}
}

func TestTransformation_Accessors(t *testing.T) {
	tr := NewRuleBased("grow")
	if tr.Name() != "grow" {
		t.Errorf("Name() = %q, want %q", tr.Name(), "grow")
	}
	if tr.Kind() != KindRuleBased {
		t.Errorf("Kind() = %q, want %q", tr.Kind(), KindRuleBased)
	}

	search := gridOf(1, 1, 2)
	tr.SetSearch(search)
	if tr.Search() != search {
		t.Error("Search() did not return the set pattern")
	}

	tr.AddReplacement(0.3, gridOf(1, 1, 5))
	reps := tr.Replacements()
	if len(reps) != 1 {
		t.Fatalf("len(Replacements()) = %d, want 1", len(reps))
	}
	if reps[0].Probability != 0.3 {
		t.Errorf("Replacements()[0].Probability = %v, want 0.3", reps[0].Probability)
	}
}
