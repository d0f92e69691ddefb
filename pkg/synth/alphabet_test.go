package synth

import (
	"testing"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

func TestAlphabet_AddAndLookup(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 1, Name: "F"})

	if !a.HasSymbol(1) {
		t.Error("HasSymbol(1) = false after AddSymbol")
	}
	s, err := a.GetSymbol(1)
	if err != nil {
		t.Fatalf("GetSymbol(1) error: %v", err)
	}
	if s.Name != "F" {
		t.Errorf("GetSymbol(1).Name = %q, want %q", s.Name, "F")
	}
}

func TestAlphabet_FirstRegistrationWins(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 1, Name: "first"})
	a.AddSymbol(Symbol{ID: 1, Name: "second"})

	s, err := a.GetSymbol(1)
	if err != nil {
		t.Fatalf("GetSymbol(1) error: %v", err)
	}
	if s.Name != "first" {
		t.Errorf("GetSymbol(1).Name = %q, want %q (first registration wins)", s.Name, "first")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestAlphabet_GetSymbolUnregistered(t *testing.T) {
	a := NewAlphabet()

	_, err := a.GetSymbol(42)
	if err == nil {
		t.Fatal("GetSymbol(42) on empty alphabet succeeded")
	}
	if errors.GetCode(err) != errors.ErrCodeOutOfRange {
		t.Errorf("GetSymbol error code = %s, want %s", errors.GetCode(err), errors.ErrCodeOutOfRange)
	}
}

func TestAlphabet_RemoveSymbol(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 3, Name: "x"})

	a.RemoveSymbol(3)
	if a.HasSymbol(3) {
		t.Error("HasSymbol(3) = true after RemoveSymbol")
	}

	// Removing an absent id is a no-op.
	a.RemoveSymbol(3)
	a.RemoveSymbol(99)
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestAlphabet_SymbolsAscendingOrder(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 9, Name: "i"})
	a.AddSymbol(Symbol{ID: 2, Name: "b"})
	a.AddSymbol(Symbol{ID: -3, Name: "n"})
	a.AddSymbol(Symbol{ID: 5, Name: "e"})

	got := a.Symbols()
	wantIDs := []int{-3, 2, 5, 9}
	if len(got) != len(wantIDs) {
		t.Fatalf("len(Symbols()) = %d, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("Symbols()[%d].ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestAlphabet_SymbolsReflectsMutations(t *testing.T) {
	a := NewAlphabet()
	a.AddSymbol(Symbol{ID: 1, Name: "a"})

	before := a.Symbols()
	a.AddSymbol(Symbol{ID: 2, Name: "b"})
	after := a.Symbols()

	if len(before) != 1 {
		t.Errorf("first snapshot has %d symbols, want 1", len(before))
	}
	if len(after) != 2 {
		t.Errorf("second snapshot has %d symbols, want 2", len(after))
	}
}

func TestAlphabet_SentinelsNotRegistered(t *testing.T) {
	a := NewAlphabet()

	if a.HasSymbol(Empty.ID) {
		t.Error("empty sentinel registered in fresh alphabet")
	}
	if a.HasSymbol(Wildcard.ID) {
		t.Error("wildcard sentinel registered in fresh alphabet")
	}
}
