package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/gridsynth/pkg/cache"
	"github.com/matzehuels/gridsynth/pkg/synth"
)

func TestGridHash(t *testing.T) {
	a := synth.NewGrid(3, 3, 0)
	b := synth.NewGrid(3, 3, 0)
	if GridHash(a) != GridHash(b) {
		t.Error("identical grids hash differently")
	}

	b.Set(1, 1, 5)
	if GridHash(a) == GridHash(b) {
		t.Error("different grids hash identically")
	}

	// Dimension changes must alter the hash even when cells match.
	c := synth.NewGrid(9, 1, 0)
	if GridHash(a) == GridHash(c) {
		t.Error("same cells with different dimensions hash identically")
	}
}

func TestCachedPNG(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	defer fc.Close()

	g := synth.NewGrid(4, 4, 0)
	g.Set(1, 2, 3)

	ctx := context.Background()
	keyer := cache.NewDefaultKeyer()

	first, err := CachedPNG(ctx, fc, keyer, g, 4)
	if err != nil {
		t.Fatalf("CachedPNG() error: %v", err)
	}
	second, err := CachedPNG(ctx, fc, keyer, g, 4)
	if err != nil {
		t.Fatalf("CachedPNG() error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("cached artifact differs from fresh render")
	}

	direct, err := PNG(g, WithScale(4))
	if err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	if !bytes.Equal(first, direct) {
		t.Error("cached path produced different bytes than direct render")
	}

	// A scale change must bypass the stored artifact.
	scaled, err := CachedPNG(ctx, fc, keyer, g, 8)
	if err != nil {
		t.Fatalf("CachedPNG() error: %v", err)
	}
	if bytes.Equal(first, scaled) {
		t.Error("different scale served the same artifact")
	}
}
