package synth

import "testing"

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(4, 3, 7)

	if g.Width() != 4 {
		t.Errorf("Width() = %d, want 4", g.Width())
	}
	if g.Height() != 3 {
		t.Errorf("Height() = %d, want 3", g.Height())
	}
	if len(g.Cells()) != 12 {
		t.Errorf("len(Cells()) = %d, want 12", len(g.Cells()))
	}
	for i, v := range g.Cells() {
		if v != 7 {
			t.Fatalf("cell %d = %d, want 7", i, v)
		}
	}
}

func TestNewGrid_ClampsToMinimum(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero", 0, 0},
		{"negative", -5, -1},
		{"mixed", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height, 0)
			if g.Width() < 1 || g.Height() < 1 {
				t.Errorf("NewGrid(%d, %d) = %dx%d, want at least 1x1",
					tt.width, tt.height, g.Width(), g.Height())
			}
		})
	}
}

func TestGrid_GetSet(t *testing.T) {
	g := NewGrid(3, 3, 0)

	g.Set(1, 2, 42)
	if got := g.Get(1, 2); got != 42 {
		t.Errorf("Get(1, 2) = %d, want 42", got)
	}
	if got := g.Get(2, 1); got != 0 {
		t.Errorf("Get(2, 1) = %d, want 0", got)
	}
}

func TestGrid_RowMajorLayout(t *testing.T) {
	g := NewGrid(3, 2, 0)
	g.Set(2, 0, 1) // last cell of first row
	g.Set(0, 1, 2) // first cell of second row

	cells := g.Cells()
	if cells[2] != 1 {
		t.Errorf("cells[2] = %d, want 1", cells[2])
	}
	if cells[3] != 2 {
		t.Errorf("cells[3] = %d, want 2", cells[3])
	}
}

func TestGrid_InBounds(t *testing.T) {
	g := NewGrid(3, 2, 0)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGrid_ResizeDiscardsContent(t *testing.T) {
	g := NewGrid(2, 2, 0)
	g.Set(0, 0, 9)
	g.Set(1, 1, 9)

	g.Resize(4, 4, 5)

	if g.Width() != 4 || g.Height() != 4 {
		t.Fatalf("after Resize got %dx%d, want 4x4", g.Width(), g.Height())
	}
	for i, v := range g.Cells() {
		if v != 5 {
			t.Fatalf("cell %d = %d after Resize, want 5", i, v)
		}
	}
}

func TestGrid_ResizeSameDimensions(t *testing.T) {
	g := NewGrid(2, 2, 0)
	g.Set(0, 0, 9)

	// Resizing to the current dimensions still resets content.
	g.Resize(2, 2, 0)

	if got := g.Get(0, 0); got != 0 {
		t.Errorf("Get(0, 0) = %d after same-size Resize, want 0", got)
	}
}

func TestGrid_Clear(t *testing.T) {
	g := NewGrid(2, 2, 3)
	g.Clear(8)

	for i, v := range g.Cells() {
		if v != 8 {
			t.Fatalf("cell %d = %d after Clear, want 8", i, v)
		}
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Errorf("Clear changed dimensions to %dx%d", g.Width(), g.Height())
	}
}

func TestGrid_Clone(t *testing.T) {
	g := NewGrid(2, 2, 1)
	g.Set(0, 1, 4)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("Clone() not equal to original")
	}

	c.Set(0, 0, 99)
	if g.Get(0, 0) == 99 {
		t.Error("mutating the clone changed the original")
	}
}

func TestGrid_Equal(t *testing.T) {
	a := NewGrid(2, 2, 0)
	b := NewGrid(2, 2, 0)
	if !a.Equal(b) {
		t.Error("identical grids reported unequal")
	}

	b.Set(1, 1, 5)
	if a.Equal(b) {
		t.Error("differing grids reported equal")
	}

	c := NewGrid(2, 3, 0)
	if a.Equal(c) {
		t.Error("differently sized grids reported equal")
	}
}

func TestGrid_CopyFrom(t *testing.T) {
	src := NewGrid(2, 2, 0)
	src.Set(1, 0, 3)

	dst := NewGrid(2, 2, 7)
	dst.CopyFrom(src)

	if !dst.Equal(src) {
		t.Error("CopyFrom did not replicate cells")
	}
}
