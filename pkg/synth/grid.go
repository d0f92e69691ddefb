package synth

// Grid stores a 2D field of integer symbol codes in row-major order
// (index = y*width + x). Cell values are arbitrary integers and need not
// correspond to a registered alphabet symbol; the alphabet is consulted
// only for display and for random sampling pools.
//
// Get and Set do not bounds-check. Callers must guard with [Grid.InBounds];
// this deliberate low-level contract keeps the rule-matching inner loops
// free of redundant checks.
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid allocates a grid with the given dimensions, every cell set to
// defaultValue. Dimensions below 1 are clamped to 1.
func NewGrid(width, height, defaultValue int) *Grid {
	g := &Grid{}
	g.Resize(width, height, defaultValue)
	return g
}

// Get returns the cell at (x, y). No bounds check is performed.
func (g *Grid) Get(x, y int) int { return g.cells[y*g.width+x] }

// Set writes the cell at (x, y). No bounds check is performed.
func (g *Grid) Set(x, y, value int) { g.cells[y*g.width+x] = value }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Resize reallocates the cell storage for the new dimensions and fills
// every cell with defaultValue. No positional data is preserved; callers
// that want to keep overlapping regions must copy them out first.
// Dimensions below 1 are clamped to 1.
func (g *Grid) Resize(width, height, defaultValue int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g.width = width
	g.height = height
	g.cells = make([]int, width*height)
	if defaultValue != 0 {
		for i := range g.cells {
			g.cells[i] = defaultValue
		}
	}
}

// Clear overwrites every cell with value without resizing.
func (g *Grid) Clear(value int) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

// Cells exposes the backing slice in row-major order for serialization and
// bulk access. The slice aliases the grid's storage.
func (g *Grid) Cells() []int { return g.cells }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites this grid's cells with those of src.
// Both grids must already have identical dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}
