package types

import "testing"

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	if g.Width != 32 || g.Height != 24 {
		t.Fatalf("expected 32x24 grid, got %dx%d", g.Width, g.Height)
	}
	if c := g.Center(); c != (Cell{X: 16, Y: 12}) {
		t.Errorf("expected center (16,12), got %v", c)
	}
	if g.Size() != 768 {
		t.Errorf("expected 768 cells, got %d", g.Size())
	}
}

func TestWrapStaysOnGrid(t *testing.T) {
	g := DefaultGrid()
	for _, c := range g.Cells() {
		for _, d := range Directions {
			next := g.Wrap(c, d)
			if !g.Contains(next) {
				t.Fatalf("Wrap(%v, %v) = %v is off the grid", c, d, next)
			}
		}
	}
}

func TestWrapEdges(t *testing.T) {
	g := DefaultGrid()
	tests := []struct {
		from Cell
		dir  Direction
		want Cell
	}{
		{Cell{31, 12}, Right, Cell{0, 12}},
		{Cell{0, 12}, Left, Cell{31, 12}},
		{Cell{5, 0}, Up, Cell{5, 23}},
		{Cell{5, 23}, Down, Cell{5, 0}},
		{Cell{16, 12}, Right, Cell{17, 12}},
		{Cell{16, 12}, Up, Cell{16, 11}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.from, tt.dir); got != tt.want {
			t.Errorf("Wrap(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
	}
}

func TestOppositeIsInverse(t *testing.T) {
	for _, d := range Directions {
		o := d.Opposite()
		if o == d || !o.Valid() {
			t.Fatalf("bad opposite %v for %v", o, d)
		}
		dx, dy := d.Delta()
		ox, oy := o.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v are not inverse vectors", d, o)
		}
		if o.Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
	}
	if None.Valid() {
		t.Error("None must not be a valid heading")
	}
}

func TestCellsRowMajor(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	cells := g.Cells()
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	if cells[0] != (Cell{0, 0}) || cells[2] != (Cell{2, 0}) || cells[3] != (Cell{0, 1}) {
		t.Errorf("unexpected order: %v", cells)
	}
}
