// Package grid provides the boolean occupancy grid used by the packers and
// placement passes. A grid lives in absolute tile coordinates and belongs to
// exactly one floor or room for the duration of one pass.
package grid

import "github.com/lawnchairsociety/hearthplan/internal/geom"

// Occupancy marks claimed tiles inside a bounding rectangle.
type Occupancy struct {
	bounds geom.Rect
	cells  []bool
}

// New returns an empty grid covering bounds.
func New(bounds geom.Rect) *Occupancy {
	return &Occupancy{bounds: bounds, cells: make([]bool, bounds.Area())}
}

// Bounds returns the covered rectangle.
func (o *Occupancy) Bounds() geom.Rect {
	return o.bounds
}

func (o *Occupancy) index(p geom.Point) int {
	return (p.Y-o.bounds.Y)*o.bounds.W + (p.X - o.bounds.X)
}

// Free reports whether p is inside the grid and unclaimed.
func (o *Occupancy) Free(p geom.Point) bool {
	return o.bounds.Contains(p) && !o.cells[o.index(p)]
}

// Fits reports whether every tile of r is free.
func (o *Occupancy) Fits(r geom.Rect) bool {
	if !o.bounds.ContainsRect(r) {
		return false
	}
	for y := r.Y; y < r.MaxY(); y++ {
		for x := r.X; x < r.MaxX(); x++ {
			if o.cells[o.index(geom.Pt(x, y))] {
				return false
			}
		}
	}
	return true
}

// Mark claims the part of r that lies inside the grid.
func (o *Occupancy) Mark(r geom.Rect) {
	r = r.Intersect(o.bounds)
	for _, p := range r.Points() {
		o.cells[o.index(p)] = true
	}
}

// MarkPoint claims p if it lies inside the grid.
func (o *Occupancy) MarkPoint(p geom.Point) {
	if o.bounds.Contains(p) {
		o.cells[o.index(p)] = true
	}
}

// Positions lists, in row-major order, every top-left corner where a w by h
// rectangle fits entirely on free tiles.
func (o *Occupancy) Positions(w, h int) []geom.Point {
	if w <= 0 || h <= 0 {
		return nil
	}
	var out []geom.Point
	for y := o.bounds.Y; y+h <= o.bounds.MaxY(); y++ {
		for x := o.bounds.X; x+w <= o.bounds.MaxX(); x++ {
			if o.Fits(geom.R(x, y, w, h)) {
				out = append(out, geom.Pt(x, y))
			}
		}
	}
	return out
}

// Used returns the number of claimed tiles.
func (o *Occupancy) Used() int {
	n := 0
	for _, c := range o.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (o *Occupancy) Clone() *Occupancy {
	c := &Occupancy{bounds: o.bounds, cells: make([]bool, len(o.cells))}
	copy(c.cells, o.cells)
	return c
}
