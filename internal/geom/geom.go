// Package geom holds the integer tile geometry shared by every generation
// stage. Rectangles are half-open: a Rect covers [X, X+W) by [Y, Y+H).
package geom

// Point is a tile coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Chebyshev returns the king-move distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Size is a width and height in tiles.
type Size struct {
	W int `yaml:"width"`
	H int `yaml:"height"`
}

// Area returns W*H.
func (s Size) Area() int {
	return s.W * s.H
}

// Rect is an axis-aligned tile rectangle.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"width"`
	H int `yaml:"height"`
}

// R is a convenience constructor for Rect.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX is the first column right of the rectangle.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY is the first row below the rectangle.
func (r Rect) MaxY() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no tiles.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Area returns the number of tiles covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// Min returns the top-left tile.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Center returns the tile at the rounded-down center.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p is inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return false
	}
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Intersects reports whether r and o share at least one tile.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.MaxX(), o.MaxX()), min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Inset shrinks r by n tiles on every side; a negative n grows it.
func (r Rect) Inset(n int) Rect {
	return Rect{r.X + n, r.Y + n, r.W - 2*n, r.H - 2*n}
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// OnPerimeter reports whether p is one of r's border tiles.
func (r Rect) OnPerimeter(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.X || p.Y == r.Y || p.X == r.MaxX()-1 || p.Y == r.MaxY()-1
}

// IsCorner reports whether p is one of r's four corner tiles.
func (r Rect) IsCorner(p Point) bool {
	return (p.X == r.X || p.X == r.MaxX()-1) && (p.Y == r.Y || p.Y == r.MaxY()-1)
}

// Points lists the tiles of r in row-major order.
func (r Rect) Points() []Point {
	if r.Empty() {
		return nil
	}
	pts := make([]Point, 0, r.Area())
	for y := r.Y; y < r.MaxY(); y++ {
		for x := r.X; x < r.MaxX(); x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// Clamp moves r as little as possible so it fits inside bounds. A rectangle
// larger than bounds keeps its size and aligns to the bounds' top-left.
func (r Rect) Clamp(bounds Rect) Rect {
	if r.MaxX() > bounds.MaxX() {
		r.X = bounds.MaxX() - r.W
	}
	if r.MaxY() > bounds.MaxY() {
		r.Y = bounds.MaxY() - r.H
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}

// Segment is an axis-aligned run of tiles with inclusive endpoints.
type Segment struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Seg is a convenience constructor for Segment.
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{Point{x1, y1}, Point{x2, y2}}
}

// Horizontal reports whether the segment runs along x.
func (s Segment) Horizontal() bool {
	return s.From.Y == s.To.Y
}

// Length returns the number of tiles in the segment.
func (s Segment) Length() int {
	return max(abs(s.To.X-s.From.X), abs(s.To.Y-s.From.Y)) + 1
}

// Mid returns the middle tile, rounding toward From.
func (s Segment) Mid() Point {
	return Point{(s.From.X + s.To.X) / 2, (s.From.Y + s.To.Y) / 2}
}

// Points lists the tiles from From to To.
func (s Segment) Points() []Point {
	dx, dy := sign(s.To.X-s.From.X), sign(s.To.Y-s.From.Y)
	n := s.Length()
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{s.From.X + dx*i, s.From.Y + dy*i}
	}
	return pts
}

// Perimeter returns the four border segments of r, clockwise from north.
func (r Rect) Perimeter() []Segment {
	x1, y1 := r.MaxX()-1, r.MaxY()-1
	return []Segment{
		Seg(r.X, r.Y, x1, r.Y),
		Seg(x1, r.Y, x1, y1),
		Seg(x1, y1, r.X, y1),
		Seg(r.X, y1, r.X, r.Y),
	}
}

// Adjacency describes two rectangles that touch without overlapping.
type Adjacency struct {
	// Side is the side of the first rectangle facing the second.
	Side Direction
	// Lo and Hi bound the shared run of tiles: x for north/south, y for east/west.
	Lo, Hi int
}

// Length returns the number of shared tiles.
func (a Adjacency) Length() int {
	return a.Hi - a.Lo + 1
}

// Edge returns the border tiles of r along the shared run.
func (a Adjacency) Edge(r Rect) Segment {
	switch a.Side {
	case North:
		return Seg(a.Lo, r.Y, a.Hi, r.Y)
	case South:
		return Seg(a.Lo, r.MaxY()-1, a.Hi, r.MaxY()-1)
	case East:
		return Seg(r.MaxX()-1, a.Lo, r.MaxX()-1, a.Hi)
	default:
		return Seg(r.X, a.Lo, r.X, a.Hi)
	}
}

// Adjacent reports whether a and b share at least one full-tile edge.
func Adjacent(a, b Rect) (Adjacency, bool) {
	if a.Empty() || b.Empty() || a.Intersects(b) {
		return Adjacency{}, false
	}
	xlo, xhi := max(a.X, b.X), min(a.MaxX(), b.MaxX())-1
	ylo, yhi := max(a.Y, b.Y), min(a.MaxY(), b.MaxY())-1
	switch {
	case b.MaxY() == a.Y && xlo <= xhi:
		return Adjacency{North, xlo, xhi}, true
	case b.Y == a.MaxY() && xlo <= xhi:
		return Adjacency{South, xlo, xhi}, true
	case b.X == a.MaxX() && ylo <= yhi:
		return Adjacency{East, ylo, yhi}, true
	case b.MaxX() == a.X && ylo <= yhi:
		return Adjacency{West, ylo, yhi}, true
	}
	return Adjacency{}, false
}

// Line returns the Bresenham line from a to b, both ends included.
func Line(a, b Point) []Point {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy
	pts := make([]Point, 0, max(dx, -dy)+1)
	p := a
	for {
		pts = append(pts, p)
		if p == b {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
