package geom

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d    Direction
		want Direction
	}{
		{North, South},
		{East, West},
		{South, North},
		{West, East},
	}

	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDirectionText(t *testing.T) {
	for _, d := range AllDirections() {
		text, _ := d.MarshalText()
		var back Direction
		if err := back.UnmarshalText(text); err != nil || back != d {
			t.Errorf("round trip of %v = %v, %v", d, back, err)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("up")); err == nil {
		t.Error("UnmarshalText(up) should fail")
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
		hit  bool
	}{
		{"overlap", R(0, 0, 4, 4), R(2, 2, 4, 4), R(2, 2, 2, 2), true},
		{"touching", R(0, 0, 4, 4), R(4, 0, 4, 4), Rect{}, false},
		{"inside", R(0, 0, 10, 10), R(3, 3, 2, 2), R(3, 3, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.hit {
				t.Errorf("Intersects = %v, want %v", got, tt.hit)
			}
			if tt.hit {
				if got := tt.a.Intersect(tt.b); got != tt.want {
					t.Errorf("Intersect = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRectPerimeter(t *testing.T) {
	r := R(2, 3, 4, 3)
	if !r.OnPerimeter(Pt(2, 4)) || !r.OnPerimeter(Pt(5, 5)) {
		t.Error("border tiles not on perimeter")
	}
	if r.OnPerimeter(Pt(3, 4)) {
		t.Error("interior tile reported on perimeter")
	}
	if !r.IsCorner(Pt(5, 3)) || r.IsCorner(Pt(4, 3)) {
		t.Error("IsCorner mismatch")
	}
	total := 0
	for _, s := range r.Perimeter() {
		total += s.Length()
	}
	if total != 2*(r.W+r.H) {
		t.Errorf("perimeter length = %d, want %d", total, 2*(r.W+r.H))
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		side Direction
		lo   int
		hi   int
		ok   bool
	}{
		{"north", R(0, 5, 6, 4), R(2, 2, 10, 3), North, 2, 5, true},
		{"south", R(0, 0, 6, 4), R(4, 4, 3, 3), South, 4, 5, true},
		{"east", R(0, 0, 4, 6), R(4, 3, 2, 8), East, 3, 5, true},
		{"west", R(5, 0, 4, 6), R(0, 0, 5, 2), West, 0, 1, true},
		{"corner only", R(0, 0, 4, 4), R(4, 4, 2, 2), 0, 0, 0, false},
		{"gap", R(0, 0, 4, 4), R(5, 0, 2, 2), 0, 0, 0, false},
		{"overlap", R(0, 0, 4, 4), R(3, 0, 2, 2), 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, ok := Adjacent(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Adjacent ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if adj.Side != tt.side || adj.Lo != tt.lo || adj.Hi != tt.hi {
				t.Errorf("Adjacent = %+v, want side %v range %d..%d", adj, tt.side, tt.lo, tt.hi)
			}
			for _, p := range adj.Edge(tt.a).Points() {
				if !tt.a.OnPerimeter(p) {
					t.Errorf("edge tile %v not on perimeter of %v", p, tt.a)
				}
			}
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		a, b Point
		n    int
	}{
		{Pt(0, 0), Pt(0, 0), 1},
		{Pt(0, 0), Pt(4, 0), 5},
		{Pt(0, 0), Pt(0, -3), 4},
		{Pt(0, 0), Pt(3, 3), 4},
		{Pt(1, 1), Pt(6, 3), 6},
	}

	for _, tt := range tests {
		pts := Line(tt.a, tt.b)
		if len(pts) != tt.n {
			t.Errorf("Line(%v, %v) has %d points, want %d", tt.a, tt.b, len(pts), tt.n)
		}
		if pts[0] != tt.a || pts[len(pts)-1] != tt.b {
			t.Errorf("Line(%v, %v) endpoints = %v..%v", tt.a, tt.b, pts[0], pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			if pts[i].Chebyshev(pts[i-1]) != 1 {
				t.Errorf("Line(%v, %v) jumps between %v and %v", tt.a, tt.b, pts[i-1], pts[i])
			}
		}
	}
}

func TestClamp(t *testing.T) {
	bounds := R(0, 0, 10, 10)
	if got := R(8, 9, 4, 3).Clamp(bounds); got != R(6, 7, 4, 3) {
		t.Errorf("Clamp = %v, want %v", got, R(6, 7, 4, 3))
	}
	if got := R(-2, 1, 3, 3).Clamp(bounds); got != R(0, 1, 3, 3) {
		t.Errorf("Clamp = %v, want %v", got, R(0, 1, 3, 3))
	}
}
