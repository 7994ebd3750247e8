// Package furnish fills packed rooms with fixtures, furniture, decorations
// and light. Each pass takes a room and returns a furnished copy; the input
// room is never modified.
package furnish

import (
	"fmt"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/grid"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

// Sub-stream offsets of the passes.
const (
	fixtureStream    = 1
	furnitureStream  = 2
	decorationStream = 3
)

// Input carries what the passes need besides the room itself.
type Input struct {
	Class  catalog.SocialClass
	Season catalog.Season
	// Features are the structural features of the room's floor. Stairs,
	// chimneys and pillars are treated as obstacles.
	Features []plan.StructuralFeature
	Seed     int64
}

// Room runs fixtures, furniture, decorations and lighting in that order.
func Room(r plan.Room, in Input) plan.Room {
	r = Fixtures(r, in)
	r = Furniture(r, in)
	r = Decorations(r, in)
	return Light(r, in)
}

func (in Input) stream(k int64) rng.Stream {
	return rng.New(in.Seed).Sub(k)
}

func (in Input) filter(r plan.Room) catalog.Filter {
	return catalog.Filter{Class: in.Class, Function: r.Function}
}

// blocking reports whether a structural feature takes up floor space.
func blocking(sf plan.StructuralFeature) bool {
	switch sf.Kind {
	case plan.FeatureStaircase, plan.FeatureChimney, plan.FeatureSupportPillar:
		return true
	}
	return false
}

// occupancy returns the room's interior grid with the tile inside each
// door, blocking structure and everything already placed marked.
func occupancy(r plan.Room, in Input) *grid.Occupancy {
	g := grid.New(r.Interior())
	for _, d := range r.Doors {
		g.MarkPoint(inside(d))
	}
	for _, sf := range in.Features {
		if blocking(sf) {
			g.Mark(sf.Bounds)
		}
	}
	for _, it := range r.Items() {
		g.Mark(it.Bounds())
	}
	return g
}

// inside returns the interior tile just behind a door or window.
func inside(o plan.Opening) geom.Point {
	return o.Point().Add(o.Facing.Opposite().Delta())
}

// touching lists the interior walls a rectangle lies against, in
// north, east, south, west order.
func touching(r, interior geom.Rect) []geom.Direction {
	var out []geom.Direction
	if r.Y == interior.Y {
		out = append(out, geom.North)
	}
	if r.MaxX() == interior.MaxX() {
		out = append(out, geom.East)
	}
	if r.MaxY() == interior.MaxY() {
		out = append(out, geom.South)
	}
	if r.X == interior.X {
		out = append(out, geom.West)
	}
	return out
}

func inCorner(r, interior geom.Rect) bool {
	var ns, ew bool
	for _, d := range touching(r, interior) {
		if d == geom.North || d == geom.South {
			ns = true
		} else {
			ew = true
		}
	}
	return ns && ew
}

// fits reports whether a rectangle satisfies a placement class.
func fits(r, interior geom.Rect, p catalog.Placement) bool {
	switch p {
	case catalog.Wall:
		return len(touching(r, interior)) > 0
	case catalog.Corner:
		return inCorner(r, interior)
	}
	return true
}

// centerDistance is the Manhattan distance between the centers of r and
// interior, in half tiles so even and odd sizes compare fairly.
func centerDistance(r, interior geom.Rect) int {
	dx := (2*r.X + r.W) - (2*interior.X + interior.W)
	dy := (2*r.Y + r.H) - (2*interior.Y + interior.H)
	return abs(dx) + abs(dy)
}

// spots lists the rectangles of size s that fit the grid and the placement
// class, in row-major order.
func spots(g *grid.Occupancy, s geom.Size, p catalog.Placement) []geom.Rect {
	interior := g.Bounds()
	var out []geom.Rect
	for _, pt := range g.Positions(s.W, s.H) {
		r := geom.R(pt.X, pt.Y, s.W, s.H)
		if fits(r, interior, p) {
			out = append(out, r)
		}
	}
	return out
}

// pick chooses a spot for a placement class: the most central spots for
// center items, any valid spot otherwise. Ties are broken by the stream.
func pick(g *grid.Occupancy, s geom.Size, p catalog.Placement, st rng.Stream, draw int) (geom.Rect, bool) {
	cands := spots(g, s, p)
	if len(cands) == 0 {
		return geom.Rect{}, false
	}
	if p == catalog.Center {
		best := cands[:0:0]
		bestD := -1
		for _, r := range cands {
			d := centerDistance(r, g.Bounds())
			switch {
			case bestD < 0 || d < bestD:
				best, bestD = []geom.Rect{r}, d
			case d == bestD:
				best = append(best, r)
			}
		}
		cands = best
	}
	return cands[st.Intn(draw, len(cands))], true
}

func itemID(roomID, asset string, n int) string {
	return fmt.Sprintf("%s_%s_%d", roomID, asset, n)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
