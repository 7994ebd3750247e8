// Package walls derives the load-bearing walls of a building from its floor
// footprints and checks each wall's capacity against the floors above it.
package walls

import (
	"fmt"
	"slices"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/layout"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

const (
	// InteriorThreshold is the usable side above which a floor gets an
	// interior load-bearing wall.
	InteriorThreshold = 15
	// InteriorReach is how many floors above an interior wall rests on it.
	InteriorReach = 2
)

var sides = []string{"north", "east", "south", "west"}

// Input is the building's floors.
type Input struct {
	Building catalog.BuildingType
	Class    catalog.SocialClass
	Floors   []plan.Floor
}

// Result holds the walls and the floors with a load-bearing wall feature
// recorded for each wall.
type Result struct {
	Walls  []plan.Wall
	Floors []plan.Floor
	Issues []plan.Issue
}

// Generate builds a foundation perimeter under a basement, an exterior
// perimeter on every floor from the ground up and an interior wall on large
// floors.
func Generate(in Input) Result {
	floors := make([]plan.Floor, len(in.Floors))
	levels := make([]int, len(in.Floors))
	for i, f := range in.Floors {
		floors[i] = f.Clone()
		levels[i] = f.Level
	}
	slices.Sort(levels)
	res := Result{Floors: floors}

	upper := catalog.SelectWall(catalog.Filter{Class: in.Class, Building: in.Building})
	for i := range floors {
		f := &floors[i]
		var ws []plan.Wall
		if f.Level < 0 {
			ws = perimeter(f, plan.WallFoundation, "foundation", catalog.FoundationWall(), above(levels, f.Level, len(levels)))
		} else {
			ws = perimeter(f, plan.WallExterior, "exterior", upper, above(levels, f.Level, len(levels)))
			if f.Level == 0 {
				addEntrance(&ws[2], f.Footprint.Outer)
			}
		}
		if w, ok := interior(f, upper, above(levels, f.Level, InteriorReach)); ok {
			ws = append(ws, w)
		}
		for j := range ws {
			if issue, over := checkCapacity(&ws[j]); over {
				res.Issues = append(res.Issues, issue)
			}
			f.Footprint.Features = append(f.Footprint.Features, feature(ws[j]))
		}
		res.Walls = append(res.Walls, ws...)
	}
	return res
}

// above lists up to n levels higher than level.
func above(levels []int, level, n int) []int {
	var out []int
	for _, l := range levels {
		if l > level && len(out) < n {
			out = append(out, l)
		}
	}
	return out
}

func perimeter(f *plan.Floor, kind plan.WallKind, base string, t catalog.WallTemplate, supported []int) []plan.Wall {
	segs := f.Footprint.Outer.Perimeter()
	out := make([]plan.Wall, len(segs))
	for i, s := range segs {
		out[i] = plan.Wall{
			ID:              layout.RoomID(base+"_"+sides[i], f.Level),
			Kind:            kind,
			Floor:           f.Level,
			Segment:         s,
			Thickness:       t.Thickness,
			Material:        t.Material,
			Template:        t.ID,
			SupportCapacity: t.Capacity,
			SupportedFloors: slices.Clone(supported),
		}
	}
	return out
}

// addEntrance opens the front door in the middle of the ground floor's
// south wall.
func addEntrance(w *plan.Wall, outer geom.Rect) {
	w.Openings = append(w.Openings, plan.Opening{
		X: outer.X + outer.W/2, Y: outer.MaxY() - 1, Facing: geom.South,
	})
}

// Entrance returns the front door of a plan's ground floor.
func Entrance(ws []plan.Wall) (plan.Opening, bool) {
	for _, w := range ws {
		if w.Kind == plan.WallExterior && w.Floor == 0 && len(w.Openings) > 0 {
			return w.Openings[0], true
		}
	}
	return plan.Opening{}, false
}

// interior splits a large floor down the middle of its longer usable side,
// preferring a wall that runs north to south.
func interior(f *plan.Floor, t catalog.WallTemplate, supported []int) (plan.Wall, bool) {
	u := f.Footprint.Usable
	var seg geom.Segment
	facing := geom.East
	switch {
	case u.W > InteriorThreshold:
		x := u.X + u.W/2
		seg = geom.Seg(x, u.Y, x, u.MaxY()-1)
	case u.H > InteriorThreshold:
		y := u.Y + u.H/2
		seg = geom.Seg(u.X, y, u.MaxX()-1, y)
		facing = geom.South
	default:
		return plan.Wall{}, false
	}
	door := seg.Mid()
	return plan.Wall{
		ID:              layout.RoomID("interior_load_bearing", f.Level),
		Kind:            plan.WallInteriorLoadBearing,
		Floor:           f.Level,
		Segment:         seg,
		Thickness:       t.Thickness,
		Material:        t.Material,
		Template:        t.ID,
		SupportCapacity: t.Capacity,
		SupportedFloors: slices.Clone(supported),
		Openings:        []plan.Opening{{X: door.X, Y: door.Y, Facing: facing}},
	}, true
}

// checkCapacity truncates an overloaded wall's supported floors to its
// capacity and reports the overload.
func checkCapacity(w *plan.Wall) (plan.Issue, bool) {
	if len(w.SupportedFloors) <= w.SupportCapacity {
		return plan.Issue{}, false
	}
	logger.Debug("wall overloaded", "wall", w.ID, "supports", len(w.SupportedFloors), "capacity", w.SupportCapacity)
	issue := plan.Warn("WALL_OVERLOAD", fmt.Sprintf("%s (%s) carries %d floors but is rated for %d",
		w.ID, w.Template, len(w.SupportedFloors), w.SupportCapacity))
	w.SupportedFloors = w.SupportedFloors[:w.SupportCapacity]
	return issue, true
}

func feature(w plan.Wall) plan.StructuralFeature {
	s := w.Segment
	x0, x1 := min(s.From.X, s.To.X), max(s.From.X, s.To.X)
	y0, y1 := min(s.From.Y, s.To.Y), max(s.From.Y, s.To.Y)
	return plan.StructuralFeature{
		ID:     w.ID,
		Kind:   plan.FeatureLoadBearingWall,
		Bounds: geom.R(x0, y0, x1-x0+1, y1-y0+1),
		Serves: append([]int{w.Floor}, w.SupportedFloors...),
	}
}
