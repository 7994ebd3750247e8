// Package stairs turns the stairwell shaft reserved by the structural pass
// into a concrete staircase with access points on every floor it serves.
package stairs

import (
	"fmt"
	"slices"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/structure"
)

// MainID is the id of the building's staircase.
const MainID = "staircase_main"

// Access point directions.
const (
	Up   = "up"
	Down = "down"
)

// Input is the building's floors after layout and hallways.
type Input struct {
	Building catalog.BuildingType
	Class    catalog.SocialClass
	Floors   []plan.Floor
}

// Result holds the staircases and the floors with stair access attached to
// their rooms and the shaft feature resized to the staircase.
type Result struct {
	Staircases []plan.Staircase
	Floors     []plan.Floor
	Issues     []plan.Issue
}

// Place resolves the stair shaft. Buildings without one get no staircase.
func Place(in Input) Result {
	floors := make([]plan.Floor, len(in.Floors))
	for i, f := range in.Floors {
		floors[i] = f.Clone()
	}
	res := Result{Floors: floors}

	shaft, serves, ok := findShaft(floors)
	if !ok {
		return res
	}
	served := make(map[int]*plan.Floor)
	for i := range floors {
		if slices.Contains(serves, floors[i].Level) {
			served[floors[i].Level] = &floors[i]
		}
	}

	tmpl := catalog.SelectStair(catalog.Filter{Class: in.Class, Building: in.Building}, len(serves))
	bounds := resolveBounds(shaft, tmpl, serves, served)
	sc := plan.Staircase{
		ID:        MainID,
		Template:  tmpl.ID,
		Style:     tmpl.Style,
		Material:  tmpl.Material,
		Bounds:    bounds,
		Clearance: tmpl.Clearance,
		Serves:    serves,
		Access:    AccessPoints(MainID, bounds, serves),
	}
	res.Issues = append(res.Issues, Validate(sc, served)...)

	for _, f := range served {
		resizeShaft(f, bounds)
	}
	for _, a := range sc.Access {
		if !attach(served[a.Level], a) {
			logger.Debug("stair access outside any room", "level", a.Level, "x", a.X, "y", a.Y)
		}
	}
	res.Staircases = append(res.Staircases, sc)
	logger.Debug("staircase placed", "template", tmpl.ID, "bounds", bounds, "serves", serves)
	return res
}

func findShaft(floors []plan.Floor) (geom.Rect, []int, bool) {
	for _, f := range floors {
		for _, sf := range f.Footprint.FeaturesOf(plan.FeatureStaircase) {
			if sf.ID == structure.StairShaftID && len(sf.Serves) > 1 {
				serves := slices.Clone(sf.Serves)
				slices.Sort(serves)
				return sf.Bounds, serves, true
			}
		}
	}
	return geom.Rect{}, nil, false
}

// resolveBounds picks the largest template size that fits inside every
// served floor's usable area when anchored on the shaft without running into
// a chimney or pillar.
func resolveBounds(shaft geom.Rect, tmpl catalog.StairTemplate, serves []int, served map[int]*plan.Floor) geom.Rect {
	shared := served[serves[0]].Footprint.Usable
	for _, l := range serves[1:] {
		shared = shared.Intersect(served[l].Footprint.Usable)
	}
	for _, s := range []geom.Size{tmpl.Preferred, tmpl.Min, structure.ShaftSize} {
		r := geom.R(shaft.X, shaft.Y, s.W, s.H).Clamp(shared)
		if shared.ContainsRect(r) && !blocked(r, serves, served) {
			return r
		}
	}
	return shaft
}

func blocked(r geom.Rect, serves []int, served map[int]*plan.Floor) bool {
	for _, l := range serves {
		for _, sf := range served[l].Footprint.Features {
			if sf.Kind != plan.FeatureStaircase && sf.Bounds.Intersects(r) {
				return true
			}
		}
	}
	return false
}

// AccessPoints lists an up point at the foot of the stair on every served
// floor but the highest and a down point at its head on every served floor
// but the lowest. serves must be sorted.
func AccessPoints(id string, r geom.Rect, serves []int) []plan.StairAccess {
	var out []plan.StairAccess
	for i, l := range serves {
		if i < len(serves)-1 {
			out = append(out, plan.StairAccess{
				StaircaseID: id, Level: l, X: r.X, Y: r.MaxY() - 1,
				Direction: Up, TargetLevel: serves[i+1],
			})
		}
		if i > 0 {
			out = append(out, plan.StairAccess{
				StaircaseID: id, Level: l, X: r.X, Y: r.Y,
				Direction: Down, TargetLevel: serves[i-1],
			})
		}
	}
	return out
}

// Validate checks that the staircase lies inside every floor it serves and
// that its clearance margin is free of other structure on at least one.
func Validate(sc plan.Staircase, served map[int]*plan.Floor) []plan.Issue {
	var issues []plan.Issue
	landing := false
	for _, l := range sc.Serves {
		f, ok := served[l]
		if !ok {
			issues = append(issues, plan.Warn("STAIR_OUTSIDE_FLOOR",
				fmt.Sprintf("%s serves missing floor %d", sc.ID, l)))
			continue
		}
		if !f.Footprint.Usable.ContainsRect(sc.Bounds) {
			issues = append(issues, plan.Warn("STAIR_OUTSIDE_FLOOR",
				fmt.Sprintf("%s at %v leaves the usable area of floor %d", sc.ID, sc.Bounds, l)))
		}
		if clearanceFree(sc, f.Footprint) {
			landing = true
		}
	}
	if !landing {
		issues = append(issues, plan.Warn("STAIR_CLEARANCE_BLOCKED",
			fmt.Sprintf("%s has no clear landing on any served floor", sc.ID)))
	}
	return issues
}

func clearanceFree(sc plan.Staircase, fp plan.Footprint) bool {
	zone := sc.Bounds.Inset(-sc.Clearance).Intersect(fp.Usable)
	for _, sf := range fp.Features {
		if sf.Kind == plan.FeatureStaircase {
			continue
		}
		if sf.Bounds.Intersects(zone) {
			return false
		}
	}
	return true
}

func resizeShaft(f *plan.Floor, r geom.Rect) {
	for i := range f.Footprint.Features {
		if f.Footprint.Features[i].ID == structure.StairShaftID {
			f.Footprint.Features[i].Bounds = r
		}
	}
}

// attach records an access point on the room containing it.
func attach(f *plan.Floor, a plan.StairAccess) bool {
	p := geom.Pt(a.X, a.Y)
	for i := range f.Rooms {
		if f.Rooms[i].Bounds.Contains(p) {
			f.Rooms[i].Stairs = append(f.Rooms[i].Stairs, a)
			return true
		}
	}
	return false
}
