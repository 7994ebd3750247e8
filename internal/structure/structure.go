// Package structure derives the per-floor footprints of a building and the
// structural features that run through them.
package structure

import (
	"fmt"
	"math"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

const (
	// PillarSpacing is the grid step between support pillars.
	PillarSpacing = 6
	// PillarAreaThreshold is the usable area above which a floor needs pillars.
	PillarAreaThreshold = 64

	StairShaftID = "stair_shaft"
	ChimneyID    = "chimney_main"
)

// ShaftSize is the footprint reserved for the stairwell on every floor.
var ShaftSize = geom.Size{W: 2, H: 3}

// Input describes the building whose floors are being stacked.
type Input struct {
	Building catalog.BuildingType
	// Ground is the outer rectangle of the ground floor.
	Ground   geom.Rect
	Stories  int // floors at or above ground, at least 1
	Basement bool
	Seed     int64
}

// Result holds the footprints, lowest level first, and any issues found.
type Result struct {
	Footprints []plan.Footprint
	Issues     []plan.Issue
}

// Calculate builds the footprints for every floor and places the stairwell,
// chimney and support pillars.
func Calculate(in Input) Result {
	arch, ok := catalog.GetArchetype(in.Building)
	if !ok {
		return Result{Issues: []plan.Issue{plan.Warn("UNKNOWN_ARCHETYPE", fmt.Sprintf("no archetype %s", in.Building))}}
	}
	c := arch.Structure
	s := rng.New(in.Seed).Sub(100)
	stories := max(1, in.Stories)

	var fps []plan.Footprint
	if in.Basement {
		fps = append(fps, plan.Footprint{Level: -1, Outer: in.Ground.Inset(-1), Usable: in.Ground})
	}

	ground := plan.Footprint{Level: 0, Outer: in.Ground, Usable: in.Ground.Inset(1)}
	fps = append(fps, ground)

	prev := ground.Usable
	for l := 1; l < stories; l++ {
		shrink := math.Pow(1-c.Reduction, float64(l))
		w := max(c.MinUsable.W, int(math.Floor(float64(ground.Usable.W)*shrink)))
		h := max(c.MinUsable.H, int(math.Floor(float64(ground.Usable.H)*shrink)))
		w, h = min(w, prev.W), min(h, prev.H)

		x := prev.X + (prev.W-w)/2
		y := prev.Y + (prev.H-h)/2
		if o := c.MaxOverhang; o > 0 {
			x += s.Range(2*l, -o, o)
			y += s.Range(2*l+1, -o, o)
			x = max(prev.X-o, min(x, prev.MaxX()+o-w))
			y = max(prev.Y-o, min(y, prev.MaxY()+o-h))
		}
		usable := geom.R(x, y, w, h)
		fps = append(fps, plan.Footprint{Level: l, Outer: usable.Inset(-1), Usable: usable})
		prev = usable
	}

	if len(fps) > 1 {
		placeStairShaft(fps, s)
	}
	if arch.HasChimney {
		placeChimney(fps, ground.Usable)
	}
	if c.NeedsSupport {
		placePillars(fps)
	}

	return Result{Footprints: fps, Issues: Validate(in.Building, fps)}
}

// placeStairShaft puts the shaft at one seed-chosen corner of the area shared
// by every served floor, a tile in from the walls when there is room and
// against them when there is not. The top floor is dropped from service
// until the shaft fits.
func placeStairShaft(fps []plan.Footprint, s rng.Stream) {
	corner := s.Intn(50, 4)
	for n := len(fps); n >= 2; n-- {
		shared := fps[0].Usable
		for _, fp := range fps[1:n] {
			shared = shared.Intersect(fp.Usable)
		}
		shaft, ok := shaftIn(shared, corner)
		if !ok {
			continue
		}
		serves := make([]int, 0, n)
		for _, fp := range fps[:n] {
			serves = append(serves, fp.Level)
		}
		for i := range fps[:n] {
			fps[i].Features = append(fps[i].Features, plan.StructuralFeature{
				ID:     StairShaftID,
				Kind:   plan.FeatureStaircase,
				Bounds: shaft,
				Serves: serves,
			})
		}
		if n < len(fps) {
			logger.Debug("stair shaft does not reach every floor", "served", n, "floors", len(fps))
		}
		return
	}
	logger.Debug("no room for a stair shaft", "floors", len(fps))
}

// shaftIn places the shaft in the given corner of area: 0 top-left,
// 1 top-right, 2 bottom-left, 3 bottom-right.
func shaftIn(area geom.Rect, corner int) (geom.Rect, bool) {
	for _, margin := range []int{1, 0} {
		if area.W < ShaftSize.W+2*margin || area.H < ShaftSize.H+2*margin {
			continue
		}
		x, y := area.X+margin, area.Y+margin
		if corner == 1 || corner == 3 {
			x = area.MaxX() - margin - ShaftSize.W
		}
		if corner >= 2 {
			y = area.MaxY() - margin - ShaftSize.H
		}
		return geom.R(x, y, ShaftSize.W, ShaftSize.H), true
	}
	return geom.Rect{}, false
}

// placeChimney runs a one-tile flue up from the ground floor for as long as
// each floor contains it.
func placeChimney(fps []plan.Footprint, groundUsable geom.Rect) {
	at := geom.Pt(groundUsable.X+groundUsable.W/2, groundUsable.Y+1)
	var idx []int
	ground := 0
	for i, fp := range fps {
		if fp.Level == 0 {
			ground = i
		}
	}
	if ground > 0 && fps[ground-1].Usable.Contains(at) {
		idx = append(idx, ground-1)
	}
	for i := ground; i < len(fps); i++ {
		if !fps[i].Usable.Contains(at) {
			break
		}
		idx = append(idx, i)
	}
	serves := make([]int, len(idx))
	for k, i := range idx {
		serves[k] = fps[i].Level
	}
	for _, i := range idx {
		fps[i].Features = append(fps[i].Features, plan.StructuralFeature{
			ID:     ChimneyID,
			Kind:   plan.FeatureChimney,
			Bounds: geom.R(at.X, at.Y, 1, 1),
			Serves: serves,
		})
	}
}

func placePillars(fps []plan.Footprint) {
	for i := range fps {
		fp := &fps[i]
		u := fp.Usable
		if u.Area() <= PillarAreaThreshold {
			continue
		}
		var blocked []geom.Rect
		for _, f := range fp.Features {
			blocked = append(blocked, f.Bounds.Inset(-1))
		}
		n := 0
		for y := u.Y + PillarSpacing; y < u.MaxY()-1; y += PillarSpacing {
			for x := u.X + PillarSpacing; x < u.MaxX()-1; x += PillarSpacing {
				cell := geom.R(x, y, 1, 1)
				if overlapsAny(cell, blocked) {
					continue
				}
				fp.Features = append(fp.Features, plan.StructuralFeature{
					ID:     fmt.Sprintf("pillar_%d_%d", fp.Level, n),
					Kind:   plan.FeatureSupportPillar,
					Bounds: cell,
					Serves: []int{fp.Level},
				})
				n++
			}
		}
	}
}

func overlapsAny(r geom.Rect, list []geom.Rect) bool {
	for _, o := range list {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
