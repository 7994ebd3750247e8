package building

import (
	"fmt"
	"slices"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
	"github.com/lawnchairsociety/hearthplan/internal/structure"
	"github.com/lawnchairsociety/hearthplan/internal/walls"
)

// featureDraws is the number of draws each yard feature kind consumes.
const featureDraws = 5

// maxFeatureSide caps the random size of a yard feature.
const maxFeatureSide = 3

// exterior lays out the yard and the shell elements of p. Everything it
// returns is in lot coordinates.
func exterior(p plan.BuildingPlan, s rng.Stream) plan.Exterior {
	b := p.Building
	ext := plan.Exterior{}
	door, hasDoor := walls.Entrance(p.Walls)

	var taken []geom.Rect
	taken = append(taken, b)
	if hasDoor && b.MaxY() < p.Lot.H {
		x := b.X + door.X
		path := geom.R(x, b.MaxY(), min(2, p.Lot.W-x), p.Lot.H-b.MaxY())
		if !path.Empty() {
			ext.Features = append(ext.Features, plan.ExteriorFeature{ID: "path_0", Kind: "path", Bounds: path})
			taken = append(taken, path)
		}
	}

	areas := yardAreas(p.Lot, b)
	for i, kind := range catalog.ExteriorFeatureKinds {
		d := i * featureDraws
		if !s.Chance(d, catalog.ExteriorChance(kind, p.Metadata.BuildingType, p.Metadata.SocialClass)) {
			continue
		}
		r, ok := placeFeature(areas, taken, catalog.ExteriorMinSize(kind), s, d+1)
		if !ok {
			continue
		}
		taken = append(taken, r)
		ext.Features = append(ext.Features, plan.ExteriorFeature{
			ID:     fmt.Sprintf("exterior_%d", len(ext.Features)),
			Kind:   kind,
			Bounds: r,
		})
	}

	if hasDoor {
		ext.Elements = append(ext.Elements, plan.ExteriorElement{
			ID: "entrance", Kind: "entrance",
			X: b.X + door.X, Y: b.Y + door.Y, Floor: 0,
			Material: p.Materials.Wall,
		})
	}
	ext.Elements = append(ext.Elements, chimneyStacks(p)...)

	roof := catalog.RoofFor(p.Metadata.BuildingType, p.Metadata.SocialClass, p.Metadata.Climate)
	ext.Roof = plan.Roof{Type: roof.Type, Material: p.Materials.Roof, Pitch: roof.Pitch}
	if n := len(p.Floors); n > 0 {
		ext.Roof.Covers = p.Floors[n-1].Footprint.Outer.Translate(b.X, b.Y)
	}
	return ext
}

// yardAreas lists the strips of lot around the building: front (south),
// back, left and right. Empty strips are dropped.
func yardAreas(lot geom.Size, b geom.Rect) []geom.Rect {
	all := []geom.Rect{
		geom.R(0, b.MaxY(), lot.W, lot.H-b.MaxY()),
		geom.R(0, 0, lot.W, b.Y),
		geom.R(0, b.Y, b.X, b.H),
		geom.R(b.MaxX(), b.Y, lot.W-b.MaxX(), b.H),
	}
	var out []geom.Rect
	for _, a := range all {
		if !a.Empty() {
			out = append(out, a)
		}
	}
	return out
}

// placeFeature tries each yard area in order and keeps the first random
// placement that clears everything already on the lot. The draws are the
// same for every area.
func placeFeature(areas, taken []geom.Rect, minSize geom.Size, s rng.Stream, draw int) (geom.Rect, bool) {
	for _, a := range areas {
		if a.W < minSize.W || a.H < minSize.H {
			continue
		}
		w := s.Range(draw, minSize.W, max(minSize.W, min(a.W, maxFeatureSide)))
		h := s.Range(draw+1, minSize.H, max(minSize.H, min(a.H, maxFeatureSide)))
		r := geom.R(a.X+s.Range(draw+2, 0, a.W-w), a.Y+s.Range(draw+3, 0, a.H-h), w, h)
		if !slices.ContainsFunc(taken, r.Intersects) {
			return r, true
		}
	}
	return geom.Rect{}, false
}

// chimneyStacks tops every flue: the building's main chimney on the highest
// floor it serves, and each fixture chimney on its own floor.
func chimneyStacks(p plan.BuildingPlan) []plan.ExteriorElement {
	b := p.Building
	var out []plan.ExteriorElement
	seen := make(map[geom.Point]bool)
	add := func(pt geom.Point, floor int, m catalog.Material) {
		if seen[pt] {
			return
		}
		seen[pt] = true
		out = append(out, plan.ExteriorElement{
			ID:   fmt.Sprintf("chimney_stack_%d", len(out)),
			Kind: "chimney_stack",
			X:    b.X + pt.X, Y: b.Y + pt.Y,
			Floor:    floor,
			Material: m,
		})
	}
	for _, f := range p.Floors {
		for _, sf := range f.Footprint.FeaturesOf(plan.FeatureChimney) {
			if sf.ID == structure.ChimneyID && len(sf.Serves) > 0 && f.Level == slices.Max(sf.Serves) {
				add(sf.Bounds.Min(), f.Level, p.Materials.Foundation)
			}
		}
	}
	for _, f := range p.Floors {
		for _, r := range f.Rooms {
			for _, c := range r.Chimneys {
				add(geom.Pt(c.X, c.Y), f.Level, c.Material)
			}
		}
	}
	return out
}
