package furnish

import (
	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/grid"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

// MaxFixtures bounds the fixtures of one room.
const MaxFixtures = 3

// Fixtures places built-in fixtures: catalog fixtures by priority, one of
// each kind, then any missing essentials, never more than MaxFixtures in
// all. Vented fixtures
// get a chimney in the wall behind them.
func Fixtures(r plan.Room, in Input) plan.Room {
	out := r.Clone()
	g := occupancy(out, in)
	st := in.stream(fixtureStream)
	draw := 0
	try := func(t catalog.FixtureTemplate) {
		draw++
		f, ok := placeFixture(g, t, st, draw)
		if !ok {
			logger.Debug("fixture skipped", "room", out.ID, "fixture", t.ID)
			return
		}
		f.ID = itemID(out.ID, t.ID, len(out.Fixtures))
		g.Mark(f.Bounds())
		if t.NeedsChimney {
			f.Vented = true
			p := behind(f.Bounds(), f.WallSide)
			out.Chimneys = append(out.Chimneys, plan.Chimney{X: p.X, Y: p.Y, Material: catalog.Stone})
		}
		out.Fixtures = append(out.Fixtures, f)
	}

	for _, t := range catalog.Fixtures(in.filter(out)) {
		if len(out.Fixtures) >= MaxFixtures {
			break
		}
		if !hasFixtureKind(out.Fixtures, t.Kind) {
			try(t)
		}
	}
	for _, id := range essentials(out.Function, in.Class) {
		if len(out.Fixtures) >= MaxFixtures {
			break
		}
		t, ok := catalog.GetFixture(id)
		if !ok || hasFixtureKind(out.Fixtures, t.Kind) {
			continue
		}
		try(t)
	}
	return out
}

// essentials lists fixtures a room should have even when the catalog
// filter did not offer them.
func essentials(f catalog.RoomFunction, c catalog.SocialClass) []string {
	var out []string
	if f == catalog.Living || f == catalog.CommonRoom {
		if c == catalog.Poor {
			out = append(out, "hearth_small")
		} else {
			out = append(out, "hearth_large")
		}
	}
	if f == catalog.Bedroom && (c == catalog.Wealthy || c == catalog.Noble) {
		out = append(out, "washbasin")
	}
	return out
}

func hasFixtureKind(fs []plan.Fixture, kind string) bool {
	for _, f := range fs {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

type wallSpot struct {
	rect geom.Rect
	side geom.Direction
}

// placeFixture finds a spot for a fixture. Wall fixtures are turned so
// their long side runs along the wall they stand against.
func placeFixture(g *grid.Occupancy, t catalog.FixtureTemplate, st rng.Stream, draw int) (plan.Fixture, bool) {
	interior := g.Bounds()
	var cands []wallSpot
	switch t.Placement {
	case catalog.Wall:
		sides := geom.AllDirections()
		if t.HasSide {
			sides = []geom.Direction{t.Side}
		}
		for _, side := range sides {
			s := t.Size
			if side == geom.East || side == geom.West {
				s = geom.Size{W: t.Size.H, H: t.Size.W}
			}
			for _, r := range spots(g, s, catalog.Wall) {
				if against(r, interior, side) {
					cands = append(cands, wallSpot{r, side})
				}
			}
		}
	default:
		r, ok := pick(g, t.Size, t.Placement, st, draw)
		if !ok {
			return plan.Fixture{}, false
		}
		side := geom.North
		if ts := touching(r, interior); len(ts) > 0 {
			side = ts[0]
		}
		cands = []wallSpot{{r, side}}
	}
	if len(cands) == 0 {
		return plan.Fixture{}, false
	}
	c := cands[st.Intn(draw, len(cands))]
	return plan.Fixture{
		Item: plan.Item{
			Asset:     t.ID,
			X:         c.rect.X,
			Y:         c.rect.Y,
			Width:     c.rect.W,
			Height:    c.rect.H,
			Rotation:  c.side.Opposite().Degrees(),
			Placement: t.Placement,
		},
		Kind:     t.Kind,
		WallSide: c.side,
	}, true
}

func against(r, interior geom.Rect, side geom.Direction) bool {
	for _, d := range touching(r, interior) {
		if d == side {
			return true
		}
	}
	return false
}

// behind returns the wall tile at the back of a fixture standing against
// side.
func behind(r geom.Rect, side geom.Direction) geom.Point {
	switch side {
	case geom.North:
		return geom.Pt(r.X, r.Y-1)
	case geom.East:
		return geom.Pt(r.MaxX(), r.Y)
	case geom.South:
		return geom.Pt(r.X, r.MaxY())
	default:
		return geom.Pt(r.X-1, r.Y)
	}
}
