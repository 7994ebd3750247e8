package furnish

import (
	"math"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// Atmospheres a room's light can give it.
const (
	Bright    = "bright"
	Cozy      = "cozy"
	Welcoming = "welcoming"
	Dark      = "dark"
	Dim       = "dim"
	Eerie     = "eerie"
)

// Daylight scales window light by season.
func Daylight(s catalog.Season) float64 {
	switch s {
	case catalog.Summer:
		return 1.0
	case catalog.Winter:
		return 0.3
	}
	return 0.8
}

type emitter struct {
	light plan.Light
	warm  bool
}

// Light computes the room's light sources and a per-tile light map over its
// interior. Light travels in straight lines and is stopped by stairs,
// chimneys and pillars.
func Light(r plan.Room, in Input) plan.Room {
	out := r.Clone()
	interior := out.Interior()
	var ems []emitter
	add := func(id string, ls catalog.LightSource, p geom.Point) {
		ems = append(ems, emitter{
			light: plan.Light{ID: id, Source: ls.ID, X: p.X, Y: p.Y, Radius: ls.Radius, Intensity: round(ls.Intensity)},
			warm:  ls.Warm,
		})
	}

	if daylit(out.Function) && in.Class != catalog.Poor && len(out.Windows) > 0 {
		w, _ := catalog.GetLightSource("window_large")
		w.Intensity *= Daylight(in.Season)
		add(out.ID+"_window", w, inside(out.Windows[0]))
	}
	add(out.ID+"_primary", catalog.PrimaryLight(in.Class, out.Function), interior.Center())
	if ls, ok := catalog.SecondaryLight(in.Class, out.Bounds.Area()); ok {
		add(out.ID+"_secondary", ls, geom.Pt(out.Bounds.MaxX()-2, out.Bounds.MaxY()-2))
	}
	for _, f := range out.Fixtures {
		t, ok := catalog.GetFixture(f.Asset)
		if !ok || t.Light == "" {
			continue
		}
		if ls, ok := catalog.GetLightSource(t.Light); ok {
			add(f.ID+"_light", ls, geom.Pt(f.X, f.Y))
		}
	}
	for _, d := range out.Decorations {
		t, ok := catalog.GetDecoration(d.Asset)
		if !ok {
			continue
		}
		if ls, ok := catalog.DecorationLight(t); ok {
			add(d.ID+"_light", ls, geom.Pt(d.X, d.Y))
		}
	}

	lights := make([]plan.Light, len(ems))
	sum, warm := 0.0, false
	for i, e := range ems {
		lights[i] = e.light
		sum += e.light.Intensity
		warm = warm || e.warm
	}
	out.Lighting = &plan.Lighting{
		Sources:    lights,
		Map:        LightMap(interior, lights, obstacles(out, in)),
		Ambient:    round(math.Min(1, sum)),
		Atmosphere: atmosphere(out.Function, in.Class, sum, warm),
	}
	return out
}

func daylit(f catalog.RoomFunction) bool {
	switch f {
	case catalog.Living, catalog.CommonRoom, catalog.Bedroom, catalog.Study, catalog.ShopFloor:
		return true
	}
	return false
}

// obstacles lists the tiles light cannot pass: the room's walls and any
// blocking structure.
func obstacles(r plan.Room, in Input) map[geom.Point]bool {
	out := make(map[geom.Point]bool)
	for _, t := range r.Tiles {
		if t.Kind == plan.TileWall {
			out[geom.Pt(t.X, t.Y)] = true
		}
	}
	for _, sf := range in.Features {
		if !blocking(sf) {
			continue
		}
		for _, p := range sf.Bounds.Intersect(r.Bounds).Points() {
			out[p] = true
		}
	}
	return out
}

// LightMap sums each source's falloff intensity*(1-d/radius) over the
// tiles of interior it can see, capping every tile at 1.
func LightMap(interior geom.Rect, lights []plan.Light, blocked map[geom.Point]bool) [][]float64 {
	m := make([][]float64, interior.H)
	for i := range m {
		m[i] = make([]float64, interior.W)
	}
	for _, l := range lights {
		src := geom.Pt(l.X, l.Y)
		for _, p := range interior.Points() {
			dx, dy := float64(p.X-src.X), float64(p.Y-src.Y)
			d := math.Sqrt(dx*dx + dy*dy)
			if l.Radius <= 0 || d > float64(l.Radius) || !visible(src, p, blocked) {
				continue
			}
			v := &m[p.Y-interior.Y][p.X-interior.X]
			*v = math.Min(1, *v+l.Intensity*(1-d/float64(l.Radius)))
		}
	}
	for _, row := range m {
		for i := range row {
			row[i] = round(row[i])
		}
	}
	return m
}

// visible reports whether the Bresenham line from a to b crosses no
// blocked tile between its ends.
func visible(a, b geom.Point, blocked map[geom.Point]bool) bool {
	line := geom.Line(a, b)
	if len(line) <= 2 {
		return true
	}
	for _, p := range line[1 : len(line)-1] {
		if blocked[p] {
			return false
		}
	}
	return true
}

func atmosphere(f catalog.RoomFunction, c catalog.SocialClass, level float64, warm bool) string {
	switch {
	case level > 1.5 && c == catalog.Noble:
		return Bright
	case warm && f.IsSleeping():
		return Cozy
	case warm && f.IsGathering():
		return Welcoming
	case level < 0.3:
		return Dark
	case level < 0.6:
		return Dim
	case f == catalog.Storage || f == catalog.Cellar:
		return Eerie
	}
	return Bright
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
