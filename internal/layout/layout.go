// Package layout packs a floor's room program into its usable area.
package layout

import (
	"fmt"
	"sort"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/grid"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

// Input describes one floor to pack.
type Input struct {
	Building     catalog.BuildingType
	Class        catalog.SocialClass
	Footprint    plan.Footprint
	WallMaterial catalog.Material
	// Seed is the floor seed; draw n picks among tied positions for the
	// n-th placed room.
	Seed int64
	// Templates overrides the archetype's program for the level when set.
	Templates []catalog.RoomTemplate
}

// Result is the packed floor.
type Result struct {
	Rooms    []plan.Room
	Fallback bool
	Issues   []plan.Issue
}

// Pack places every template it can, required ones first. A required room
// that cannot be placed at any size replaces the whole floor with the
// level's single-room fallback.
func Pack(in Input) Result {
	level := in.Footprint.Level
	usable := in.Footprint.Usable
	templates := in.Templates
	if templates == nil {
		templates = catalog.RoomProgram(in.Building, level)
	}
	templates = Order(templates)

	occ := grid.New(usable)
	s := rng.New(in.Seed)
	var rooms []plan.Room
	required, placedRequired := 0, 0

	for _, t := range templates {
		if t.Required {
			required++
		}
		rect, ok := place(occ, t, s, len(rooms))
		if !ok {
			if t.Required {
				logger.Debug("required room did not fit", "room", t.ID, "level", level, "usable", usable)
			} else {
				logger.Debug("optional room dropped", "room", t.ID, "level", level)
			}
			continue
		}
		room, err := buildRoom(t, rect, level, in.Class, in.WallMaterial)
		if err != nil {
			continue
		}
		occ.Mark(rect)
		rooms = append(rooms, room)
		if t.Required {
			placedRequired++
		}
	}

	if placedRequired == required {
		return Result{Rooms: rooms}
	}
	return fallback(in, required-placedRequired)
}

// Order sorts templates required first, each group by ascending priority.
func Order(templates []catalog.RoomTemplate) []catalog.RoomTemplate {
	out := make([]catalog.RoomTemplate, len(templates))
	copy(out, templates)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Required != out[j].Required {
			return out[i].Required
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}

// CandidateSizes lists the sizes tried for a template inside bounds, in
// order: preferred, reduced width, reduced height, minimum.
func CandidateSizes(t catalog.RoomTemplate, bounds geom.Size) []geom.Size {
	minW, minH := max(3, t.Min.W), max(3, t.Min.H)
	pw := min(max(t.Preferred.W, minW), max(t.Max.W, minW), bounds.W)
	ph := min(max(t.Preferred.H, minH), max(t.Max.H, minH), bounds.H)

	raw := []geom.Size{
		{W: pw, H: ph},
		{W: max(minW, pw*4/5), H: ph},
		{W: pw, H: max(minH, ph*4/5)},
		{W: minW, H: minH},
	}
	var out []geom.Size
	for _, sz := range raw {
		if sz.W < minW || sz.H < minH || sz.W > bounds.W || sz.H > bounds.H {
			continue
		}
		dup := false
		for _, o := range out {
			if o == sz {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, sz)
		}
	}
	return out
}

// Score rates a candidate rectangle inside bounds. Edge-aligned rectangles
// score +2 per axis, and the exact top-left corner gets +3 more.
func Score(r, bounds geom.Rect) int {
	score := 0
	if r.X == bounds.X || r.MaxX() == bounds.MaxX() {
		score += 2
	}
	if r.Y == bounds.Y || r.MaxY() == bounds.MaxY() {
		score += 2
	}
	if r.X == bounds.X && r.Y == bounds.Y {
		score += 3
	}
	return score
}

func place(occ *grid.Occupancy, t catalog.RoomTemplate, s rng.Stream, placed int) (geom.Rect, bool) {
	bounds := occ.Bounds()
	for _, size := range CandidateSizes(t, bounds.Size()) {
		positions := occ.Positions(size.W, size.H)
		if len(positions) == 0 {
			continue
		}
		best, bestScore := []geom.Rect(nil), -1
		for _, p := range positions {
			r := geom.R(p.X, p.Y, size.W, size.H)
			switch sc := Score(r, bounds); {
			case sc > bestScore:
				best, bestScore = []geom.Rect{r}, sc
			case sc == bestScore:
				best = append(best, r)
			}
		}
		return best[s.Intn(placed, len(best))], true
	}
	return geom.Rect{}, false
}

// RoomID returns the id of a template's room on a level.
func RoomID(base string, level int) string {
	switch {
	case level > 0:
		return fmt.Sprintf("%s_l%d", base, level)
	case level < 0:
		return fmt.Sprintf("%s_b%d", base, -level)
	}
	return base
}

func buildRoom(t catalog.RoomTemplate, r geom.Rect, level int, class catalog.SocialClass, wall catalog.Material) (plan.Room, error) {
	room, err := plan.NewRoom(RoomID(t.ID, level), t.Name, t.Function, r, level, wall, t.FloorMaterial(class))
	if err != nil {
		return plan.Room{}, err
	}
	addOpenings(&room)
	return room, nil
}

// addOpenings gives a new room its front door on the south wall and a north
// window. Storage rooms, cellars and basements stay windowless.
func addOpenings(room *plan.Room) {
	r := room.Bounds
	room.Doors = []plan.Opening{{X: r.X + r.W/2, Y: r.MaxY() - 1, Facing: geom.South}}
	if room.Floor < 0 || room.Function == catalog.Storage || room.Function == catalog.Cellar {
		return
	}
	room.Windows = []plan.Opening{{X: r.X + 1, Y: r.Y, Facing: geom.North}}
	if room.Function == catalog.ShopFloor && r.W >= 5 {
		room.Windows = append(room.Windows, plan.Opening{X: r.MaxX() - 2, Y: r.Y, Facing: geom.North})
	}
}

func fallback(in Input, missing int) Result {
	level := in.Footprint.Level
	fn, name := catalog.LevelFallback(in.Building, level)
	issue := plan.Warn("ROOM_FALLBACK",
		fmt.Sprintf("floor %d: %d required rooms did not fit, using a single %s", level, missing, fn))
	logger.Debug("using fallback layout", "level", level, "function", fn.String())

	room, err := plan.NewRoom(RoomID("fallback_room", level), name, fn, in.Footprint.Usable, level,
		in.WallMaterial, catalog.DefaultFloorMaterial(fn, in.Class))
	if err != nil {
		return Result{Fallback: true, Issues: []plan.Issue{issue,
			plan.Warn("FLOOR_UNUSABLE", fmt.Sprintf("floor %d: %v", level, err))}}
	}
	addOpenings(&room)
	return Result{Rooms: []plan.Room{room}, Fallback: true, Issues: []plan.Issue{issue}}
}
