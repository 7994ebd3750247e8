// Package hallway joins packed rooms with a main corridor and short
// connectors, and cuts the doorways between them.
package hallway

import (
	"math"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/grid"
	"github.com/lawnchairsociety/hearthplan/internal/layout"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

const (
	// MinFloorSide is the smallest usable side that gets hallways.
	MinFloorSide = 12
	// MinRun is the shortest main hallway worth building.
	MinRun = 3
)

// Input is one packed floor.
type Input struct {
	Building  catalog.BuildingType
	Class     catalog.SocialClass
	Footprint plan.Footprint
	Rooms     []plan.Room
	Seed      int64
}

// Result holds the floor's hallways and its rooms with doorways added.
type Result struct {
	Hallways []plan.Hallway
	Rooms    []plan.Room
}

// Connect builds the hallways of one floor. Floors with two rooms or fewer,
// or a usable side under MinFloorSide, get none.
func Connect(in Input) Result {
	rooms := make([]plan.Room, len(in.Rooms))
	for i, r := range in.Rooms {
		rooms[i] = r.Clone()
	}
	res := Result{Rooms: rooms}
	usable := in.Footprint.Usable
	if len(rooms) <= 2 || usable.W < MinFloorSide || usable.H < MinFloorSide {
		return res
	}

	tmpl := catalog.SelectHallway(catalog.Filter{Class: in.Class, Building: in.Building})
	level := in.Footprint.Level
	occ := grid.New(usable)
	for _, r := range rooms {
		occ.Mark(r.Bounds)
	}

	band, connects, ok := mainBand(occ, rooms, tmpl.Width, usable.W > usable.H)
	if !ok {
		logger.Debug("no main hallway", "level", level, "rooms", len(rooms))
		return res
	}
	occ.Mark(band)

	kind := "corridor"
	if level == 0 && in.Building == catalog.HouseLarge && in.Class == catalog.Noble {
		kind = "entrance_hall"
	}
	main := plan.Hallway{
		ID:       layout.RoomID("hallway_main", level),
		Kind:     kind,
		Template: tmpl.ID,
		Floor:    level,
		Bounds:   band,
		Tiles:    floorTiles(band, tmpl.Floor),
		Features: features(band, tmpl, rng.New(in.Seed).Sub(300)),
	}

	connected := make(map[string]bool)
	for _, i := range connects {
		adj, _ := geom.Adjacent(rooms[i].Bounds, band)
		if !AddDoorway(&rooms[i], adj) {
			logger.Debug("no doorway to main hallway", "room", rooms[i].ID, "level", level)
			continue
		}
		main.Connects = append(main.Connects, rooms[i].ID)
		connected[rooms[i].ID] = true
	}
	res.Hallways = append(res.Hallways, main)

	for i := range rooms {
		if connected[rooms[i].ID] {
			continue
		}
		rect, ok := connector(occ, rooms[i].Bounds, band, tmpl.Width)
		if !ok {
			logger.Debug("room left without a hallway", "room", rooms[i].ID, "level", level)
			continue
		}
		adj, _ := geom.Adjacent(rooms[i].Bounds, rect)
		if !AddDoorway(&rooms[i], adj) {
			logger.Debug("no doorway to connector", "room", rooms[i].ID, "level", level)
			continue
		}
		occ.Mark(rect)
		res.Hallways = append(res.Hallways, plan.Hallway{
			ID:       "connector_" + rooms[i].ID,
			Kind:     "connector",
			Template: tmpl.ID,
			Floor:    level,
			Bounds:   rect,
			Connects: []string{rooms[i].ID},
			Tiles:    floorTiles(rect, tmpl.Floor),
		})
	}
	return res
}

// mainBand finds the main hallway rectangle and the indexes of the rooms it
// connects. The band starts at the rounded average room center and moves
// outward until a placement connects at least two rooms.
func mainBand(occ *grid.Occupancy, rooms []plan.Room, width int, horizontal bool) (geom.Rect, []int, bool) {
	u := occ.Bounds()
	var sum float64
	for _, r := range rooms {
		c := r.Bounds.Center()
		if horizontal {
			sum += float64(c.Y)
		} else {
			sum += float64(c.X)
		}
	}
	start := int(math.Round(sum/float64(len(rooms)))) - width/2

	lo, hi := u.Y+1, u.MaxY()-width-1
	if !horizontal {
		lo, hi = u.X+1, u.MaxX()-width-1
	}

	for _, pos := range outward(start, lo, hi) {
		band, ok := freeRun(occ, pos, width, horizontal)
		if !ok {
			continue
		}
		if c := connectable(rooms, band); len(c) >= 2 {
			return band, c, true
		}
	}
	return geom.Rect{}, nil, false
}

// freeRun trims a full-length band at pos to its longest stretch of free
// cells.
func freeRun(occ *grid.Occupancy, pos, width int, horizontal bool) (geom.Rect, bool) {
	u := occ.Bounds()
	length, first := u.W, u.X
	if !horizontal {
		length, first = u.H, u.Y
	}
	cell := func(i int) geom.Rect {
		if horizontal {
			return geom.R(first+i, pos, 1, width)
		}
		return geom.R(pos, first+i, width, 1)
	}

	bestStart, bestLen, runStart := 0, 0, -1
	for i := 0; i <= length; i++ {
		if i < length && occ.Fits(cell(i)) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 && i-runStart > bestLen {
			bestStart, bestLen = runStart, i-runStart
		}
		runStart = -1
	}
	if bestLen < MinRun {
		return geom.Rect{}, false
	}
	if horizontal {
		return geom.R(first+bestStart, pos, bestLen, width), true
	}
	return geom.R(pos, first+bestStart, width, bestLen), true
}

// connectable returns the rooms sharing an edge with band that has room for
// a door away from the room's corners.
func connectable(rooms []plan.Room, band geom.Rect) []int {
	var out []int
	for i, r := range rooms {
		adj, ok := geom.Adjacent(r.Bounds, band)
		if !ok {
			continue
		}
		if _, ok := doorRange(r.Bounds, adj); ok {
			out = append(out, i)
		}
	}
	return out
}

// doorRange clips the shared run to the tiles that are not room corners.
func doorRange(r geom.Rect, adj geom.Adjacency) (geom.Adjacency, bool) {
	lo, hi := r.X+1, r.MaxX()-2
	if adj.Side == geom.East || adj.Side == geom.West {
		lo, hi = r.Y+1, r.MaxY()-2
	}
	adj.Lo, adj.Hi = max(adj.Lo, lo), min(adj.Hi, hi)
	return adj, adj.Lo <= adj.Hi
}

// AddDoorway makes sure room has a door on the wall it shares with a
// hallway and reports whether it does. A door already on that wall is
// kept; otherwise one is cut at the middle of the shared run, moved a tile
// aside when a window or another door is in the way.
func AddDoorway(room *plan.Room, adj geom.Adjacency) bool {
	clip, ok := doorRange(room.Bounds, adj)
	if !ok {
		return false
	}
	edge := clip.Edge(room.Bounds)
	for _, d := range room.Doors {
		if onSegment(edge, d.Point()) {
			return true
		}
	}

	// The run is along x for north and south walls, along y for east and west.
	alongY := adj.Side == geom.East || adj.Side == geom.West
	step := geom.Pt(1, 0)
	if alongY {
		step = geom.Pt(0, 1)
	}
	mid := edge.Mid()
	for _, k := range []int{0, 1, -1} {
		p := geom.Pt(mid.X+k*step.X, mid.Y+k*step.Y)
		v := p.X
		if alongY {
			v = p.Y
		}
		if v < clip.Lo || v > clip.Hi || room.HasWindowAt(p) || room.HasDoorNear(p, 1) {
			continue
		}
		room.Doors = append(room.Doors, plan.Opening{X: p.X, Y: p.Y, Facing: adj.Side})
		return true
	}
	return false
}

func onSegment(s geom.Segment, p geom.Point) bool {
	for _, q := range s.Points() {
		if q == p {
			return true
		}
	}
	return false
}

// connector finds a straight corridor from room to the main band across
// free cells, trying the axis with the larger center distance first.
func connector(occ *grid.Occupancy, room, band geom.Rect, width int) (geom.Rect, bool) {
	rc, bc := room.Center(), band.Center()
	dx, dy := abs(rc.X-bc.X), abs(rc.Y-bc.Y)
	order := []bool{true, false} // vertical travel first
	if dx > dy {
		order = []bool{false, true}
	}
	for w := width; w >= 1; w-- {
		for _, vertical := range order {
			if r, ok := straightGap(occ, room, band, w, vertical); ok {
				return r, true
			}
		}
	}
	return geom.Rect{}, false
}

func straightGap(occ *grid.Occupancy, room, band geom.Rect, w int, vertical bool) (geom.Rect, bool) {
	var from, to, lo, hi, center int
	if vertical {
		switch {
		case room.MaxY() < band.Y:
			from, to = room.MaxY(), band.Y
		case band.MaxY() < room.Y:
			from, to = band.MaxY(), room.Y
		default:
			return geom.Rect{}, false
		}
		lo, hi = max(room.X+1, band.X), min(room.MaxX()-1, band.MaxX())-w
		center = room.X + room.W/2 - w/2
	} else {
		switch {
		case room.MaxX() < band.X:
			from, to = room.MaxX(), band.X
		case band.MaxX() < room.X:
			from, to = band.MaxX(), room.X
		default:
			return geom.Rect{}, false
		}
		lo, hi = max(room.Y+1, band.Y), min(room.MaxY()-1, band.MaxY())-w
		center = room.Y + room.H/2 - w/2
	}
	if hi < lo {
		return geom.Rect{}, false
	}
	for _, c := range outward(center, lo, hi) {
		r := geom.R(c, from, w, to-from)
		if !vertical {
			r = geom.R(from, c, to-from, w)
		}
		if occ.Fits(r) {
			return r, true
		}
	}
	return geom.Rect{}, false
}

// outward lists lo..hi starting at start (clamped) and alternating
// one step further on each side.
func outward(start, lo, hi int) []int {
	if hi < lo {
		return nil
	}
	start = max(lo, min(hi, start))
	out := []int{start}
	for d := 1; len(out) < hi-lo+1; d++ {
		if start+d <= hi {
			out = append(out, start+d)
		}
		if start-d >= lo {
			out = append(out, start-d)
		}
	}
	return out
}

func floorTiles(r geom.Rect, m catalog.Material) []plan.Tile {
	tiles := make([]plan.Tile, 0, r.Area())
	for _, p := range r.Points() {
		tiles = append(tiles, plan.Tile{X: p.X, Y: p.Y, Kind: plan.TileFloor, Material: m})
	}
	return tiles
}

// features decorates the main hallway at each template feature's spacing.
func features(band geom.Rect, tmpl catalog.HallwayTemplate, s rng.Stream) []plan.HallwayFeature {
	horizontal := band.W >= band.H
	length := band.W
	if !horizontal {
		length = band.H
	}
	var out []plan.HallwayFeature
	draw := 0
	for _, f := range tmpl.Features {
		for i := f.Spacing; i < length; i += f.Spacing {
			draw++
			if !s.Chance(draw, f.Chance) {
				continue
			}
			p := geom.Pt(band.X+i, band.Y)
			if !horizontal {
				p = geom.Pt(band.X, band.Y+i)
			}
			out = append(out, plan.HallwayFeature{Kind: f.Kind, X: p.X, Y: p.Y})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
