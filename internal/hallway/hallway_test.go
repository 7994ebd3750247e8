package hallway

import (
	"testing"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/layout"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

func room(t *testing.T, id string, r geom.Rect) plan.Room {
	t.Helper()
	rm, err := plan.NewRoom(id, id, catalog.Living, r, 0, catalog.Wood, catalog.Wood)
	if err != nil {
		t.Fatalf("NewRoom(%s) error: %v", id, err)
	}
	return rm
}

func testFloor(t *testing.T) Input {
	return Input{
		Building: catalog.HouseSmall,
		Class:    catalog.Common,
		Footprint: plan.Footprint{
			Level:  0,
			Outer:  geom.R(0, 0, 22, 16),
			Usable: geom.R(1, 1, 20, 14),
		},
		Rooms: []plan.Room{
			room(t, "a", geom.R(1, 1, 8, 5)),
			room(t, "b", geom.R(9, 1, 8, 5)),
			room(t, "c", geom.R(1, 10, 8, 5)),
		},
		Seed: 7,
	}
}

func TestConnectMainAndConnector(t *testing.T) {
	res := Connect(testFloor(t))

	if len(res.Hallways) != 2 {
		t.Fatalf("hallways = %d, want 2", len(res.Hallways))
	}
	main := res.Hallways[0]
	if main.Bounds != geom.R(1, 6, 20, 2) {
		t.Errorf("main bounds = %v, want %v", main.Bounds, geom.R(1, 6, 20, 2))
	}
	if len(main.Connects) != 2 || main.Connects[0] != "a" || main.Connects[1] != "b" {
		t.Errorf("main connects = %v, want [a b]", main.Connects)
	}
	if main.Kind != "corridor" || main.Template != "basic_corridor" {
		t.Errorf("main = %s/%s, want corridor/basic_corridor", main.Kind, main.Template)
	}
	if len(main.Tiles) != 40 {
		t.Errorf("main tiles = %d, want 40", len(main.Tiles))
	}

	conn := res.Hallways[1]
	if conn.Bounds != geom.R(4, 8, 2, 2) {
		t.Errorf("connector bounds = %v, want %v", conn.Bounds, geom.R(4, 8, 2, 2))
	}
	if len(conn.Connects) != 1 || conn.Connects[0] != "c" {
		t.Errorf("connector connects = %v, want [c]", conn.Connects)
	}

	wantDoors := map[string]plan.Opening{
		"a": {X: 4, Y: 5, Facing: geom.South},
		"b": {X: 12, Y: 5, Facing: geom.South},
		"c": {X: 4, Y: 10, Facing: geom.North},
	}
	for _, r := range res.Rooms {
		if len(r.Doors) != 1 {
			t.Errorf("room %s doors = %v, want 1", r.ID, r.Doors)
			continue
		}
		if r.Doors[0] != wantDoors[r.ID] {
			t.Errorf("room %s door = %+v, want %+v", r.ID, r.Doors[0], wantDoors[r.ID])
		}
	}
}

func TestConnectDoesNotMutateInput(t *testing.T) {
	in := testFloor(t)
	Connect(in)
	for _, r := range in.Rooms {
		if len(r.Doors) != 0 {
			t.Errorf("input room %s gained doors %v", r.ID, r.Doors)
		}
	}
}

func TestConnectHallwaysTouchTheirRooms(t *testing.T) {
	res := Connect(testFloor(t))
	byID := make(map[string]plan.Room)
	for _, r := range res.Rooms {
		byID[r.ID] = r
	}
	for _, h := range res.Hallways {
		for _, id := range h.Connects {
			if _, ok := geom.Adjacent(byID[id].Bounds, h.Bounds); !ok {
				t.Errorf("%s does not share an edge with %s", h.ID, id)
			}
		}
		for _, r := range res.Rooms {
			if r.Bounds.Intersects(h.Bounds) {
				t.Errorf("%s overlaps room %s", h.ID, r.ID)
			}
		}
	}
}

func TestConnectSkips(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
	}{
		{"two rooms", func(in *Input) { in.Rooms = in.Rooms[:2] }},
		{"narrow floor", func(in *Input) { in.Footprint.Usable = geom.R(1, 1, 20, 11) }},
		{"no free band", func(in *Input) {
			in.Rooms = []plan.Room{
				room(t, "a", geom.R(1, 1, 10, 14)),
				room(t, "b", geom.R(11, 1, 10, 7)),
				room(t, "c", geom.R(11, 8, 10, 7)),
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testFloor(t)
			tt.modify(&in)
			res := Connect(in)
			if len(res.Hallways) != 0 {
				t.Errorf("hallways = %v, want none", res.Hallways)
			}
		})
	}
}

func TestConnectNobleEntranceHall(t *testing.T) {
	in := testFloor(t)
	in.Building, in.Class = catalog.HouseLarge, catalog.Noble
	res := Connect(in)
	if len(res.Hallways) != 1 {
		t.Fatalf("hallways = %d, want 1", len(res.Hallways))
	}
	h := res.Hallways[0]
	if h.Kind != "entrance_hall" || h.Template != "grand_hallway" {
		t.Errorf("hallway = %s/%s, want entrance_hall/grand_hallway", h.Kind, h.Template)
	}
	if len(h.Connects) != 3 {
		t.Errorf("connects = %v, want 3 rooms", h.Connects)
	}
}

func TestAddDoorway(t *testing.T) {
	band := geom.R(1, 6, 20, 2)

	t.Run("existing door on the shared wall", func(t *testing.T) {
		r := room(t, "a", geom.R(1, 1, 8, 5))
		r.Doors = []plan.Opening{{X: 5, Y: 5, Facing: geom.South}}
		adj, _ := geom.Adjacent(r.Bounds, band)
		if !AddDoorway(&r, adj) {
			t.Error("AddDoorway = false, want true for a room already opening onto the hallway")
		}
		if len(r.Doors) != 1 {
			t.Errorf("doors = %v, want the existing door only", r.Doors)
		}
	})

	t.Run("door around the corner", func(t *testing.T) {
		r := room(t, "a", geom.R(3, 3, 6, 6))
		r.Doors = []plan.Opening{{X: 7, Y: 8, Facing: geom.South}}
		adj, _ := geom.Adjacent(r.Bounds, geom.R(9, 7, 2, 3))
		if AddDoorway(&r, adj) {
			t.Errorf("AddDoorway = true, want false with doors %v", r.Doors)
		}
		if len(r.Doors) != 1 {
			t.Errorf("doors = %v, want no new door next to (7,8)", r.Doors)
		}
	})

	t.Run("corner only", func(t *testing.T) {
		r := room(t, "a", geom.R(1, 1, 8, 5))
		adj := geom.Adjacency{Side: geom.South, Lo: 8, Hi: 8}
		if AddDoorway(&r, adj) {
			t.Errorf("AddDoorway cut a door in a corner: %v", r.Doors)
		}
	})

	tests := []struct {
		name    string
		room    geom.Rect
		hall    geom.Rect
		windows []plan.Opening
		want    plan.Opening
	}{
		{
			name:    "window shifts door",
			room:    geom.R(1, 1, 8, 5),
			hall:    band,
			windows: []plan.Opening{{X: 4, Y: 5, Facing: geom.South}},
			want:    plan.Opening{X: 5, Y: 5, Facing: geom.South},
		},
		{
			name: "one tile east run",
			room: geom.R(3, 3, 6, 6),
			hall: geom.R(9, 7, 2, 3),
			want: plan.Opening{X: 8, Y: 7, Facing: geom.East},
		},
		{
			name: "one tile west run",
			room: geom.R(3, 3, 6, 6),
			hall: geom.R(1, 4, 2, 1),
			want: plan.Opening{X: 3, Y: 4, Facing: geom.West},
		},
		{
			name: "one tile north run",
			room: geom.R(3, 3, 6, 6),
			hall: geom.R(1, 1, 4, 2),
			want: plan.Opening{X: 4, Y: 3, Facing: geom.North},
		},
		{
			name:    "window shifts door along east wall",
			room:    geom.R(3, 3, 6, 6),
			hall:    geom.R(9, 3, 2, 6),
			windows: []plan.Opening{{X: 8, Y: 5, Facing: geom.East}},
			want:    plan.Opening{X: 8, Y: 6, Facing: geom.East},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := room(t, "r", tt.room)
			r.Windows = tt.windows
			adj, ok := geom.Adjacent(r.Bounds, tt.hall)
			if !ok {
				t.Fatalf("Adjacent(%v, %v) = false", tt.room, tt.hall)
			}
			if !AddDoorway(&r, adj) {
				t.Fatal("AddDoorway = false, want true")
			}
			if len(r.Doors) != 1 {
				t.Fatalf("doors = %v, want 1", r.Doors)
			}
			got := r.Doors[0]
			if got != tt.want {
				t.Errorf("door = %+v, want %+v", got, tt.want)
			}
			if !r.Bounds.OnPerimeter(got.Point()) || r.Bounds.IsCorner(got.Point()) {
				t.Errorf("door %v is not on a wall of %v", got.Point(), r.Bounds)
			}
			if !onSegment(adj.Edge(r.Bounds), got.Point()) {
				t.Errorf("door %v is not on the shared edge %v", got.Point(), adj.Edge(r.Bounds))
			}
		})
	}
}

func TestConnectedRoomsHaveDoorOnSharedEdge(t *testing.T) {
	tests := []struct {
		building catalog.BuildingType
		class    catalog.SocialClass
		level    int
		outer    geom.Rect
	}{
		{catalog.HouseSmall, catalog.Common, 0, geom.R(0, 0, 22, 16)},
		{catalog.HouseLarge, catalog.Wealthy, 0, geom.R(0, 0, 26, 20)},
		{catalog.HouseLarge, catalog.Wealthy, 1, geom.R(0, 0, 26, 20)},
		{catalog.Tavern, catalog.Common, 0, geom.R(0, 0, 28, 22)},
		{catalog.Tavern, catalog.Poor, 1, geom.R(0, 0, 24, 18)},
		{catalog.Shop, catalog.Common, 0, geom.R(0, 0, 20, 16)},
	}
	connections := 0
	for _, tt := range tests {
		for seed := int64(1); seed <= 6; seed++ {
			fp := plan.Footprint{Level: tt.level, Outer: tt.outer, Usable: tt.outer.Inset(1)}
			packed := layout.Pack(layout.Input{
				Building:     tt.building,
				Class:        tt.class,
				Footprint:    fp,
				WallMaterial: catalog.Wood,
				Seed:         seed,
			})
			res := Connect(Input{
				Building:  tt.building,
				Class:     tt.class,
				Footprint: fp,
				Rooms:     packed.Rooms,
				Seed:      seed,
			})

			byID := make(map[string]plan.Room, len(res.Rooms))
			for _, r := range res.Rooms {
				byID[r.ID] = r
				for _, d := range r.Doors {
					if !r.Bounds.OnPerimeter(d.Point()) || r.Bounds.IsCorner(d.Point()) {
						t.Errorf("%v/%v level %d seed %d: %s door %v is not on a wall of %v",
							tt.building, tt.class, tt.level, seed, r.ID, d.Point(), r.Bounds)
					}
				}
			}
			for _, h := range res.Hallways {
				for _, id := range h.Connects {
					connections++
					r := byID[id]
					adj, ok := geom.Adjacent(r.Bounds, h.Bounds)
					if !ok {
						t.Errorf("%v/%v seed %d: %s does not touch %s", tt.building, tt.class, seed, id, h.ID)
						continue
					}
					edge := adj.Edge(r.Bounds)
					found := false
					for _, d := range r.Doors {
						if onSegment(edge, d.Point()) {
							found = true
						}
					}
					if !found {
						t.Errorf("%v/%v level %d seed %d: %s listed by %s has no door on %v (doors %v)",
							tt.building, tt.class, tt.level, seed, id, h.ID, edge, r.Doors)
					}
				}
			}
		}
	}
	if connections == 0 {
		t.Error("no hallway connected any room")
	}
}

func TestOutward(t *testing.T) {
	got := outward(5, 3, 7)
	want := []int{5, 6, 4, 7, 3}
	if len(got) != len(want) {
		t.Fatalf("outward = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("outward = %v, want %v", got, want)
			break
		}
	}
}
