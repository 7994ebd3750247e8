package plan

import (
	"errors"
	"testing"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
)

func TestNewRoomTiles(t *testing.T) {
	r, err := NewRoom("bedroom", "Bedroom", catalog.Bedroom, geom.R(2, 3, 5, 4), 0, catalog.Stone, catalog.WoodPine)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	if len(r.Tiles) != 20 {
		t.Fatalf("len(Tiles) = %d, want 20", len(r.Tiles))
	}
	walls := 0
	for _, tile := range r.Tiles {
		p := geom.Pt(tile.X, tile.Y)
		onEdge := r.Bounds.OnPerimeter(p)
		if onEdge && tile.Kind != TileWall {
			t.Errorf("tile %v on perimeter is %s", p, tile.Kind)
		}
		if !onEdge && (tile.Kind != TileFloor || tile.Material != catalog.WoodPine) {
			t.Errorf("interior tile %v is %s/%s", p, tile.Kind, tile.Material)
		}
		if onEdge {
			walls++
		}
	}
	if walls != 14 {
		t.Errorf("wall tiles = %d, want 14", walls)
	}
	if got := r.Interior(); got != geom.R(3, 4, 3, 2) {
		t.Errorf("Interior() = %v", got)
	}
}

func TestNewRoomTooSmall(t *testing.T) {
	_, err := NewRoom("closet", "Closet", catalog.Storage, geom.R(0, 0, 2, 5), 0, catalog.Wood, catalog.Wood)
	if !errors.Is(err, ErrRoomTooSmall) {
		t.Errorf("NewRoom(2x5) error = %v, want ErrRoomTooSmall", err)
	}
}

func TestHasDoorNear(t *testing.T) {
	r := Room{Doors: []Opening{{X: 4, Y: 6, Facing: geom.South}}}
	if !r.HasDoorNear(geom.Pt(5, 6), 1) {
		t.Error("adjacent door not found")
	}
	if r.HasDoorNear(geom.Pt(6, 6), 1) {
		t.Error("door two tiles away reported near")
	}
}

func TestPlanCloneIsDeep(t *testing.T) {
	room, _ := NewRoom("main_room", "Main Room", catalog.Living, geom.R(1, 1, 6, 6), 0, catalog.Wood, catalog.WoodPine)
	room.Lighting = &Lighting{Map: [][]float64{{0.5}}}
	p := BuildingPlan{
		Floors: []Floor{{Level: 0, Rooms: []Room{room}}},
		Walls:  []Wall{{ID: "w", SupportedFloors: []int{1}}},
		Issues: []Issue{Warn("X", "x")},
	}

	c := p.Clone()
	c.Floors[0].Rooms[0].Tiles[0].Kind = TileFloor
	c.Floors[0].Rooms[0].Lighting.Map[0][0] = 1
	c.Walls[0].SupportedFloors[0] = 9
	c.Issues[0].Code = "Y"

	if p.Floors[0].Rooms[0].Tiles[0].Kind != TileWall {
		t.Error("clone shares room tiles")
	}
	if p.Floors[0].Rooms[0].Lighting.Map[0][0] != 0.5 {
		t.Error("clone shares light map")
	}
	if p.Walls[0].SupportedFloors[0] != 1 {
		t.Error("clone shares wall supports")
	}
	if p.Issues[0].Code != "X" {
		t.Error("clone shares issues")
	}
}

func TestFloorLookup(t *testing.T) {
	p := BuildingPlan{Floors: []Floor{{Level: -1}, {Level: 0}, {Level: 1}}}
	if f, ok := p.Floor(1); !ok || f.Level != 1 {
		t.Errorf("Floor(1) = %v, %v", f, ok)
	}
	if _, ok := p.Floor(3); ok {
		t.Error("Floor(3) should not exist")
	}
	if got := p.Levels(); len(got) != 3 || got[0] != -1 {
		t.Errorf("Levels() = %v", got)
	}
}
