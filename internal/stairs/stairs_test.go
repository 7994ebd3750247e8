package stairs

import (
	"testing"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/structure"
)

func shaft(serves ...int) plan.StructuralFeature {
	return plan.StructuralFeature{
		ID: structure.StairShaftID, Kind: plan.FeatureStaircase,
		Bounds: geom.R(3, 3, 2, 3), Serves: serves,
	}
}

func floor(t *testing.T, level int, usable, room geom.Rect, features ...plan.StructuralFeature) plan.Floor {
	t.Helper()
	r, err := plan.NewRoom("room", "Room", catalog.Living, room, level, catalog.Wood, catalog.Wood)
	if err != nil {
		t.Fatalf("NewRoom error: %v", err)
	}
	return plan.Floor{
		Level: level,
		Footprint: plan.Footprint{
			Level: level, Outer: usable.Inset(-1), Usable: usable, Features: features,
		},
		Rooms: []plan.Room{r},
	}
}

func twoFloors(t *testing.T, extra ...plan.StructuralFeature) Input {
	fs := append([]plan.StructuralFeature{shaft(0, 1)}, extra...)
	return Input{
		Building: catalog.HouseSmall,
		Class:    catalog.Common,
		Floors: []plan.Floor{
			floor(t, 0, geom.R(1, 1, 20, 16), geom.R(1, 1, 10, 10), fs...),
			floor(t, 1, geom.R(2, 2, 16, 12), geom.R(2, 2, 8, 8), fs...),
		},
	}
}

func TestPlaceTwoFloors(t *testing.T) {
	res := Place(twoFloors(t))
	if len(res.Staircases) != 1 {
		t.Fatalf("staircases = %d, want 1", len(res.Staircases))
	}
	sc := res.Staircases[0]
	if sc.Template != "basic_straight" {
		t.Errorf("template = %s, want basic_straight", sc.Template)
	}
	if sc.Bounds != geom.R(3, 3, 2, 4) {
		t.Errorf("bounds = %v, want %v", sc.Bounds, geom.R(3, 3, 2, 4))
	}
	if len(res.Issues) != 0 {
		t.Errorf("issues = %v, want none", res.Issues)
	}

	want := []plan.StairAccess{
		{StaircaseID: MainID, Level: 0, X: 3, Y: 6, Direction: Up, TargetLevel: 1},
		{StaircaseID: MainID, Level: 1, X: 3, Y: 3, Direction: Down, TargetLevel: 0},
	}
	if len(sc.Access) != len(want) {
		t.Fatalf("access = %v, want %v", sc.Access, want)
	}
	for i := range want {
		if sc.Access[i] != want[i] {
			t.Errorf("access[%d] = %+v, want %+v", i, sc.Access[i], want[i])
		}
	}

	for i, f := range res.Floors {
		if got := f.Rooms[0].Stairs; len(got) != 1 || got[0] != want[i] {
			t.Errorf("floor %d room stairs = %v, want [%v]", f.Level, got, want[i])
		}
		if got := f.Footprint.Features[0].Bounds; got != sc.Bounds {
			t.Errorf("floor %d shaft = %v, want %v", f.Level, got, sc.Bounds)
		}
	}
}

func TestPlaceLeavesInputAlone(t *testing.T) {
	in := twoFloors(t)
	Place(in)
	if len(in.Floors[0].Rooms[0].Stairs) != 0 {
		t.Error("Place attached stairs to the input rooms")
	}
	if in.Floors[0].Footprint.Features[0].Bounds != geom.R(3, 3, 2, 3) {
		t.Error("Place resized the input shaft")
	}
}

func TestPlaceChimneyShrinksStair(t *testing.T) {
	chimney := plan.StructuralFeature{
		ID: structure.ChimneyID, Kind: plan.FeatureChimney,
		Bounds: geom.R(3, 6, 1, 1), Serves: []int{0, 1},
	}
	res := Place(twoFloors(t, chimney))
	sc := res.Staircases[0]
	if sc.Bounds != geom.R(3, 3, 2, 3) {
		t.Errorf("bounds = %v, want minimum %v", sc.Bounds, geom.R(3, 3, 2, 3))
	}
	if len(res.Issues) != 1 || res.Issues[0].Code != "STAIR_CLEARANCE_BLOCKED" {
		t.Errorf("issues = %v, want STAIR_CLEARANCE_BLOCKED", res.Issues)
	}
}

func TestPlaceSpiralForTallRichHouses(t *testing.T) {
	fs := []plan.StructuralFeature{shaft(0, 1, 2)}
	in := Input{
		Building: catalog.HouseLarge,
		Class:    catalog.Wealthy,
		Floors: []plan.Floor{
			floor(t, 0, geom.R(1, 1, 24, 20), geom.R(1, 1, 10, 10), fs...),
			floor(t, 1, geom.R(2, 2, 20, 16), geom.R(2, 2, 8, 8), fs...),
			floor(t, 2, geom.R(2, 2, 16, 14), geom.R(2, 2, 8, 8), fs...),
		},
	}
	sc := Place(in).Staircases[0]
	if sc.Style != catalog.Spiral {
		t.Errorf("style = %v, want spiral", sc.Style)
	}
	if sc.Bounds != geom.R(3, 3, 4, 4) {
		t.Errorf("bounds = %v, want %v", sc.Bounds, geom.R(3, 3, 4, 4))
	}
}

func TestPlaceWithoutShaft(t *testing.T) {
	in := twoFloors(t)
	for i := range in.Floors {
		in.Floors[i].Footprint.Features = nil
	}
	res := Place(in)
	if len(res.Staircases) != 0 || len(res.Issues) != 0 {
		t.Errorf("Place = %v / %v, want nothing", res.Staircases, res.Issues)
	}
}

func TestAccessPoints(t *testing.T) {
	serves := []int{-1, 0, 1, 2}
	pts := AccessPoints(MainID, geom.R(4, 4, 2, 3), serves)
	ups, downs := make(map[int]bool), make(map[int]bool)
	for _, a := range pts {
		switch a.Direction {
		case Up:
			ups[a.Level] = true
			if a.Y != 6 || a.TargetLevel != a.Level+1 {
				t.Errorf("up point %+v, want y 6 and target %d", a, a.Level+1)
			}
		case Down:
			downs[a.Level] = true
			if a.Y != 4 || a.TargetLevel != a.Level-1 {
				t.Errorf("down point %+v, want y 4 and target %d", a, a.Level-1)
			}
		}
	}
	for _, l := range serves {
		if wantUp := l != 2; ups[l] != wantUp {
			t.Errorf("up on level %d = %v, want %v", l, ups[l], wantUp)
		}
		if wantDown := l != -1; downs[l] != wantDown {
			t.Errorf("down on level %d = %v, want %v", l, downs[l], wantDown)
		}
	}
}

func TestValidateOutsideFloor(t *testing.T) {
	in := twoFloors(t)
	served := map[int]*plan.Floor{0: &in.Floors[0], 1: &in.Floors[1]}
	sc := plan.Staircase{ID: MainID, Bounds: geom.R(17, 3, 2, 4), Serves: []int{0, 1}}
	issues := Validate(sc, served)
	if len(issues) != 1 || issues[0].Code != "STAIR_OUTSIDE_FLOOR" {
		t.Errorf("issues = %v, want one STAIR_OUTSIDE_FLOOR", issues)
	}
}
