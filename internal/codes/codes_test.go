package codes

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

func mkRoom(t *testing.T, id string, fn catalog.RoomFunction, b geom.Rect) plan.Room {
	t.Helper()
	r, err := plan.NewRoom(id, id, fn, b, 0, catalog.Wood, catalog.Wood)
	if err != nil {
		t.Fatalf("NewRoom(%s) error: %v", id, err)
	}
	r.Doors = []plan.Opening{{X: b.X + b.W/2, Y: b.MaxY() - 1, Facing: geom.South}}
	return r
}

func smallHouse(t *testing.T) plan.BuildingPlan {
	kitchen := mkRoom(t, "kitchen", catalog.Kitchen, geom.R(0, 0, 4, 5))
	bedroom := mkRoom(t, "bedroom", catalog.Bedroom, geom.R(4, 0, 5, 5))
	bedroom.Windows = []plan.Opening{{X: 5, Y: 0, Facing: geom.North}}
	living := mkRoom(t, "living", catalog.Living, geom.R(0, 5, 9, 5))
	return plan.BuildingPlan{
		Metadata: plan.Metadata{BuildingType: catalog.HouseSmall, SocialClass: catalog.Common},
		Floors: []plan.Floor{{
			Level: 0, CeilingHeight: 3.0,
			Rooms: []plan.Room{kitchen, bedroom, living},
		}},
	}
}

func codesOf(vs []Violation) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func TestCheckSmallHouse(t *testing.T) {
	rep := Check(smallHouse(t))

	want := []string{"MIN_KITCHEN_SIZE", "KITCHEN_VENTILATION", "SANITATION_ACCESS"}
	if got := codesOf(rep.Violations); !reflect.DeepEqual(got, want) {
		t.Fatalf("violations = %v, want %v", got, want)
	}
	if rep.Violations[0].RoomID != "kitchen" || rep.Violations[2].RoomID != "" {
		t.Errorf("room ids = %q, %q, want kitchen and building", rep.Violations[0].RoomID, rep.Violations[2].RoomID)
	}
	if v := rep.Violations[0]; v.Current != 20 || v.Required != 24 {
		t.Errorf("kitchen size = %v/%v, want 20/24", v.Current, v.Required)
	}

	wantCompliance := Compliance{Mandatory: 60, Recommended: 67, Overall: 63}
	if rep.Compliance != wantCompliance {
		t.Errorf("compliance = %+v, want %+v", rep.Compliance, wantCompliance)
	}
	if rep.Summary.TotalCodes != 8 || rep.Summary.Checks != 8 {
		t.Errorf("summary = %+v, want 8 codes and 8 checks", rep.Summary)
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	p := smallHouse(t)
	first, second := Check(p), Check(p)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Check() differs between runs:\n%+v\n%+v", first, second)
	}
}

func TestAutoFixKitchen(t *testing.T) {
	p := smallHouse(t)
	fixed, res := AutoFix(p, Check(p))
	if res.Fixed != 1 {
		t.Errorf("fixed = %d, want 1", res.Fixed)
	}
	if len(res.Notes) != 2 || !strings.Contains(res.Notes[1], "Added window") {
		t.Errorf("notes = %v, want a manual size note and an added window", res.Notes)
	}
	k, _ := fixed.Floors[0].Room("kitchen")
	if len(k.Windows) != 1 || k.Windows[0].Point() != geom.Pt(1, 0) {
		t.Errorf("kitchen windows = %v, want one at (1,0)", k.Windows)
	}
	orig, _ := p.Floors[0].Room("kitchen")
	if len(orig.Windows) != 0 {
		t.Error("AutoFix modified the input plan")
	}
	for _, v := range Check(fixed).Violations {
		if v.Code == "KITCHEN_VENTILATION" {
			t.Error("kitchen still lacks ventilation after AutoFix")
		}
	}
}

func TestAutoFixWorkshop(t *testing.T) {
	p := plan.BuildingPlan{
		Metadata: plan.Metadata{BuildingType: catalog.Blacksmith, SocialClass: catalog.Common},
		Floors: []plan.Floor{{
			Level: 0, CeilingHeight: 3.0,
			Rooms: []plan.Room{mkRoom(t, "forge", catalog.Workshop, geom.R(0, 0, 8, 8))},
		}},
	}
	rep := Check(p)
	if got := codesOf(rep.Violations); !reflect.DeepEqual(got, []string{"WORKSHOP_VENTILATION"}) {
		t.Fatalf("violations = %v, want WORKSHOP_VENTILATION", got)
	}
	fixed, res := AutoFix(p, rep)
	if res.Fixed != 1 {
		t.Errorf("fixed = %d, want 1", res.Fixed)
	}
	r, _ := fixed.Floors[0].Room("forge")
	if len(r.Doors) != 2 || r.Doors[1] != (plan.Opening{X: 7, Y: 4, Facing: geom.East}) {
		t.Errorf("doors = %v, want a second door at (7,4) east", r.Doors)
	}
	if vs := Check(fixed).Violations; len(vs) != 0 {
		t.Errorf("violations after fix = %v, want none", codesOf(vs))
	}
}

func TestLoadBearingSupport(t *testing.T) {
	tests := []struct {
		name      string
		supported []int
		wantFail  bool
	}{
		{"all floors carried", []int{1, 2}, false},
		{"top floor uncarried", []int{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plan.BuildingPlan{
				Metadata: plan.Metadata{BuildingType: catalog.HouseLarge, SocialClass: catalog.Poor},
				Floors:   []plan.Floor{{Level: 0}, {Level: 1}, {Level: 2}},
				Walls:    []plan.Wall{{ID: "exterior_north", Floor: 0, SupportedFloors: tt.supported}},
			}
			failed := false
			for _, v := range Check(p).Violations {
				if v.Code == "LOAD_BEARING_SUPPORT" {
					failed = true
				}
			}
			if failed != tt.wantFail {
				t.Errorf("LOAD_BEARING_SUPPORT failed = %v, want %v", failed, tt.wantFail)
			}
		})
	}
}

func TestStairSafety(t *testing.T) {
	hall := mkRoom(t, "hall", catalog.Living, geom.R(0, 0, 9, 9))
	hall.Stairs = []plan.StairAccess{{StaircaseID: "staircase_main", Level: 0, X: 2, Y: 4, Direction: "up"}}
	p := plan.BuildingPlan{
		Metadata:   plan.Metadata{BuildingType: catalog.HouseLarge, SocialClass: catalog.Common},
		Floors:     []plan.Floor{{Level: 0, CeilingHeight: 3.0, Rooms: []plan.Room{hall}}},
		Staircases: []plan.Staircase{{ID: "staircase_main", Bounds: geom.R(2, 2, 1, 3)}},
	}
	var got *Violation
	rep := Check(p)
	for i := range rep.Violations {
		if rep.Violations[i].Code == "STAIR_SAFETY" {
			got = &rep.Violations[i]
		}
	}
	if got == nil {
		t.Fatalf("violations = %v, want STAIR_SAFETY", codesOf(rep.Violations))
	}
	if got.Current != 1 {
		t.Errorf("stair width = %v, want 1", got.Current)
	}
}

func TestRulesFor(t *testing.T) {
	tests := []struct {
		b    catalog.BuildingType
		c    catalog.SocialClass
		want int
	}{
		{catalog.HouseSmall, catalog.Common, 8},
		{catalog.HouseSmall, catalog.Poor, 4},
		{catalog.Blacksmith, catalog.Noble, 0},
		{catalog.MarketStall, catalog.Common, 0},
	}
	for _, tt := range tests {
		if got := len(RulesFor(tt.b, tt.c)); got != tt.want {
			t.Errorf("len(RulesFor(%s, %s)) = %d, want %d", tt.b, tt.c, got, tt.want)
		}
	}
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(Check(smallHouse(t)))
	for _, want := range []string{
		"Overall compliance: 63%",
		"MANDATORY VIOLATIONS (must fix):",
		"1. kitchen: Kitchens must provide",
		"RECOMMENDED IMPROVEMENTS:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "OPTIONAL") {
		t.Errorf("report has an empty optional section:\n%s", out)
	}

	clean := FormatReport(Report{Compliance: Compliance{100, 100, 100}})
	if !strings.Contains(clean, "All applicable building codes are satisfied.") {
		t.Errorf("clean report = %q", clean)
	}
}
