package catalog

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, b := range BuildingTypes() {
		got, err := ParseBuildingType(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBuildingType(%q) = %v, %v", b.String(), got, err)
		}
	}
	for _, c := range SocialClasses() {
		var back SocialClass
		text, _ := c.MarshalText()
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("SocialClass round trip %v = %v, %v", c, back, err)
		}
	}
	for _, f := range RoomFunctions() {
		if got, _ := ParseRoomFunction(f.String()); got != f {
			t.Errorf("ParseRoomFunction(%q) = %v", f.String(), got)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := ParseBuildingType("castle"); err == nil {
		t.Error("ParseBuildingType(castle) should fail")
	}
	if _, err := ParseSocialClass(""); err == nil {
		t.Error("ParseSocialClass(\"\") should fail")
	}
	var zero BuildingType
	if zero.Valid() || zero.String() != "unknown" {
		t.Errorf("zero BuildingType = %q valid=%v", zero.String(), zero.Valid())
	}
}

func TestEveryArchetypeDefined(t *testing.T) {
	for _, b := range BuildingTypes() {
		a, ok := GetArchetype(b)
		if !ok {
			t.Fatalf("GetArchetype(%v) missing", b)
		}
		if a.Width.Min > a.Width.Max || a.Height.Min > a.Height.Max {
			t.Errorf("%v has inverted building range", b)
		}
		usable := a.MinBuilding()
		usable.W -= 2
		usable.H -= 2
		for _, tmpl := range RoomProgram(b, 0) {
			if tmpl.Required && (tmpl.Min.W > usable.W || tmpl.Min.H > usable.H) {
				t.Errorf("%v: required room %s %v does not fit minimum usable %v", b, tmpl.ID, tmpl.Min, usable)
			}
		}
	}
}

func TestRoomProgramIsCopy(t *testing.T) {
	p := RoomProgram(HouseSmall, 0)
	p[0].ID = "changed"
	if RoomProgram(HouseSmall, 0)[0].ID != "main_room" {
		t.Error("RoomProgram returned shared storage")
	}
}

func TestLevelFallback(t *testing.T) {
	tests := []struct {
		b     BuildingType
		level int
		want  RoomFunction
	}{
		{HouseSmall, 0, Living},
		{Tavern, 0, TavernHall},
		{Shop, 0, ShopFloor},
		{Blacksmith, 0, Workshop},
		{HouseLarge, 2, Bedroom},
		{Tavern, -1, Cellar},
	}

	for _, tt := range tests {
		if got, _ := LevelFallback(tt.b, tt.level); got != tt.want {
			t.Errorf("LevelFallback(%v, %d) = %v, want %v", tt.b, tt.level, got, tt.want)
		}
	}
}

func TestSelectStair(t *testing.T) {
	tests := []struct {
		b      BuildingType
		c      SocialClass
		floors int
		want   string
	}{
		{HouseLarge, Noble, 4, "spiral_stone"},
		{HouseLarge, Common, 3, "wooden_l_shaped"},
		{HouseLarge, Poor, 2, "basic_straight"},
		{HouseLarge, Noble, 2, "grand_stone"},
		{HouseSmall, Wealthy, 2, "basic_straight"},
	}

	for _, tt := range tests {
		got := SelectStair(Filter{Class: tt.c, Building: tt.b}, tt.floors)
		if got.ID != tt.want {
			t.Errorf("SelectStair(%v, %v, %d) = %s, want %s", tt.b, tt.c, tt.floors, got.ID, tt.want)
		}
	}
}

func TestSelectWall(t *testing.T) {
	tests := []struct {
		b    BuildingType
		c    SocialClass
		want string
	}{
		{HouseSmall, Poor, "timber_stone"},
		{HouseLarge, Noble, "stone_massive"},
		{HouseLarge, Wealthy, "stone_ashlar"},
		{Blacksmith, Common, "workshop_brick"},
		{Blacksmith, Noble, "timber_stone"},
		{Shop, Wealthy, "timber_stone"},
	}

	for _, tt := range tests {
		if got := SelectWall(Filter{Class: tt.c, Building: tt.b}); got.ID != tt.want {
			t.Errorf("SelectWall(%v, %v) = %s, want %s", tt.b, tt.c, got.ID, tt.want)
		}
	}
}

func TestSelectHallway(t *testing.T) {
	tests := []struct {
		b    BuildingType
		c    SocialClass
		want string
	}{
		{HouseLarge, Noble, "grand_hallway"},
		{Tavern, Common, "tavern_corridor"},
		{Blacksmith, Poor, "workshop_passage"},
		{HouseSmall, Noble, "basic_corridor"},
	}

	for _, tt := range tests {
		if got := SelectHallway(Filter{Class: tt.c, Building: tt.b}); got.ID != tt.want {
			t.Errorf("SelectHallway(%v, %v) = %s, want %s", tt.b, tt.c, got.ID, tt.want)
		}
	}
}

func TestFixturesOrderedByPriority(t *testing.T) {
	list := Fixtures(Filter{Class: Noble, Function: Kitchen})
	if len(list) == 0 {
		t.Fatal("no fixtures for noble kitchen")
	}
	for i := 1; i < len(list); i++ {
		if list[i].Priority < list[i-1].Priority {
			t.Errorf("fixture %s (p%d) after %s (p%d)", list[i].ID, list[i].Priority, list[i-1].ID, list[i-1].Priority)
		}
	}
	if list[0].ID != "hearth_large" {
		t.Errorf("first noble kitchen fixture = %s, want hearth_large", list[0].ID)
	}
}

func TestDecorationsSortedByValue(t *testing.T) {
	list := Decorations(Filter{Class: Wealthy, Function: Living})
	for i := 1; i < len(list); i++ {
		if list[i].Value() > list[i-1].Value() {
			t.Errorf("%s value %.2f ranks above %s value %.2f", list[i].ID, list[i].Value(), list[i-1].ID, list[i-1].Value())
		}
	}
}

func TestDecorationBudget(t *testing.T) {
	if got := DecorationBudget(Noble, TavernHall); got != 3000 {
		t.Errorf("DecorationBudget(noble, tavern_hall) = %d, want 3000", got)
	}
	if got := DecorationBudget(Poor, Storage); got != 6 {
		t.Errorf("DecorationBudget(poor, storage) = %d, want 6", got)
	}
}

func TestExteriorChanceCapped(t *testing.T) {
	if got := ExteriorChance("tree", HouseLarge, Noble); got != 1.0 {
		t.Errorf("ExteriorChance(tree, noble) = %v, want 1", got)
	}
	if got := ExteriorChance("cart", MarketStall, Common); got != 0.4 {
		t.Errorf("ExteriorChance(cart, market_stall) = %v, want 0.4", got)
	}
}

func TestConditionForAge(t *testing.T) {
	tests := []struct {
		age  int
		want Condition
	}{
		{0, ConditionNew},
		{29, ConditionGood},
		{30, ConditionWorn},
		{89, ConditionPoor},
		{150, ConditionRuins},
	}

	for _, tt := range tests {
		if got := ConditionForAge(tt.age); got != tt.want {
			t.Errorf("ConditionForAge(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}
