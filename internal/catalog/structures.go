package catalog

import "github.com/lawnchairsociety/hearthplan/internal/geom"

// Filter narrows a template lookup.
type Filter struct {
	Class    SocialClass
	Building BuildingType
	Function RoomFunction
}

func hasClass(list []SocialClass, c SocialClass) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

func hasBuilding(list []BuildingType, b BuildingType) bool {
	for _, v := range list {
		if v == b {
			return true
		}
	}
	return false
}

func hasFunction(list []RoomFunction, f RoomFunction) bool {
	for _, v := range list {
		if v == f {
			return true
		}
	}
	return false
}

var allClasses = []SocialClass{Poor, Common, Wealthy, Noble}

// HallwayFeature is a decorative element repeated along a hallway.
type HallwayFeature struct {
	Kind    string // pillar, alcove or arch
	Chance  float64
	Spacing int
}

// HallwayTemplate describes a corridor style.
type HallwayTemplate struct {
	ID        string
	Width     int
	Floor     Material
	Wall      Material
	Classes   []SocialClass
	Buildings []BuildingType
	Features  []HallwayFeature
}

var hallwayTemplates = []HallwayTemplate{
	{
		ID: "basic_corridor", Width: 2, Floor: WoodPine, Wall: StoneLimestone,
		Classes:   []SocialClass{Poor, Common},
		Buildings: []BuildingType{HouseSmall, HouseLarge, Shop},
	},
	{
		ID: "grand_hallway", Width: 4, Floor: Marble, Wall: StoneGranite,
		Classes:   []SocialClass{Wealthy, Noble},
		Buildings: []BuildingType{HouseLarge, Tavern},
		Features: []HallwayFeature{
			{Kind: "pillar", Chance: 0.3, Spacing: 4},
			{Kind: "alcove", Chance: 0.2, Spacing: 6},
		},
	},
	{
		ID: "tavern_corridor", Width: 3, Floor: WoodOak, Wall: WoodOak,
		Classes:   []SocialClass{Common, Wealthy},
		Buildings: []BuildingType{Tavern},
		Features:  []HallwayFeature{{Kind: "arch", Chance: 0.4, Spacing: 3}},
	},
	{
		ID: "workshop_passage", Width: 2, Floor: StoneLimestone, Wall: BrickFired,
		Classes:   []SocialClass{Poor, Common, Wealthy},
		Buildings: []BuildingType{Blacksmith, Shop},
	},
}

// SelectHallway returns the corridor style for a building. Templates built
// for richer classes win ties; basic_corridor is the fallback.
func SelectHallway(f Filter) HallwayTemplate {
	best, bestScore := -1, -1
	for i, t := range hallwayTemplates {
		if !hasClass(t.Classes, f.Class) || !hasBuilding(t.Buildings, f.Building) {
			continue
		}
		score := 0
		for _, c := range t.Classes {
			score = max(score, int(c))
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return hallwayTemplates[0]
	}
	return hallwayTemplates[best]
}

// StairTemplate describes a staircase style.
type StairTemplate struct {
	ID        string
	Style     StairStyle
	Min       geom.Size
	Preferred geom.Size
	Clearance int
	Material  Material
	Classes   []SocialClass
}

var stairTemplates = map[string]StairTemplate{
	"basic_straight": {ID: "basic_straight", Style: Straight, Min: sz(2, 3), Preferred: sz(2, 4), Clearance: 1,
		Material: WoodPine, Classes: []SocialClass{Poor, Common}},
	"wooden_l_shaped": {ID: "wooden_l_shaped", Style: LShaped, Min: sz(3, 3), Preferred: sz(4, 4), Clearance: 1,
		Material: WoodOak, Classes: []SocialClass{Common, Wealthy}},
	"grand_stone": {ID: "grand_stone", Style: Grand, Min: sz(4, 5), Preferred: sz(5, 6), Clearance: 2,
		Material: Marble, Classes: []SocialClass{Wealthy, Noble}},
	"spiral_stone": {ID: "spiral_stone", Style: Spiral, Min: sz(3, 3), Preferred: sz(4, 4), Clearance: 1,
		Material: StoneGranite, Classes: []SocialClass{Common, Wealthy, Noble}},
	"narrow_wooden": {ID: "narrow_wooden", Style: Narrow, Min: sz(1, 3), Preferred: sz(2, 4), Clearance: 0,
		Material: WoodPine, Classes: []SocialClass{Poor, Common}},
}

var stairPreferences = map[BuildingType][]string{
	HouseSmall:  {"basic_straight", "narrow_wooden"},
	HouseLarge:  {"wooden_l_shaped", "basic_straight", "grand_stone"},
	Tavern:      {"wooden_l_shaped", "basic_straight"},
	Blacksmith:  {"basic_straight", "narrow_wooden"},
	Shop:        {"wooden_l_shaped", "basic_straight"},
	MarketStall: {"basic_straight"},
}

// SelectStair picks a staircase style. Buildings of three or more floors
// owned by wealthy or noble families get a spiral stair.
func SelectStair(f Filter, floors int) StairTemplate {
	if floors >= 3 && (f.Class == Wealthy || f.Class == Noble) {
		return stairTemplates["spiral_stone"]
	}
	for _, id := range stairPreferences[f.Building] {
		if t := stairTemplates[id]; hasClass(t.Classes, f.Class) {
			return t
		}
	}
	return stairTemplates["basic_straight"]
}

// GetStair looks up a staircase template by id.
func GetStair(id string) (StairTemplate, bool) {
	t, ok := stairTemplates[id]
	return t, ok
}

// WallTemplate is a load-bearing wall construction.
type WallTemplate struct {
	ID        string
	Material  Material
	Thickness int
	Capacity  int // floors the wall can carry
	Classes   []SocialClass
	Buildings []BuildingType
}

var wallTemplates = map[string]WallTemplate{
	"stone_foundation": {ID: "stone_foundation", Material: StoneGranite, Thickness: 2, Capacity: 4,
		Classes:   allClasses,
		Buildings: []BuildingType{HouseSmall, HouseLarge, Tavern, Blacksmith, Shop, MarketStall}},
	"timber_stone": {ID: "timber_stone", Material: WoodOak, Thickness: 1, Capacity: 2,
		Classes:   []SocialClass{Poor, Common, Wealthy},
		Buildings: []BuildingType{HouseSmall, HouseLarge, Tavern, Shop}},
	"stone_ashlar": {ID: "stone_ashlar", Material: StoneLimestone, Thickness: 2, Capacity: 3,
		Classes:   []SocialClass{Wealthy, Noble},
		Buildings: []BuildingType{HouseLarge, Tavern}},
	"stone_massive": {ID: "stone_massive", Material: StoneGranite, Thickness: 3, Capacity: 5,
		Classes:   []SocialClass{Noble},
		Buildings: []BuildingType{HouseLarge, Tavern}},
	"workshop_brick": {ID: "workshop_brick", Material: BrickFired, Thickness: 2, Capacity: 2,
		Classes:   []SocialClass{Common, Wealthy},
		Buildings: []BuildingType{Blacksmith, Shop}},
}

var wallPreferences = map[SocialClass][]string{
	Poor:    {"timber_stone"},
	Common:  {"timber_stone", "stone_ashlar"},
	Wealthy: {"stone_ashlar", "stone_massive"},
	Noble:   {"stone_massive", "stone_ashlar"},
}

// SelectWall picks the wall construction for a building's above-ground
// walls. The first compatible preference wins, then timber_stone.
func SelectWall(f Filter) WallTemplate {
	prefs := wallPreferences[f.Class]
	if f.Building == Blacksmith {
		prefs = []string{"workshop_brick", "timber_stone"}
	}
	for _, id := range prefs {
		t := wallTemplates[id]
		if hasClass(t.Classes, f.Class) && hasBuilding(t.Buildings, f.Building) {
			return t
		}
	}
	return wallTemplates["timber_stone"]
}

// FoundationWall returns the construction used for basement perimeters.
func FoundationWall() WallTemplate {
	return wallTemplates["stone_foundation"]
}
