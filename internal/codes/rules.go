// Package codes checks a finished plan against a fixed table of building
// rules and can apply a small set of automatic fixes.
package codes

import (
	"slices"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// Severity ranks how much a rule matters.
type Severity string

const (
	Mandatory   Severity = "mandatory"
	Recommended Severity = "recommended"
	Optional    Severity = "optional"
)

// Rule is one building code. Room rules are evaluated per room; building
// rules once per plan with a zero room.
type Rule struct {
	ID           string
	Name         string
	Description  string
	Requirement  string
	Kind         string // size, height, ventilation, safety, structural, sanitation
	Severity     Severity
	Classes      []catalog.SocialClass
	Buildings    []catalog.BuildingType
	Min          float64
	BuildingWide bool

	// applies limits a room rule to some rooms; nil means every room.
	applies func(r plan.Room) bool
	measure func(r plan.Room, p *plan.BuildingPlan) float64
}

var (
	allClasses  = []catalog.SocialClass{catalog.Poor, catalog.Common, catalog.Wealthy, catalog.Noble}
	notPoor     = []catalog.SocialClass{catalog.Common, catalog.Wealthy, catalog.Noble}
	homes       = []catalog.BuildingType{catalog.HouseSmall, catalog.HouseLarge, catalog.Tavern}
	houses      = []catalog.BuildingType{catalog.HouseSmall, catalog.HouseLarge}
	largeHomes  = []catalog.BuildingType{catalog.HouseLarge, catalog.Tavern}
	workBuiltIn = []catalog.BuildingType{catalog.Blacksmith, catalog.Shop}
)

func is(fns ...catalog.RoomFunction) func(plan.Room) bool {
	return func(r plan.Room) bool { return slices.Contains(fns, r.Function) }
}

func area(r plan.Room, _ *plan.BuildingPlan) float64 {
	return float64(r.Bounds.Area())
}

func ceiling(r plan.Room, p *plan.BuildingPlan) float64 {
	if f, ok := p.Floor(r.Floor); ok {
		return f.CeilingHeight
	}
	return catalog.CeilingHeight(r.Floor)
}

func countHearths(r plan.Room) int {
	n := 0
	for _, f := range r.Fixtures {
		if f.Kind == "hearth" {
			n++
		}
	}
	return n
}

var rules = []Rule{
	{
		ID: "MIN_BEDROOM_SIZE", Name: "Minimum Bedroom Size", Kind: "size", Severity: Mandatory,
		Description: "Bedrooms must provide adequate space for sleeping and basic activities",
		Requirement: "Minimum 20 square tiles for primary bedrooms",
		Classes:     allClasses, Buildings: homes, Min: 20,
		applies: is(catalog.Bedroom), measure: area,
	},
	{
		ID: "MIN_LIVING_AREA_SIZE", Name: "Minimum Living Area Size", Kind: "size", Severity: Mandatory,
		Description: "Main living areas must accommodate family activities and social gatherings",
		Requirement: "Minimum 35 square tiles for main living rooms",
		Classes:     notPoor, Buildings: houses, Min: 35,
		applies: is(catalog.Living, catalog.CommonRoom), measure: area,
	},
	{
		ID: "MIN_KITCHEN_SIZE", Name: "Minimum Kitchen Size", Kind: "size", Severity: Mandatory,
		Description: "Kitchens must provide space for cooking, food preparation and storage",
		Requirement: "Minimum 24 square tiles with proper ventilation",
		Classes:     allClasses, Buildings: homes, Min: 24,
		applies: is(catalog.Kitchen), measure: area,
	},
	{
		ID: "MIN_CEILING_HEIGHT_LIVING", Name: "Minimum Ceiling Height - Living Areas", Kind: "height", Severity: Mandatory,
		Description: "Living areas require adequate headroom for comfort and air circulation",
		Requirement: "Minimum 1.6 tiles ceiling height in living spaces",
		Classes:     allClasses,
		Buildings:   []catalog.BuildingType{catalog.HouseSmall, catalog.HouseLarge, catalog.Tavern, catalog.Shop},
		Min:         1.6,
		applies:     is(catalog.Living, catalog.CommonRoom, catalog.TavernHall), measure: ceiling,
	},
	{
		ID: "MIN_CEILING_HEIGHT_BEDROOM", Name: "Minimum Ceiling Height - Bedrooms", Kind: "height", Severity: Recommended,
		Description: "Bedrooms require adequate headroom for sleeping comfort",
		Requirement: "Minimum 1.4 tiles ceiling height in bedrooms",
		Classes:     notPoor, Buildings: homes, Min: 1.4,
		applies: is(catalog.Bedroom), measure: ceiling,
	},
	{
		ID: "KITCHEN_VENTILATION", Name: "Kitchen Ventilation", Kind: "ventilation", Severity: Mandatory,
		Description: "Kitchens must have proper ventilation to remove smoke and cooking odors",
		Requirement: "At least one window or chimney per kitchen",
		Classes:     allClasses, Buildings: homes, Min: 1,
		applies: is(catalog.Kitchen),
		measure: func(r plan.Room, _ *plan.BuildingPlan) float64 {
			return float64(len(r.Windows) + len(r.Chimneys) + countHearths(r))
		},
	},
	{
		ID: "BEDROOM_VENTILATION", Name: "Bedroom Ventilation", Kind: "ventilation", Severity: Recommended,
		Description: "Bedrooms should have natural light and fresh air access",
		Requirement: "At least one window per bedroom",
		Classes:     notPoor, Buildings: homes, Min: 1,
		applies: is(catalog.Bedroom),
		measure: func(r plan.Room, _ *plan.BuildingPlan) float64 { return float64(len(r.Windows)) },
	},
	{
		ID: "WORKSHOP_VENTILATION", Name: "Workshop Ventilation", Kind: "ventilation", Severity: Mandatory,
		Description: "Workshops require excellent ventilation due to smoke, fumes and heat",
		Requirement: "Multiple windows, doors or chimneys",
		Classes:     []catalog.SocialClass{catalog.Poor, catalog.Common, catalog.Wealthy},
		Buildings:   workBuiltIn, Min: 2,
		applies: is(catalog.Workshop),
		measure: func(r plan.Room, _ *plan.BuildingPlan) float64 {
			return float64(len(r.Windows) + len(r.Doors) + len(r.Chimneys))
		},
	},
	{
		ID: "FIRE_SAFETY_EXITS", Name: "Fire Safety - Multiple Exits", Kind: "safety", Severity: Recommended,
		Description: "Large rooms should have multiple exit routes for fire safety",
		Requirement: "Rooms of 50 tiles or more should have 2+ exits",
		Classes:     notPoor,
		Buildings:   []catalog.BuildingType{catalog.HouseLarge, catalog.Tavern, catalog.Shop},
		Min:         2,
		applies:     func(r plan.Room) bool { return r.Bounds.Area() >= 50 },
		measure:     func(r plan.Room, _ *plan.BuildingPlan) float64 { return float64(len(r.Doors)) },
	},
	{
		ID: "STAIR_SAFETY", Name: "Staircase Safety", Kind: "safety", Severity: Mandatory,
		Description: "Staircases must have adequate width and headroom",
		Requirement: "Minimum 2 tiles wide for main stairs",
		Classes:     notPoor, Buildings: largeHomes, Min: 2,
		applies: func(r plan.Room) bool { return len(r.Stairs) > 0 },
		measure: stairWidth,
	},
	{
		ID: "SANITATION_ACCESS", Name: "Sanitation Access", Kind: "sanitation", Severity: Recommended,
		Description: "Buildings should provide adequate sanitation facilities",
		Requirement: "At least one privy or garderobe per building",
		Classes:     notPoor, Buildings: homes, Min: 1, BuildingWide: true,
		measure: func(_ plan.Room, p *plan.BuildingPlan) float64 {
			n := 0
			for _, r := range p.Rooms() {
				for _, f := range r.Fixtures {
					if f.Kind == "privy" || f.Kind == "garderobe" {
						n++
					}
				}
			}
			return float64(n)
		},
	},
	{
		ID: "LOAD_BEARING_SUPPORT", Name: "Load Bearing Support", Kind: "structural", Severity: Mandatory,
		Description: "Multi-story buildings require adequate structural support",
		Requirement: "Load-bearing walls or supports for each floor above ground",
		Classes:     allClasses, Buildings: largeHomes, Min: 1, BuildingWide: true,
		measure: supportRatio,
	},
}

// stairWidth is the narrow side of the staircases entered from the room.
func stairWidth(r plan.Room, p *plan.BuildingPlan) float64 {
	w := -1
	for _, a := range r.Stairs {
		for _, s := range p.Staircases {
			if s.ID == a.StaircaseID {
				if n := min(s.Bounds.W, s.Bounds.H); w < 0 || n < w {
					w = n
				}
			}
		}
	}
	if w < 0 {
		return 0
	}
	return float64(w)
}

// supportRatio is 1 when every floor above ground rests on at least one
// load-bearing wall below it, and the supported share otherwise.
func supportRatio(_ plan.Room, p *plan.BuildingPlan) float64 {
	var upper []int
	for _, l := range p.Levels() {
		if l > 0 {
			upper = append(upper, l)
		}
	}
	if len(upper) == 0 {
		return 1
	}
	held := 0
	for _, l := range upper {
		for _, w := range p.Walls {
			if w.Floor < l && slices.Contains(w.SupportedFloors, l) {
				held++
				break
			}
		}
	}
	if held == len(upper) {
		return 1
	}
	return float64(held) / float64(len(upper))
}

// Rules returns the rule table in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// GetRule looks up a rule by id.
func GetRule(id string) (Rule, bool) {
	for _, r := range rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// RulesFor returns the rules that apply to a building type and class.
func RulesFor(b catalog.BuildingType, c catalog.SocialClass) []Rule {
	var out []Rule
	for _, r := range rules {
		if slices.Contains(r.Buildings, b) && slices.Contains(r.Classes, c) {
			out = append(out, r)
		}
	}
	return out
}
