package catalog

import "github.com/lawnchairsociety/hearthplan/internal/geom"

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Clamp limits v to the range.
func (r Range) Clamp(v int) int {
	return max(r.Min, min(r.Max, v))
}

// StructuralConstraints govern how floors stack for one archetype.
type StructuralConstraints struct {
	Reduction     float64   // fraction each upper floor shrinks by
	MinUsable     geom.Size // smallest usable area any floor may have
	MaxOverhang   int       // tiles an upper floor may shift off center
	NeedsSupport  bool      // large floors get interior pillars
	WallThickness int
}

// Archetype describes a building type.
type Archetype struct {
	Type        BuildingType
	DisplayName string
	Lot         Range // base lot side before the class multiplier
	Width       Range // outer building width
	Height      Range // outer building height

	BaseStories      int
	ExtraStoryChance float64
	MaxStories       int
	BasementChance   float64
	HasChimney       bool

	Structure StructuralConstraints

	// Fallback is the function of the single room used when the ground floor
	// program cannot be packed.
	Fallback     RoomFunction
	FallbackName string
}

// MinBuilding returns the smallest outer footprint for the archetype.
func (a *Archetype) MinBuilding() geom.Size {
	return geom.Size{W: a.Width.Min, H: a.Height.Min}
}

// archetypes holds all building archetype definitions.
var archetypes = map[BuildingType]*Archetype{
	HouseSmall: {
		Type:           HouseSmall,
		DisplayName:    "Small House",
		Lot:            Range{12, 18},
		Width:          Range{15, 18},
		Height:         Range{11, 13},
		BaseStories:    1,
		MaxStories:     2,
		BasementChance: 0,
		HasChimney:     true,
		Structure: StructuralConstraints{
			Reduction:     0.15,
			MinUsable:     geom.Size{W: 6, H: 6},
			MaxOverhang:   1,
			WallThickness: 1,
		},
		Fallback:     Living,
		FallbackName: "Main Room",
	},
	HouseLarge: {
		Type:             HouseLarge,
		DisplayName:      "Large House",
		Lot:              Range{18, 28},
		Width:            Range{20, 30},
		Height:           Range{18, 26},
		BaseStories:      2,
		ExtraStoryChance: 0.5,
		MaxStories:       4,
		BasementChance:   0.4,
		HasChimney:       true,
		Structure: StructuralConstraints{
			Reduction:     0.20,
			MinUsable:     geom.Size{W: 8, H: 8},
			NeedsSupport:  true,
			WallThickness: 1,
		},
		Fallback:     Living,
		FallbackName: "Main Hall",
	},
	Tavern: {
		Type:           Tavern,
		DisplayName:    "Tavern",
		Lot:            Range{20, 35},
		Width:          Range{22, 34},
		Height:         Range{20, 28},
		BaseStories:    2,
		MaxStories:     4,
		BasementChance: 0.6,
		HasChimney:     true,
		Structure: StructuralConstraints{
			Reduction:     0.25,
			MinUsable:     geom.Size{W: 10, H: 8},
			NeedsSupport:  true,
			WallThickness: 2,
		},
		Fallback:     TavernHall,
		FallbackName: "Common Room",
	},
	Blacksmith: {
		Type:           Blacksmith,
		DisplayName:    "Blacksmith",
		Lot:            Range{15, 25},
		Width:          Range{16, 26},
		Height:         Range{13, 20},
		BaseStories:    1,
		MaxStories:     4,
		BasementChance: 0,
		HasChimney:     true,
		Structure: StructuralConstraints{
			Reduction:     0.30,
			MinUsable:     geom.Size{W: 8, H: 6},
			NeedsSupport:  true,
			WallThickness: 2,
		},
		Fallback:     Workshop,
		FallbackName: "Forge Workshop",
	},
	Shop: {
		Type:             Shop,
		DisplayName:      "Shop",
		Lot:              Range{14, 22},
		Width:            Range{15, 24},
		Height:           Range{12, 18},
		BaseStories:      1,
		ExtraStoryChance: 0.5,
		MaxStories:       4,
		BasementChance:   0.2,
		HasChimney:       true,
		Structure: StructuralConstraints{
			Reduction:     0.20,
			MinUsable:     geom.Size{W: 6, H: 6},
			MaxOverhang:   1,
			WallThickness: 1,
		},
		Fallback:     ShopFloor,
		FallbackName: "Shop Floor",
	},
	MarketStall: {
		Type:           MarketStall,
		DisplayName:    "Market Stall",
		Lot:            Range{8, 14},
		Width:          Range{7, 10},
		Height:         Range{6, 8},
		BaseStories:    1,
		MaxStories:     1,
		BasementChance: 0,
		Structure: StructuralConstraints{
			MinUsable:     geom.Size{W: 4, H: 3},
			WallThickness: 1,
		},
		Fallback:     ShopFloor,
		FallbackName: "Market Stall",
	},
}

// GetArchetype returns the archetype for t.
func GetArchetype(t BuildingType) (*Archetype, bool) {
	a, ok := archetypes[t]
	return a, ok
}

// LotMultiplier scales lot sides by wealth.
func LotMultiplier(c SocialClass) float64 {
	switch c {
	case Poor:
		return 0.8
	case Wealthy:
		return 1.3
	case Noble:
		return 1.6
	default:
		return 1.0
	}
}

// MaterialSet lists the weighted choices for one social class. Repeated
// entries make a material more likely.
type MaterialSet struct {
	Wall       []Material
	Roof       []Material
	Foundation []Material
}

var materialSets = map[SocialClass]MaterialSet{
	Poor: {
		Wall:       []Material{Wood, Wood, Wood, Brick},
		Roof:       []Material{Wood, Thatch, Thatch},
		Foundation: []Material{Stone, Wood},
	},
	Common: {
		Wall:       []Material{Wood, Brick, Brick, Stone},
		Roof:       []Material{Wood, Tile, Slate},
		Foundation: []Material{Stone, Stone, Brick},
	},
	Wealthy: {
		Wall:       []Material{Brick, Stone, Stone},
		Roof:       []Material{Tile, Slate, Slate},
		Foundation: []Material{Stone, Stone, Marble},
	},
	Noble: {
		Wall:       []Material{Stone, Marble, Stone},
		Roof:       []Material{Slate, Tile, Metal},
		Foundation: []Material{Marble, Stone, Stone},
	},
}

// Materials returns the material choices for a class.
func Materials(c SocialClass) (MaterialSet, bool) {
	m, ok := materialSets[c]
	return m, ok
}

// CeilingHeight returns the ceiling height in tiles for a floor level.
func CeilingHeight(level int) float64 {
	switch {
	case level < 0:
		return 2.0
	case level == 0:
		return 3.0
	default:
		return 2.6
	}
}
