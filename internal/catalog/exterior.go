package catalog

import "github.com/lawnchairsociety/hearthplan/internal/geom"

// ExteriorFeatureKinds lists the yard features in draw order.
var ExteriorFeatureKinds = []string{"garden", "well", "cart", "fence", "tree", "decoration", "storage"}

var exteriorBaseChance = map[string]float64{
	"garden":     0.3,
	"well":       0.1,
	"cart":       0.2,
	"fence":      0.4,
	"tree":       0.6,
	"decoration": 0.3,
	"storage":    0.2,
}

var exteriorTypeModifiers = map[BuildingType]map[string]float64{
	HouseSmall:  {"garden": 1.0, "well": 0.5, "cart": 0.5},
	HouseLarge:  {"garden": 1.5, "well": 1.0, "decoration": 1.5},
	Tavern:      {"cart": 1.5, "storage": 1.5, "fence": 0.5},
	Blacksmith:  {"storage": 2.0, "cart": 1.5, "well": 1.5},
	Shop:        {"decoration": 1.5, "storage": 1.0},
	MarketStall: {"cart": 2.0, "storage": 1.5, "fence": 0.2},
}

// ExteriorChance returns the probability of a yard feature, capped at 1.
func ExteriorChance(kind string, b BuildingType, c SocialClass) float64 {
	mult := map[SocialClass]float64{Poor: 0.5, Common: 1.0, Wealthy: 1.5, Noble: 2.0}[c]
	mod, ok := exteriorTypeModifiers[b][kind]
	if !ok {
		mod = 1.0
	}
	return min(1.0, exteriorBaseChance[kind]*mult*mod)
}

// ExteriorMinSize is the smallest footprint of a yard feature.
func ExteriorMinSize(kind string) geom.Size {
	if kind == "garden" {
		return sz(2, 2)
	}
	if kind == "cart" {
		return sz(2, 1)
	}
	return sz(1, 1)
}

// Roof describes the roof style of a building.
type Roof struct {
	Type  string
	Pitch int // degrees
}

// RoofFor picks the roof style from class and climate.
func RoofFor(b BuildingType, c SocialClass, cl Climate) Roof {
	var r Roof
	switch c {
	case Poor:
		r = Roof{Type: "shed", Pitch: 30}
	case Wealthy:
		r = Roof{Type: "hip", Pitch: 45}
	case Noble:
		r = Roof{Type: "hip", Pitch: 50}
		if b == HouseLarge {
			r.Type = "mansard"
		}
	default:
		r = Roof{Type: "gable", Pitch: 40}
	}
	switch cl {
	case Cold, Wet:
		r.Pitch += 10
	case Hot, Dry:
		r.Pitch -= 10
		if r.Type == "shed" {
			r.Type = "flat"
		}
	}
	return r
}
