// Package plan defines the building plan data model. A plan is assembled by
// the generation pipeline and treated as immutable once returned; passes
// that change a plan work on a Clone.
package plan

import (
	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
)

// Level is the severity of a structural issue.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Issue is a non-fatal problem found while generating or validating.
type Issue struct {
	Code    string `yaml:"code"`
	Message string `yaml:"message"`
	Level   Level  `yaml:"level"`
}

// Warn is a convenience constructor for a warning issue.
func Warn(code, message string) Issue {
	return Issue{Code: code, Message: message, Level: LevelWarning}
}

// FeatureKind tags a structural feature.
type FeatureKind string

const (
	FeatureStaircase       FeatureKind = "staircase"
	FeatureChimney         FeatureKind = "chimney"
	FeatureSupportPillar   FeatureKind = "support_pillar"
	FeatureLoadBearingWall FeatureKind = "load_bearing_wall"
)

// StructuralFeature is a cross-floor element occupying part of a footprint.
type StructuralFeature struct {
	ID     string      `yaml:"id"`
	Kind   FeatureKind `yaml:"kind"`
	Bounds geom.Rect   `yaml:"bounds"`
	Serves []int       `yaml:"serves_floors,flow"`
}

// Footprint is the extent of one floor.
type Footprint struct {
	Level    int                 `yaml:"level"`
	Outer    geom.Rect           `yaml:"outer_bounds"`
	Usable   geom.Rect           `yaml:"usable_area"`
	Features []StructuralFeature `yaml:"structural_features,omitempty"`
}

// FeaturesOf returns the features of one kind.
func (f Footprint) FeaturesOf(kind FeatureKind) []StructuralFeature {
	var out []StructuralFeature
	for _, sf := range f.Features {
		if sf.Kind == kind {
			out = append(out, sf)
		}
	}
	return out
}

// Clone returns a deep copy.
func (f Footprint) Clone() Footprint {
	c := f
	c.Features = cloneSlice(f.Features)
	for i := range c.Features {
		c.Features[i].Serves = cloneSlice(c.Features[i].Serves)
	}
	return c
}

// Floor is one level of the building with its contents.
type Floor struct {
	Level         int       `yaml:"level"`
	Footprint     Footprint `yaml:"footprint"`
	CeilingHeight float64   `yaml:"ceiling_height"`
	Rooms         []Room    `yaml:"rooms"`
	Hallways      []Hallway `yaml:"hallways,omitempty"`
}

// Clone returns a deep copy.
func (f Floor) Clone() Floor {
	c := f
	c.Footprint = f.Footprint.Clone()
	c.Rooms = cloneSlice(f.Rooms)
	for i := range c.Rooms {
		c.Rooms[i] = c.Rooms[i].Clone()
	}
	c.Hallways = cloneSlice(f.Hallways)
	for i := range c.Hallways {
		c.Hallways[i] = c.Hallways[i].Clone()
	}
	return c
}

// Room returns the room with the given id.
func (f *Floor) Room(id string) (*Room, bool) {
	for i := range f.Rooms {
		if f.Rooms[i].ID == id {
			return &f.Rooms[i], true
		}
	}
	return nil, false
}

// WallKind classifies a structural wall.
type WallKind string

const (
	WallExterior            WallKind = "exterior"
	WallInteriorLoadBearing WallKind = "interior_load_bearing"
	WallPartition           WallKind = "partition"
	WallFoundation          WallKind = "foundation"
)

// Wall is a structural wall segment.
type Wall struct {
	ID              string           `yaml:"id"`
	Kind            WallKind         `yaml:"kind"`
	Floor           int              `yaml:"floor"`
	Segment         geom.Segment     `yaml:"segment"`
	Thickness       int              `yaml:"thickness"`
	Material        catalog.Material `yaml:"material"`
	Template        string           `yaml:"template"`
	SupportCapacity int              `yaml:"support_capacity"`
	SupportedFloors []int            `yaml:"supported_floors,flow"`
	Openings        []Opening        `yaml:"openings,omitempty"`
}

// Clone returns a deep copy.
func (w Wall) Clone() Wall {
	w.SupportedFloors = cloneSlice(w.SupportedFloors)
	w.Openings = cloneSlice(w.Openings)
	return w
}

// Staircase is a resolved multi-floor stair.
type Staircase struct {
	ID        string             `yaml:"id"`
	Template  string             `yaml:"template"`
	Style     catalog.StairStyle `yaml:"style"`
	Material  catalog.Material   `yaml:"material"`
	Bounds    geom.Rect          `yaml:"bounds"`
	Clearance int                `yaml:"clearance"`
	Serves    []int              `yaml:"serves_floors,flow"`
	Access    []StairAccess      `yaml:"access_points"`
}

// Clone returns a deep copy.
func (s Staircase) Clone() Staircase {
	s.Serves = cloneSlice(s.Serves)
	s.Access = cloneSlice(s.Access)
	return s
}

// Materials records the main construction materials.
type Materials struct {
	Wall       catalog.Material `yaml:"wall"`
	Roof       catalog.Material `yaml:"roof"`
	Foundation catalog.Material `yaml:"foundation"`
}

// Metadata records the inputs a plan was generated from.
type Metadata struct {
	BuildingType      catalog.BuildingType `yaml:"building_type"`
	SocialClass       catalog.SocialClass  `yaml:"social_class"`
	Seed              int64                `yaml:"seed"`
	Climate           catalog.Climate      `yaml:"climate"`
	Season            catalog.Season       `yaml:"season"`
	Age               int                  `yaml:"age"`
	Condition         catalog.Condition    `yaml:"condition"`
	Stories           int                  `yaml:"stories"`
	Basement          bool                 `yaml:"basement"`
	CulturalInfluence string               `yaml:"cultural_influence,omitempty"`
}

// BuildingPlan is the root of a generated building.
type BuildingPlan struct {
	ID         string      `yaml:"id"`
	Metadata   Metadata    `yaml:"metadata"`
	Lot        geom.Size   `yaml:"lot"`
	Building   geom.Rect   `yaml:"building"`
	Materials  Materials   `yaml:"materials"`
	Floors     []Floor     `yaml:"floors"`
	Walls      []Wall      `yaml:"walls"`
	Staircases []Staircase `yaml:"staircases,omitempty"`
	Exterior   Exterior    `yaml:"exterior"`
	Issues     []Issue     `yaml:"issues,omitempty"`
}

// Floor returns the floor at level.
func (p *BuildingPlan) Floor(level int) (*Floor, bool) {
	for i := range p.Floors {
		if p.Floors[i].Level == level {
			return &p.Floors[i], true
		}
	}
	return nil, false
}

// Levels lists floor levels in plan order, lowest first.
func (p *BuildingPlan) Levels() []int {
	out := make([]int, len(p.Floors))
	for i, f := range p.Floors {
		out[i] = f.Level
	}
	return out
}

// Rooms returns every room of the building, lowest floor first.
func (p *BuildingPlan) Rooms() []Room {
	var out []Room
	for _, f := range p.Floors {
		out = append(out, f.Rooms...)
	}
	return out
}

// Clone returns a deep copy that shares no mutable storage with p.
func (p BuildingPlan) Clone() BuildingPlan {
	c := p
	c.Floors = cloneSlice(p.Floors)
	for i := range c.Floors {
		c.Floors[i] = c.Floors[i].Clone()
	}
	c.Walls = cloneSlice(p.Walls)
	for i := range c.Walls {
		c.Walls[i] = c.Walls[i].Clone()
	}
	c.Staircases = cloneSlice(p.Staircases)
	for i := range c.Staircases {
		c.Staircases[i] = c.Staircases[i].Clone()
	}
	c.Exterior = p.Exterior.Clone()
	c.Issues = cloneSlice(p.Issues)
	return c
}

// cloneSlice copies s, keeping nil as nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
