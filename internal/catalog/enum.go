package catalog

import "fmt"

// names maps enum values to their wire names. Index 0 is the invalid zero
// value of every enum in this package.
type names[T ~int] struct {
	kind string
	list []string
}

func (n names[T]) str(v T) string {
	if v <= 0 || int(v) >= len(n.list) {
		return "unknown"
	}
	return n.list[v]
}

func (n names[T]) parse(s string) (T, error) {
	for i := 1; i < len(n.list); i++ {
		if n.list[i] == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("catalog: unknown %s %q", n.kind, s)
}

func (n names[T]) all() []T {
	out := make([]T, 0, len(n.list)-1)
	for i := 1; i < len(n.list); i++ {
		out = append(out, T(i))
	}
	return out
}

func (n names[T]) valid(v T) bool {
	return v > 0 && int(v) < len(n.list)
}

// unmarshal accepts "unknown" so an unset value survives a round trip.
func (n names[T]) unmarshal(dst *T, text []byte) error {
	if string(text) == "unknown" {
		*dst = 0
		return nil
	}
	v, err := n.parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// BuildingType is a building archetype.
type BuildingType int

const (
	HouseSmall BuildingType = iota + 1
	HouseLarge
	Tavern
	Blacksmith
	Shop
	MarketStall
)

var buildingTypeNames = names[BuildingType]{"building type", []string{
	"", "house_small", "house_large", "tavern", "blacksmith", "shop", "market_stall",
}}

func (b BuildingType) String() string                { return buildingTypeNames.str(b) }
func (b BuildingType) Valid() bool                   { return buildingTypeNames.valid(b) }
func (b BuildingType) MarshalText() ([]byte, error)  { return []byte(b.String()), nil }
func (b *BuildingType) UnmarshalText(t []byte) error { return buildingTypeNames.unmarshal(b, t) }

// ParseBuildingType parses a wire name such as "house_small".
func ParseBuildingType(s string) (BuildingType, error) { return buildingTypeNames.parse(s) }

// BuildingTypes lists every archetype.
func BuildingTypes() []BuildingType { return buildingTypeNames.all() }

// SocialClass is the wealth tier of a building's owners.
type SocialClass int

const (
	Poor SocialClass = iota + 1
	Common
	Wealthy
	Noble
)

var socialClassNames = names[SocialClass]{"social class", []string{
	"", "poor", "common", "wealthy", "noble",
}}

func (c SocialClass) String() string                { return socialClassNames.str(c) }
func (c SocialClass) Valid() bool                   { return socialClassNames.valid(c) }
func (c SocialClass) MarshalText() ([]byte, error)  { return []byte(c.String()), nil }
func (c *SocialClass) UnmarshalText(t []byte) error { return socialClassNames.unmarshal(c, t) }

// ParseSocialClass parses a wire name such as "noble".
func ParseSocialClass(s string) (SocialClass, error) { return socialClassNames.parse(s) }

// SocialClasses lists every tier from poorest to richest.
func SocialClasses() []SocialClass { return socialClassNames.all() }

// Climate of the building site.
type Climate int

const (
	Temperate Climate = iota + 1
	Cold
	Hot
	Wet
	Dry
)

var climateNames = names[Climate]{"climate", []string{
	"", "temperate", "cold", "hot", "wet", "dry",
}}

func (c Climate) String() string                { return climateNames.str(c) }
func (c Climate) Valid() bool                   { return climateNames.valid(c) }
func (c Climate) MarshalText() ([]byte, error)  { return []byte(c.String()), nil }
func (c *Climate) UnmarshalText(t []byte) error { return climateNames.unmarshal(c, t) }

func ParseClimate(s string) (Climate, error) { return climateNames.parse(s) }
func Climates() []Climate                    { return climateNames.all() }

// Condition describes wear on the building.
type Condition int

const (
	ConditionNew Condition = iota + 1
	ConditionGood
	ConditionWorn
	ConditionPoor
	ConditionRuins
)

var conditionNames = names[Condition]{"condition", []string{
	"", "new", "good", "worn", "poor", "ruins",
}}

func (c Condition) String() string                { return conditionNames.str(c) }
func (c Condition) Valid() bool                   { return conditionNames.valid(c) }
func (c Condition) MarshalText() ([]byte, error)  { return []byte(c.String()), nil }
func (c *Condition) UnmarshalText(t []byte) error { return conditionNames.unmarshal(c, t) }

func ParseCondition(s string) (Condition, error) { return conditionNames.parse(s) }

// ConditionForAge maps a building age in years to its condition.
func ConditionForAge(age int) Condition {
	switch {
	case age < 10:
		return ConditionNew
	case age < 30:
		return ConditionGood
	case age < 60:
		return ConditionWorn
	case age < 90:
		return ConditionPoor
	default:
		return ConditionRuins
	}
}

// Season at generation time.
type Season int

const (
	Spring Season = iota + 1
	Summer
	Autumn
	Winter
)

var seasonNames = names[Season]{"season", []string{
	"", "spring", "summer", "autumn", "winter",
}}

func (s Season) String() string                { return seasonNames.str(s) }
func (s Season) Valid() bool                   { return seasonNames.valid(s) }
func (s Season) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *Season) UnmarshalText(t []byte) error { return seasonNames.unmarshal(s, t) }

func ParseSeason(s string) (Season, error) { return seasonNames.parse(s) }
func Seasons() []Season                    { return seasonNames.all() }

// RoomFunction is what a room is used for.
type RoomFunction int

const (
	Living RoomFunction = iota + 1
	Bedroom
	Kitchen
	Storage
	CommonRoom
	TavernHall
	Workshop
	ShopFloor
	Office
	Study
	Cellar
	GuestRoom
)

var roomFunctionNames = names[RoomFunction]{"room function", []string{
	"", "living", "bedroom", "kitchen", "storage", "common", "tavern_hall",
	"workshop", "shop_floor", "office", "study", "cellar", "guest_room",
}}

func (f RoomFunction) String() string                { return roomFunctionNames.str(f) }
func (f RoomFunction) Valid() bool                   { return roomFunctionNames.valid(f) }
func (f RoomFunction) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (f *RoomFunction) UnmarshalText(t []byte) error { return roomFunctionNames.unmarshal(f, t) }

func ParseRoomFunction(s string) (RoomFunction, error) { return roomFunctionNames.parse(s) }
func RoomFunctions() []RoomFunction                    { return roomFunctionNames.all() }

// IsGathering reports whether the room is a main living or common space.
func (f RoomFunction) IsGathering() bool {
	return f == Living || f == CommonRoom || f == TavernHall
}

// IsSleeping reports whether people sleep in the room.
func (f RoomFunction) IsSleeping() bool {
	return f == Bedroom || f == GuestRoom
}

// Material is a building or surface material.
type Material int

const (
	Wood Material = iota + 1
	Brick
	Stone
	Marble
	Thatch
	Tile
	Slate
	Metal
	WoodPine
	WoodOak
	StoneLimestone
	StoneGranite
	BrickFired
)

var materialNames = names[Material]{"material", []string{
	"", "wood", "brick", "stone", "marble", "thatch", "tile", "slate", "metal",
	"wood_pine", "wood_oak", "stone_limestone", "stone_granite", "brick_fired",
}}

func (m Material) String() string                { return materialNames.str(m) }
func (m Material) Valid() bool                   { return materialNames.valid(m) }
func (m Material) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m *Material) UnmarshalText(t []byte) error { return materialNames.unmarshal(m, t) }

func ParseMaterial(s string) (Material, error) { return materialNames.parse(s) }

// Placement is where in a room an item may stand.
type Placement int

const (
	Center Placement = iota + 1
	Wall
	Corner
	Anywhere
)

var placementNames = names[Placement]{"placement", []string{
	"", "center", "wall", "corner", "anywhere",
}}

func (p Placement) String() string                { return placementNames.str(p) }
func (p Placement) MarshalText() ([]byte, error)  { return []byte(p.String()), nil }
func (p *Placement) UnmarshalText(t []byte) error { return placementNames.unmarshal(p, t) }

func ParsePlacement(s string) (Placement, error) { return placementNames.parse(s) }

// StairStyle is the shape of a staircase.
type StairStyle int

const (
	Straight StairStyle = iota + 1
	LShaped
	Spiral
	Grand
	Narrow
)

var stairStyleNames = names[StairStyle]{"stair style", []string{
	"", "straight", "l_shaped", "spiral", "grand", "narrow",
}}

func (s StairStyle) String() string                { return stairStyleNames.str(s) }
func (s StairStyle) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *StairStyle) UnmarshalText(t []byte) error { return stairStyleNames.unmarshal(s, t) }
