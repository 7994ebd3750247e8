package catalog

import "github.com/lawnchairsociety/hearthplan/internal/geom"

// RoomTemplate is one entry of a floor's room program.
type RoomTemplate struct {
	ID        string
	Name      string
	Function  RoomFunction
	Min       geom.Size
	Preferred geom.Size
	Max       geom.Size
	Required  bool
	Priority  int // lower numbers are packed first

	Floor        Material
	FloorByClass map[SocialClass]Material
}

// FloorMaterial returns the floor surface for a social class.
func (t RoomTemplate) FloorMaterial(c SocialClass) Material {
	if m, ok := t.FloorByClass[c]; ok {
		return m
	}
	return t.Floor
}

func sz(w, h int) geom.Size { return geom.Size{W: w, H: h} }

var groundPrograms = map[BuildingType][]RoomTemplate{
	HouseSmall: {
		{ID: "main_room", Name: "Main Room", Function: Living, Min: sz(7, 8), Preferred: sz(8, 9), Max: sz(10, 11), Required: true, Priority: 1,
			Floor: WoodPine, FloorByClass: map[SocialClass]Material{Wealthy: WoodOak, Noble: Marble}},
		{ID: "bedroom", Name: "Bedroom", Function: Bedroom, Min: sz(5, 6), Preferred: sz(6, 7), Max: sz(7, 8), Required: true, Priority: 2,
			Floor: WoodPine},
		{ID: "storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(4, 3), Max: sz(5, 4), Priority: 3,
			Floor: StoneLimestone},
	},
	HouseLarge: {
		{ID: "main_hall", Name: "Main Hall", Function: Living, Min: sz(6, 7), Preferred: sz(8, 8), Max: sz(10, 10), Required: true, Priority: 1,
			Floor: WoodOak, FloorByClass: map[SocialClass]Material{Poor: WoodPine, Noble: Marble}},
		{ID: "kitchen", Name: "Kitchen", Function: Kitchen, Min: sz(6, 7), Preferred: sz(7, 8), Max: sz(8, 9), Required: true, Priority: 2,
			Floor: StoneLimestone, FloorByClass: map[SocialClass]Material{Wealthy: BrickFired, Noble: BrickFired}},
		{ID: "master_bedroom", Name: "Master Bedroom", Function: Bedroom, Min: sz(6, 7), Preferred: sz(8, 8), Max: sz(9, 9), Required: true, Priority: 3,
			Floor: WoodOak},
		{ID: "secondary_bedroom", Name: "Bedroom", Function: Bedroom, Min: sz(5, 5), Preferred: sz(5, 6), Max: sz(6, 6), Priority: 4,
			Floor: WoodPine},
		{ID: "storage", Name: "Storage", Function: Storage, Min: sz(2, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 5,
			Floor: StoneLimestone},
	},
	Tavern: {
		{ID: "common_room", Name: "Common Room", Function: TavernHall, Min: sz(10, 10), Preferred: sz(12, 12), Max: sz(15, 15), Required: true, Priority: 1,
			Floor: WoodOak},
		{ID: "kitchen", Name: "Kitchen", Function: Kitchen, Min: sz(6, 6), Preferred: sz(7, 7), Max: sz(8, 8), Required: true, Priority: 2,
			Floor: BrickFired},
		{ID: "guest_room", Name: "Guest Room", Function: GuestRoom, Min: sz(5, 5), Preferred: sz(5, 6), Max: sz(6, 6), Priority: 3,
			Floor: WoodPine},
		{ID: "private_quarters", Name: "Private Quarters", Function: Bedroom, Min: sz(3, 4), Preferred: sz(4, 4), Max: sz(5, 5), Required: true, Priority: 4,
			Floor: WoodPine},
		{ID: "cellar", Name: "Cellar", Function: Cellar, Min: sz(3, 3), Preferred: sz(4, 4), Max: sz(5, 5), Priority: 5,
			Floor: StoneLimestone},
	},
	Blacksmith: {
		{ID: "workshop", Name: "Forge Workshop", Function: Workshop, Min: sz(8, 8), Preferred: sz(10, 9), Max: sz(12, 10), Required: true, Priority: 1,
			Floor: BrickFired, FloorByClass: map[SocialClass]Material{Poor: StoneLimestone}},
		{ID: "storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Required: true, Priority: 2,
			Floor: StoneLimestone},
		{ID: "living_quarters", Name: "Living Quarters", Function: Bedroom, Min: sz(3, 4), Preferred: sz(4, 4), Max: sz(5, 5), Priority: 3,
			Floor: WoodPine},
	},
	Shop: {
		{ID: "shop_floor", Name: "Shop Floor", Function: ShopFloor, Min: sz(8, 7), Preferred: sz(10, 8), Max: sz(12, 10), Required: true, Priority: 1,
			Floor: WoodOak},
		{ID: "storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Required: true, Priority: 2,
			Floor: StoneLimestone},
		{ID: "office", Name: "Office", Function: Office, Min: sz(2, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 3,
			Floor: WoodPine},
	},
	MarketStall: {
		{ID: "stall", Name: "Market Stall", Function: ShopFloor, Min: sz(4, 3), Preferred: sz(5, 4), Max: sz(6, 5), Required: true, Priority: 1,
			Floor: WoodPine},
	},
}

var upperPrograms = map[BuildingType][]RoomTemplate{
	HouseSmall: {
		{ID: "loft", Name: "Loft", Function: Bedroom, Min: sz(4, 4), Preferred: sz(5, 5), Max: sz(8, 8), Required: true, Priority: 1,
			Floor: WoodPine},
		{ID: "loft_storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 2,
			Floor: WoodPine},
	},
	HouseLarge: {
		{ID: "upper_bedroom", Name: "Bedroom", Function: Bedroom, Min: sz(5, 5), Preferred: sz(6, 6), Max: sz(8, 8), Required: true, Priority: 1,
			Floor: WoodOak, FloorByClass: map[SocialClass]Material{Poor: WoodPine}},
		{ID: "secondary_bedroom", Name: "Bedroom", Function: Bedroom, Min: sz(5, 5), Preferred: sz(5, 6), Max: sz(6, 6), Priority: 2,
			Floor: WoodPine},
		{ID: "study", Name: "Study", Function: Study, Min: sz(4, 4), Preferred: sz(5, 5), Max: sz(6, 6), Priority: 3,
			Floor: WoodOak},
		{ID: "storage", Name: "Storage", Function: Storage, Min: sz(2, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 4,
			Floor: WoodPine},
	},
	Tavern: {
		{ID: "guest_room_a", Name: "Guest Room", Function: GuestRoom, Min: sz(5, 5), Preferred: sz(5, 6), Max: sz(6, 6), Required: true, Priority: 1,
			Floor: WoodPine},
		{ID: "guest_room_b", Name: "Guest Room", Function: GuestRoom, Min: sz(5, 5), Preferred: sz(5, 6), Max: sz(6, 6), Priority: 2,
			Floor: WoodPine},
		{ID: "guest_room_c", Name: "Guest Room", Function: GuestRoom, Min: sz(5, 5), Preferred: sz(5, 6), Max: sz(6, 6), Priority: 3,
			Floor: WoodPine},
		{ID: "linen_storage", Name: "Linen Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 4,
			Floor: WoodPine},
	},
	Blacksmith: {
		{ID: "smith_quarters", Name: "Smith's Quarters", Function: Bedroom, Min: sz(3, 4), Preferred: sz(4, 4), Max: sz(5, 5), Required: true, Priority: 1,
			Floor: WoodPine},
		{ID: "upper_storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 2,
			Floor: WoodPine},
	},
	Shop: {
		{ID: "shopkeeper_quarters", Name: "Shopkeeper's Quarters", Function: Bedroom, Min: sz(4, 4), Preferred: sz(5, 5), Max: sz(6, 6), Required: true, Priority: 1,
			Floor: WoodPine},
		{ID: "ledger_room", Name: "Ledger Room", Function: Office, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 2,
			Floor: WoodPine},
		{ID: "upper_storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(3, 3), Max: sz(4, 4), Priority: 3,
			Floor: WoodPine},
	},
}

var basementProgram = []RoomTemplate{
	{ID: "cellar", Name: "Cellar", Function: Cellar, Min: sz(3, 3), Preferred: sz(6, 6), Max: sz(10, 10), Required: true, Priority: 1,
		Floor: StoneLimestone},
	{ID: "root_storage", Name: "Storage", Function: Storage, Min: sz(3, 3), Preferred: sz(4, 4), Max: sz(5, 5), Priority: 2,
		Floor: StoneLimestone},
}

// RoomProgram returns a copy of the room templates for one floor level of an
// archetype. Level 0 is the ground floor, negative levels are basements.
func RoomProgram(b BuildingType, level int) []RoomTemplate {
	var src []RoomTemplate
	switch {
	case level < 0:
		src = basementProgram
	case level == 0:
		src = groundPrograms[b]
	default:
		src = upperPrograms[b]
	}
	out := make([]RoomTemplate, len(src))
	copy(out, src)
	return out
}

// LevelFallback returns the single room used when a level's program cannot
// be packed.
func LevelFallback(b BuildingType, level int) (RoomFunction, string) {
	switch {
	case level < 0:
		return Cellar, "Cellar"
	case level > 0:
		return Bedroom, "Upper Chamber"
	}
	if a, ok := archetypes[b]; ok {
		return a.Fallback, a.FallbackName
	}
	return Living, "Main Room"
}

// DefaultFloorMaterial is the surface of a fallback room.
func DefaultFloorMaterial(f RoomFunction, c SocialClass) Material {
	switch f {
	case Cellar, Storage:
		return StoneLimestone
	case Workshop, Kitchen:
		return BrickFired
	}
	switch c {
	case Wealthy:
		return WoodOak
	case Noble:
		return Marble
	}
	return WoodPine
}
