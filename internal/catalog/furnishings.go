package catalog

import "github.com/lawnchairsociety/hearthplan/internal/geom"

// TableKind distinguishes tables by how they are seated.
type TableKind int

const (
	NotTable TableKind = iota
	DiningTable
	RoundTable
	WorkTable
	Desk
)

// FurnitureSpec is one required piece of furniture for a room function.
type FurnitureSpec struct {
	Category  string // table, seating, bed, storage, work, cooking, display, counter, barrel
	Asset     string
	Size      geom.Size
	Placement Placement
	Priority  int
	Table     TableKind
	// Satellite names the asset placed beside an anchor, such as a nightstand.
	Satellite string
}

// Anchor reports whether the item is placed before independents and may
// carry satellites.
func (s FurnitureSpec) Anchor() bool {
	return s.Table != NotTable || s.Category == "bed"
}

// FurnitureProgram lists the furniture a room of function f should receive.
// interiorArea is the room's floor area inside its walls.
func FurnitureProgram(f RoomFunction, interiorArea int) []FurnitureSpec {
	storage := FurnitureSpec{Category: "storage", Asset: "chest", Size: sz(1, 1), Placement: Wall, Priority: 2}
	switch f {
	case Living, CommonRoom:
		table := FurnitureSpec{Category: "table", Asset: "table_round", Size: sz(1, 1), Placement: Center, Priority: 1, Table: RoundTable}
		if interiorArea >= 16 {
			table = FurnitureSpec{Category: "table", Asset: "table_dining", Size: sz(2, 2), Placement: Center, Priority: 1, Table: DiningTable}
		}
		return []FurnitureSpec{table, storage}
	case Kitchen:
		return []FurnitureSpec{
			{Category: "table", Asset: "table_work", Size: sz(2, 1), Placement: Wall, Priority: 1, Table: WorkTable},
			{Category: "cooking", Asset: "cooking_pot", Size: sz(1, 1), Placement: Wall, Priority: 1},
			storage,
		}
	case Office, Study:
		return []FurnitureSpec{
			{Category: "table", Asset: "desk", Size: sz(2, 1), Placement: Wall, Priority: 1, Table: Desk},
			{Category: "storage", Asset: "bookshelf", Size: sz(1, 1), Placement: Wall, Priority: 2},
		}
	case Bedroom, GuestRoom:
		return []FurnitureSpec{
			{Category: "bed", Asset: "bed", Size: sz(1, 2), Placement: Wall, Priority: 1, Satellite: "nightstand"},
			storage,
		}
	case TavernHall:
		var out []FurnitureSpec
		if interiorArea >= 30 {
			out = append(out, FurnitureSpec{Category: "table", Asset: "table_dining", Size: sz(2, 2), Placement: Center, Priority: 1, Table: DiningTable})
		}
		if interiorArea >= 50 {
			out = append(out, FurnitureSpec{Category: "table", Asset: "table_dining", Size: sz(2, 2), Placement: Center, Priority: 1, Table: DiningTable})
		}
		return append(out, FurnitureSpec{Category: "barrel", Asset: "barrel_ale", Size: sz(1, 1), Placement: Corner, Priority: 2})
	case Workshop:
		return []FurnitureSpec{
			{Category: "table", Asset: "table_work", Size: sz(2, 1), Placement: Center, Priority: 1, Table: WorkTable},
			{Category: "work", Asset: "anvil", Size: sz(1, 1), Placement: Wall, Priority: 1},
			storage,
		}
	case ShopFloor:
		return []FurnitureSpec{
			{Category: "counter", Asset: "counter", Size: sz(3, 1), Placement: Wall, Priority: 1},
			{Category: "display", Asset: "display_shelf", Size: sz(1, 1), Placement: Wall, Priority: 2},
			{Category: "display", Asset: "display_shelf", Size: sz(1, 1), Placement: Wall, Priority: 2},
			storage,
		}
	case Storage:
		return []FurnitureSpec{
			storage,
			{Category: "storage", Asset: "crate", Size: sz(1, 1), Placement: Corner, Priority: 2},
			{Category: "barrel", Asset: "barrel", Size: sz(1, 1), Placement: Corner, Priority: 2},
		}
	case Cellar:
		return []FurnitureSpec{
			{Category: "barrel", Asset: "barrel", Size: sz(1, 1), Placement: Corner, Priority: 2},
			{Category: "barrel", Asset: "barrel", Size: sz(1, 1), Placement: Wall, Priority: 2},
			{Category: "storage", Asset: "shelf_cellar", Size: sz(1, 1), Placement: Wall, Priority: 2},
		}
	default:
		return []FurnitureSpec{storage}
	}
}

// ChairAsset returns the seat style used around tables for a class.
func ChairAsset(c SocialClass) string {
	switch c {
	case Poor:
		return "stool"
	case Wealthy:
		return "chair_cushioned"
	case Noble:
		return "chair_carved"
	default:
		return "chair_wooden"
	}
}

// FixtureTemplate is a permanent built-in element of a room.
type FixtureTemplate struct {
	ID        string
	Name      string
	Kind      string // hearth, privy, garderobe, niche, cupboard, alcove, oven, washbasin, well
	Size      geom.Size
	Placement Placement
	// Side pins a wall fixture to one wall when HasSide is set.
	Side         geom.Direction
	HasSide      bool
	Classes      []SocialClass
	Functions    []RoomFunction
	Priority     int // 1 essential, 2 important, 3 luxury
	NeedsChimney bool
	Light        string // light source id emitted by the fixture
}

var fixtureTemplates = []FixtureTemplate{
	{ID: "hearth_large", Name: "Large Stone Hearth", Kind: "hearth", Size: sz(2, 1), Placement: Wall,
		Classes: []SocialClass{Common, Wealthy, Noble}, Functions: []RoomFunction{Living, Kitchen, CommonRoom, TavernHall},
		Priority: 1, NeedsChimney: true, Light: "fireplace"},
	{ID: "hearth_small", Name: "Simple Hearth", Kind: "hearth", Size: sz(1, 1), Placement: Wall,
		Classes: []SocialClass{Poor, Common}, Functions: []RoomFunction{Living, Kitchen},
		Priority: 1, NeedsChimney: true, Light: "fireplace"},
	{ID: "privy_indoor", Name: "Indoor Privy", Kind: "privy", Size: sz(1, 1), Placement: Corner,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Bedroom, Living},
		Priority: 2},
	{ID: "garderobe", Name: "Garderobe", Kind: "garderobe", Size: sz(1, 2), Placement: Wall, Side: geom.North, HasSide: true,
		Classes: []SocialClass{Noble}, Functions: []RoomFunction{Bedroom},
		Priority: 2},
	{ID: "wall_niche", Name: "Wall Niche", Kind: "niche", Size: sz(1, 1), Placement: Wall,
		Classes: allClasses, Functions: []RoomFunction{Bedroom, Living, Kitchen, Storage},
		Priority: 3},
	{ID: "built_in_cupboard", Name: "Built-in Cupboard", Kind: "cupboard", Size: sz(2, 1), Placement: Wall,
		Classes: []SocialClass{Common, Wealthy, Noble}, Functions: []RoomFunction{Kitchen, Storage, Living},
		Priority: 2},
	{ID: "cellar_alcove", Name: "Cellar Alcove", Kind: "alcove", Size: sz(1, 1), Placement: Anywhere,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Cellar, Storage},
		Priority: 3},
	{ID: "bread_oven", Name: "Bread Oven", Kind: "oven", Size: sz(2, 2), Placement: Wall,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Kitchen},
		Priority: 2, NeedsChimney: true},
	{ID: "washbasin", Name: "Stone Washbasin", Kind: "washbasin", Size: sz(1, 1), Placement: Wall,
		Classes: []SocialClass{Common, Wealthy, Noble}, Functions: []RoomFunction{Kitchen, Bedroom},
		Priority: 2},
	{ID: "indoor_well", Name: "Indoor Well", Kind: "well", Size: sz(2, 2), Placement: Center,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Kitchen},
		Priority: 3},
}

// Fixtures returns the fixtures suitable for a class and room function,
// ordered by priority. Ties keep catalog order.
func Fixtures(f Filter) []FixtureTemplate {
	var out []FixtureTemplate
	for p := 1; p <= 3; p++ {
		for _, t := range fixtureTemplates {
			if t.Priority == p && hasClass(t.Classes, f.Class) && hasFunction(t.Functions, f.Function) {
				out = append(out, t)
			}
		}
	}
	return out
}

// GetFixture looks up a fixture template by id.
func GetFixture(id string) (FixtureTemplate, bool) {
	for _, t := range fixtureTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return FixtureTemplate{}, false
}

// DecorationTemplate is an optional ornament with a cost.
type DecorationTemplate struct {
	ID         string
	Name       string
	Size       geom.Size
	Placement  Placement
	Ceiling    bool
	Classes    []SocialClass
	Functions  []RoomFunction
	LightLevel int // 0-100
	Comfort    int // 0-100
	Cost       int
}

// Value orders decorations by what they add per coin.
func (d DecorationTemplate) Value() float64 {
	return float64(d.Comfort+d.LightLevel) / float64(max(1, d.Cost))
}

var decorationTemplates = []DecorationTemplate{
	{ID: "tapestry_noble", Name: "Noble Tapestry", Size: sz(2, 1), Placement: Wall,
		Classes: []SocialClass{Noble}, Functions: []RoomFunction{Living, Bedroom}, Comfort: 80, Cost: 500},
	{ID: "simple_banner", Name: "Simple Banner", Size: sz(1, 1), Placement: Wall,
		Classes: []SocialClass{Common, Wealthy}, Functions: []RoomFunction{Living, TavernHall}, Comfort: 30, Cost: 50},
	{ID: "persian_rug", Name: "Woven Rug", Size: sz(3, 2), Placement: Center,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Living, Bedroom}, Comfort: 70, Cost: 300},
	{ID: "rushes_floor", Name: "Floor Rushes", Size: sz(2, 2), Placement: Anywhere,
		Classes: []SocialClass{Poor, Common}, Functions: []RoomFunction{Living, TavernHall}, Comfort: 20, Cost: 5},
	{ID: "brass_chandelier", Name: "Brass Chandelier", Size: sz(2, 2), Placement: Center, Ceiling: true,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Living, TavernHall}, LightLevel: 85, Comfort: 60, Cost: 200},
	{ID: "wall_sconce", Name: "Wall Sconce", Size: sz(1, 1), Placement: Wall,
		Classes: []SocialClass{Common, Wealthy}, Functions: []RoomFunction{Living, Bedroom, TavernHall}, LightLevel: 40, Comfort: 25, Cost: 25},
	{ID: "simple_candle", Name: "Simple Candle", Size: sz(1, 1), Placement: Anywhere,
		Classes: []SocialClass{Poor, Common}, Functions: []RoomFunction{Bedroom, Kitchen, Storage}, LightLevel: 20, Comfort: 10, Cost: 2},
	{ID: "holy_shrine", Name: "Household Shrine", Size: sz(1, 1), Placement: Corner,
		Classes: []SocialClass{Common, Wealthy, Noble}, Functions: []RoomFunction{Bedroom, Living}, LightLevel: 10, Comfort: 40, Cost: 75},
	{ID: "herb_bundles", Name: "Drying Herbs", Size: sz(1, 1), Placement: Wall, Ceiling: true,
		Classes: []SocialClass{Poor, Common, Wealthy}, Functions: []RoomFunction{Kitchen}, Comfort: 15, Cost: 8},
	{ID: "decorative_beams", Name: "Carved Beams", Size: sz(3, 1), Placement: Anywhere, Ceiling: true,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Living, TavernHall}, Comfort: 50, Cost: 150},
	{ID: "mirror_polished", Name: "Polished Mirror", Size: sz(1, 1), Placement: Wall,
		Classes: []SocialClass{Wealthy, Noble}, Functions: []RoomFunction{Bedroom}, LightLevel: 15, Comfort: 45, Cost: 400},
}

// Decorations returns the decorations suitable for a class and function,
// most valuable first.
func Decorations(f Filter) []DecorationTemplate {
	var out []DecorationTemplate
	for _, d := range decorationTemplates {
		if hasClass(d.Classes, f.Class) && hasFunction(d.Functions, f.Function) {
			out = append(out, d)
		}
	}
	// insertion sort keeps catalog order among equal values
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Value() > out[j-1].Value(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// GetDecoration looks up a decoration template by id.
func GetDecoration(id string) (DecorationTemplate, bool) {
	for _, d := range decorationTemplates {
		if d.ID == id {
			return d, true
		}
	}
	return DecorationTemplate{}, false
}

// EssentialLight returns the decoration every room is lit with first.
func EssentialLight(c SocialClass) DecorationTemplate {
	id := "brass_chandelier"
	switch c {
	case Poor:
		id = "simple_candle"
	case Common:
		id = "wall_sconce"
	}
	d, _ := GetDecoration(id)
	return d
}

// DecorationBudget returns the coin budget for decorating one room.
func DecorationBudget(c SocialClass, f RoomFunction) int {
	base := map[SocialClass]float64{Poor: 20, Common: 100, Wealthy: 500, Noble: 1500}[c]
	mult := 1.0
	switch f {
	case Living:
		mult = 1.5
	case Bedroom:
		mult = 1.2
	case Kitchen:
		mult = 0.8
	case TavernHall:
		mult = 2.0
	case Storage:
		mult = 0.3
	case Workshop:
		mult = 0.5
	}
	return int(base*mult + 1e-9)
}

// LightSource is a kind of light with a reach in tiles.
type LightSource struct {
	ID        string
	Kind      string
	Radius    int
	Intensity float64
	Warm      bool
}

var lightSources = map[string]LightSource{
	"candle_simple":  {ID: "candle_simple", Kind: "candle", Radius: 2, Intensity: 0.3, Warm: true},
	"candle_quality": {ID: "candle_quality", Kind: "candle", Radius: 3, Intensity: 0.5},
	"brazier_iron":   {ID: "brazier_iron", Kind: "brazier", Radius: 4, Intensity: 0.8, Warm: true},
	"fireplace":      {ID: "fireplace", Kind: "fireplace", Radius: 6, Intensity: 1.0, Warm: true},
	"chandelier":     {ID: "chandelier", Kind: "chandelier", Radius: 8, Intensity: 0.9},
	"torch_wall":     {ID: "torch_wall", Kind: "torch", Radius: 3, Intensity: 0.6, Warm: true},
	"window_large":   {ID: "window_large", Kind: "window", Radius: 4, Intensity: 0.8},
}

// GetLightSource looks up a light source by id.
func GetLightSource(id string) (LightSource, bool) {
	l, ok := lightSources[id]
	return l, ok
}

// DecorationLight converts a decoration's light level into a source.
func DecorationLight(d DecorationTemplate) (LightSource, bool) {
	if d.LightLevel <= 0 {
		return LightSource{}, false
	}
	return LightSource{
		ID:        d.ID,
		Kind:      "decoration",
		Radius:    d.LightLevel/20 + 1,
		Intensity: float64(d.LightLevel) / 100,
	}, true
}

// PrimaryLight picks the main light of a room.
func PrimaryLight(c SocialClass, f RoomFunction) LightSource {
	gathering := f.IsGathering()
	switch {
	case c == Noble && gathering:
		return lightSources["chandelier"]
	case c == Wealthy && (gathering || f == Bedroom):
		return lightSources["fireplace"]
	case gathering || f == Workshop:
		return lightSources["brazier_iron"]
	case c == Poor:
		return lightSources["candle_simple"]
	default:
		return lightSources["candle_quality"]
	}
}

// SecondaryLight returns the extra light of larger rooms, if any.
func SecondaryLight(c SocialClass, area int) (LightSource, bool) {
	if area <= 16 || c == Poor {
		return LightSource{}, false
	}
	if c == Wealthy || c == Noble {
		return lightSources["candle_quality"], true
	}
	return lightSources["torch_wall"], true
}
