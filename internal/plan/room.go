package plan

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
)

// ErrRoomTooSmall is returned when a room cannot hold a wall ring and a floor.
var ErrRoomTooSmall = errors.New("plan: room must be at least 3x3")

// TileKind is the surface of one room tile.
type TileKind string

const (
	TileFloor TileKind = "floor"
	TileWall  TileKind = "wall"
)

// Tile is one cell of a room or hallway.
type Tile struct {
	X        int              `yaml:"x"`
	Y        int              `yaml:"y"`
	Kind     TileKind         `yaml:"kind"`
	Material catalog.Material `yaml:"material"`
}

// Opening is a door or window in a wall tile.
type Opening struct {
	X      int            `yaml:"x"`
	Y      int            `yaml:"y"`
	Facing geom.Direction `yaml:"facing"`
}

// Point returns the opening's tile.
func (o Opening) Point() geom.Point {
	return geom.Pt(o.X, o.Y)
}

// Item is the footprint shared by furniture, fixtures and decorations.
type Item struct {
	ID        string            `yaml:"id"`
	Asset     string            `yaml:"asset_ref"`
	X         int               `yaml:"x"`
	Y         int               `yaml:"y"`
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	Rotation  int               `yaml:"rotation"`
	Placement catalog.Placement `yaml:"placement"`
}

// Bounds returns the tiles covered by the item.
func (i Item) Bounds() geom.Rect {
	return geom.R(i.X, i.Y, i.Width, i.Height)
}

// Furniture is a placed piece of movable furniture.
type Furniture struct {
	Item     `yaml:",inline"`
	Category string `yaml:"category"`
	// AnchorID links a satellite, such as a chair, to its anchor.
	AnchorID string `yaml:"anchor_id,omitempty"`
}

// Fixture is a built-in element such as a hearth.
type Fixture struct {
	Item     `yaml:",inline"`
	Kind     string         `yaml:"kind"`
	WallSide geom.Direction `yaml:"wall_side"`
	Vented   bool           `yaml:"vented,omitempty"`
}

// Decoration is an ornament or light bought from the room's budget.
type Decoration struct {
	Item       `yaml:",inline"`
	Cost       int  `yaml:"cost"`
	Comfort    int  `yaml:"comfort"`
	LightLevel int  `yaml:"light_level,omitempty"`
	Ceiling    bool `yaml:"ceiling,omitempty"`
}

// Chimney is a flue serving a vented fixture.
type Chimney struct {
	X        int              `yaml:"x"`
	Y        int              `yaml:"y"`
	Material catalog.Material `yaml:"material"`
}

// StairAccess is where a staircase can be entered on one floor.
type StairAccess struct {
	StaircaseID string `yaml:"staircase_id"`
	Level       int    `yaml:"level"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Direction   string `yaml:"direction"`
	TargetLevel int    `yaml:"target_level"`
}

// Light is one emitter in a room.
type Light struct {
	ID        string  `yaml:"id"`
	Source    string  `yaml:"source"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Radius    int     `yaml:"radius"`
	Intensity float64 `yaml:"intensity"`
}

// Lighting is the computed light of a room. Map holds one row per interior
// row, each value in [0,1].
type Lighting struct {
	Sources    []Light     `yaml:"sources"`
	Map        [][]float64 `yaml:"light_map,flow"`
	Ambient    float64     `yaml:"ambient"`
	Atmosphere string      `yaml:"atmosphere"`
}

// At returns the light on an absolute tile inside interior.
func (l *Lighting) At(interior geom.Rect, p geom.Point) float64 {
	if l == nil || !interior.Contains(p) {
		return 0
	}
	y, x := p.Y-interior.Y, p.X-interior.X
	if y >= len(l.Map) || x >= len(l.Map[y]) {
		return 0
	}
	return l.Map[y][x]
}

// Room is a rectangular room whose border is wall and interior is floor.
type Room struct {
	ID            string               `yaml:"id"`
	Name          string               `yaml:"name"`
	Function      catalog.RoomFunction `yaml:"type"`
	Bounds        geom.Rect            `yaml:"bounds"`
	Floor         int                  `yaml:"floor"`
	FloorMaterial catalog.Material     `yaml:"floor_material"`
	Tiles         []Tile               `yaml:"tiles"`
	Doors         []Opening            `yaml:"doors"`
	Windows       []Opening            `yaml:"windows"`
	Furniture     []Furniture          `yaml:"furniture,omitempty"`
	Fixtures      []Fixture            `yaml:"fixtures,omitempty"`
	Decorations   []Decoration         `yaml:"decorations,omitempty"`
	Chimneys      []Chimney            `yaml:"chimneys,omitempty"`
	Lighting      *Lighting            `yaml:"lighting,omitempty"`
	Stairs        []StairAccess        `yaml:"stairs,omitempty"`
}

// NewRoom builds a room with its wall ring and floor tiles.
func NewRoom(id, name string, fn catalog.RoomFunction, bounds geom.Rect, level int, wall, floor catalog.Material) (Room, error) {
	if bounds.W < 3 || bounds.H < 3 {
		return Room{}, fmt.Errorf("%w: %s is %dx%d", ErrRoomTooSmall, id, bounds.W, bounds.H)
	}
	r := Room{
		ID:            id,
		Name:          name,
		Function:      fn,
		Bounds:        bounds,
		Floor:         level,
		FloorMaterial: floor,
		Tiles:         make([]Tile, 0, bounds.Area()),
	}
	for _, p := range bounds.Points() {
		t := Tile{X: p.X, Y: p.Y, Kind: TileFloor, Material: floor}
		if bounds.OnPerimeter(p) {
			t.Kind, t.Material = TileWall, wall
		}
		r.Tiles = append(r.Tiles, t)
	}
	return r, nil
}

// Interior returns the floor area inside the walls.
func (r Room) Interior() geom.Rect {
	return r.Bounds.Inset(1)
}

// Area returns the room's outer area in tiles.
func (r Room) Area() int {
	return r.Bounds.Area()
}

// HasDoorNear reports whether a door lies within dist tiles of p.
func (r Room) HasDoorNear(p geom.Point, dist int) bool {
	for _, d := range r.Doors {
		if d.Point().Chebyshev(p) <= dist {
			return true
		}
	}
	return false
}

// HasWindowAt reports whether a window occupies p.
func (r Room) HasWindowAt(p geom.Point) bool {
	for _, w := range r.Windows {
		if w.Point() == p {
			return true
		}
	}
	return false
}

// Items lists the footprints of everything placed in the room.
func (r Room) Items() []Item {
	out := make([]Item, 0, len(r.Furniture)+len(r.Fixtures)+len(r.Decorations))
	for _, f := range r.Fixtures {
		out = append(out, f.Item)
	}
	for _, f := range r.Furniture {
		out = append(out, f.Item)
	}
	for _, d := range r.Decorations {
		out = append(out, d.Item)
	}
	return out
}

// Clone returns a deep copy.
func (r Room) Clone() Room {
	c := r
	c.Tiles = cloneSlice(r.Tiles)
	c.Doors = cloneSlice(r.Doors)
	c.Windows = cloneSlice(r.Windows)
	c.Furniture = cloneSlice(r.Furniture)
	c.Fixtures = cloneSlice(r.Fixtures)
	c.Decorations = cloneSlice(r.Decorations)
	c.Chimneys = cloneSlice(r.Chimneys)
	c.Stairs = cloneSlice(r.Stairs)
	if r.Lighting != nil {
		l := *r.Lighting
		l.Sources = cloneSlice(l.Sources)
		l.Map = cloneSlice(l.Map)
		for i := range l.Map {
			l.Map[i] = cloneSlice(l.Map[i])
		}
		c.Lighting = &l
	}
	return c
}

// HallwayFeature is an ornament along a hallway.
type HallwayFeature struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Hallway is a corridor joining rooms on one floor.
type Hallway struct {
	ID       string           `yaml:"id"`
	Kind     string           `yaml:"kind"`
	Template string           `yaml:"template"`
	Floor    int              `yaml:"floor"`
	Bounds   geom.Rect        `yaml:"bounds"`
	Connects []string         `yaml:"connects,flow"`
	Tiles    []Tile           `yaml:"tiles"`
	Features []HallwayFeature `yaml:"features,omitempty"`
}

// Clone returns a deep copy.
func (h Hallway) Clone() Hallway {
	h.Connects = cloneSlice(h.Connects)
	h.Tiles = cloneSlice(h.Tiles)
	h.Features = cloneSlice(h.Features)
	return h
}

// Exterior holds everything outside the walls.
type Exterior struct {
	Features []ExteriorFeature `yaml:"features,omitempty"`
	Elements []ExteriorElement `yaml:"elements,omitempty"`
	Roof     Roof              `yaml:"roof"`
}

// Clone returns a deep copy.
func (e Exterior) Clone() Exterior {
	e.Features = cloneSlice(e.Features)
	e.Elements = cloneSlice(e.Elements)
	return e
}

// ExteriorFeature is a yard element in lot coordinates.
type ExteriorFeature struct {
	ID     string    `yaml:"id"`
	Kind   string    `yaml:"kind"`
	Bounds geom.Rect `yaml:"bounds"`
}

// ExteriorElement is an architectural element on the building shell.
type ExteriorElement struct {
	ID       string           `yaml:"id"`
	Kind     string           `yaml:"kind"`
	X        int              `yaml:"x"`
	Y        int              `yaml:"y"`
	Floor    int              `yaml:"floor"`
	Material catalog.Material `yaml:"material"`
}

// Roof covers the top floor.
type Roof struct {
	Type     string           `yaml:"type"`
	Material catalog.Material `yaml:"material"`
	Pitch    int              `yaml:"pitch"`
	Covers   geom.Rect        `yaml:"covers"`
}
