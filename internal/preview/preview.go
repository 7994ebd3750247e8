// Package preview draws building floors as ASCII maps for inspecting
// generated plans in a terminal.
package preview

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// ErrNoFloor is returned when a plan has no floor at the requested level.
var ErrNoFloor = errors.New("preview: no such floor")

// Options select what is drawn over the room grid.
type Options struct {
	Furniture bool
	// Light replaces empty floor tiles with their light level, 0 to 9.
	Light bool
}

const (
	cellOutside  = ' '
	cellWall     = '#'
	cellFloor    = '.'
	cellHall     = ','
	cellDoor     = '/'
	cellWindow   = '='
	cellStair    = 'S'
	cellUp       = '^'
	cellDown     = 'v'
	cellPillar   = 'o'
	cellChimney  = 'C'
	cellFixture  = 'F'
	cellAnchor   = 'T'
	cellSeat     = 'h'
	cellOrnament = '*'
)

// canvas is a character grid over a floor's outer bounds.
type canvas struct {
	bounds geom.Rect
	cells  [][]byte
}

func newCanvas(r geom.Rect) *canvas {
	c := &canvas{bounds: r, cells: make([][]byte, r.H)}
	for y := range c.cells {
		c.cells[y] = []byte(strings.Repeat(string(cellOutside), r.W))
	}
	return c
}

func (c *canvas) set(p geom.Point, b byte) {
	if c.bounds.Contains(p) {
		c.cells[p.Y-c.bounds.Y][p.X-c.bounds.X] = b
	}
}

func (c *canvas) get(p geom.Point) byte {
	if !c.bounds.Contains(p) {
		return 0
	}
	return c.cells[p.Y-c.bounds.Y][p.X-c.bounds.X]
}

func (c *canvas) fill(r geom.Rect, b byte) {
	for _, p := range r.Intersect(c.bounds).Points() {
		c.set(p, b)
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Grid returns just the map of one floor, one line per row.
func Grid(p plan.BuildingPlan, level int, opts Options) (string, error) {
	f, ok := p.Floor(level)
	if !ok {
		return "", fmt.Errorf("%w: level %d", ErrNoFloor, level)
	}
	return draw(p, f, opts).String(), nil
}

func draw(p plan.BuildingPlan, f *plan.Floor, opts Options) *canvas {
	fp := f.Footprint
	c := newCanvas(fp.Outer)
	for _, pt := range fp.Outer.Points() {
		if fp.Outer.OnPerimeter(pt) {
			c.set(pt, cellWall)
		}
	}
	for _, h := range f.Hallways {
		c.fill(h.Bounds, cellHall)
	}
	for _, r := range f.Rooms {
		for _, t := range r.Tiles {
			b := byte(cellFloor)
			if t.Kind == plan.TileWall {
				b = cellWall
			}
			c.set(geom.Pt(t.X, t.Y), b)
		}
		for _, w := range r.Windows {
			c.set(w.Point(), cellWindow)
		}
		for _, d := range r.Doors {
			c.set(d.Point(), cellDoor)
		}
	}
	for _, w := range p.Walls {
		if w.Floor == f.Level && w.Kind == plan.WallExterior {
			for _, o := range w.Openings {
				c.set(o.Point(), cellDoor)
			}
		}
	}

	for _, sf := range fp.Features {
		switch sf.Kind {
		case plan.FeatureStaircase:
			c.fill(sf.Bounds, cellStair)
		case plan.FeatureSupportPillar:
			c.fill(sf.Bounds, cellPillar)
		case plan.FeatureChimney:
			c.fill(sf.Bounds, cellChimney)
		}
	}
	for _, sc := range p.Staircases {
		if !slices.Contains(sc.Serves, f.Level) {
			continue
		}
		for _, a := range sc.Access {
			if a.Level != f.Level {
				continue
			}
			b := byte(cellUp)
			if a.Direction == "down" {
				b = cellDown
			}
			c.set(geom.Pt(a.X, a.Y), b)
		}
	}

	if opts.Furniture {
		for _, r := range f.Rooms {
			for _, fx := range r.Fixtures {
				c.fill(fx.Bounds(), cellFixture)
			}
			for _, fu := range r.Furniture {
				b := byte(cellAnchor)
				if fu.AnchorID != "" {
					b = cellSeat
				}
				c.fill(fu.Bounds(), b)
			}
			for _, d := range r.Decorations {
				c.fill(d.Bounds(), cellOrnament)
			}
		}
	}

	if opts.Light {
		for _, r := range f.Rooms {
			in := r.Interior()
			for _, pt := range in.Points() {
				if c.get(pt) == cellFloor {
					c.set(pt, shade(r.Lighting.At(in, pt)))
				}
			}
		}
	}
	return c
}

// shade maps a light level in [0,1] to a digit.
func shade(v float64) byte {
	d := int(math.Round(max(0, min(1, v)) * 9))
	return byte('0' + d)
}

// Floor renders one floor with a heading and its room details.
func Floor(p plan.BuildingPlan, level int, opts Options) (string, error) {
	f, ok := p.Floor(level)
	if !ok {
		return "", fmt.Errorf("%w: level %d", ErrNoFloor, level)
	}
	var out strings.Builder
	out.WriteString(fmt.Sprintf("Floor %d (%s)\n", f.Level, levelName(f.Level)))
	out.WriteString(strings.Repeat("-", 40) + "\n")
	out.WriteString(draw(p, f, opts).String())

	out.WriteString("\nRoom Details:\n")
	for _, r := range f.Rooms {
		details := fmt.Sprintf("  %-24s %-20s (%d,%d) %dx%d", truncate(r.ID, 24), truncate(r.Name, 20),
			r.Bounds.X, r.Bounds.Y, r.Bounds.W, r.Bounds.H)
		var markers []string
		if len(r.Stairs) > 0 {
			markers = append(markers, "stairs")
		}
		if len(r.Chimneys) > 0 {
			markers = append(markers, "chimney")
		}
		if r.Lighting != nil {
			markers = append(markers, r.Lighting.Atmosphere)
		}
		if len(markers) > 0 {
			details += " [" + strings.Join(markers, ", ") + "]"
		}
		out.WriteString(details + "\n")
	}
	for _, h := range f.Hallways {
		out.WriteString(fmt.Sprintf("  %-24s %-20s connects %s\n", truncate(h.ID, 24), h.Kind, strings.Join(h.Connects, ", ")))
	}
	return out.String(), nil
}

// Plan renders every floor of p, lowest first, under a plan heading.
func Plan(p plan.BuildingPlan, opts Options) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("Building %s (%s, %s, seed %d)\n", p.ID, p.Metadata.BuildingType, p.Metadata.SocialClass, p.Metadata.Seed))
	out.WriteString(fmt.Sprintf("Lot %dx%d, building %dx%d at (%d,%d)\n",
		p.Lot.W, p.Lot.H, p.Building.W, p.Building.H, p.Building.X, p.Building.Y))
	out.WriteString(strings.Repeat("=", 60) + "\n\n")
	for _, l := range p.Levels() {
		s, _ := Floor(p, l, opts)
		out.WriteString(s)
		out.WriteString("\n")
	}
	return out.String()
}

func levelName(level int) string {
	switch {
	case level < 0:
		return "basement"
	case level == 0:
		return "ground"
	}
	return "upper"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Legend explains the map symbols.
func Legend() string {
	return `
Legend:
  #   Wall
  .   Floor
  ,   Hallway
  /   Door
  =   Window
  S   Staircase
  ^ v Stair access up / down
  o   Support pillar
  C   Chimney flue
  F   Fixture
  T   Furniture
  h   Seat at a table or desk
  *   Decoration
  0-9 Light level (with -light)
`
}
