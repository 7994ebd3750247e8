package furnish

import (
	"sort"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/grid"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

const (
	// anchorSlack is how far below the best score an anchor spot may be and
	// still be considered.
	anchorSlack = 5
	// independentChoices is how many of the best spots an independent item
	// chooses among.
	independentChoices = 3
	maxRoundSeats      = 4
)

// Furniture places the room's furniture program: anchors first with their
// satellites, then independent pieces.
func Furniture(r plan.Room, in Input) plan.Room {
	out := r.Clone()
	g := occupancy(out, in)
	st := in.stream(furnitureStream)
	interior := g.Bounds()
	program := catalog.FurnitureProgram(out.Function, interior.Area())

	p := &placer{room: &out, g: g, st: st, chair: catalog.ChairAsset(in.Class)}
	for _, spec := range program {
		if spec.Anchor() {
			p.anchor(spec)
		}
	}
	for _, spec := range program {
		if !spec.Anchor() {
			p.independent(spec)
		}
	}
	return out
}

type placer struct {
	room  *plan.Room
	g     *grid.Occupancy
	st    rng.Stream
	draw  int
	chair string
}

func (p *placer) next() int {
	p.draw++
	return p.draw
}

func (p *placer) add(asset, category string, r geom.Rect, rot int, pl catalog.Placement, anchorID string) plan.Furniture {
	f := plan.Furniture{
		Item: plan.Item{
			ID:        itemID(p.room.ID, asset, len(p.room.Furniture)),
			Asset:     asset,
			X:         r.X,
			Y:         r.Y,
			Width:     r.W,
			Height:    r.H,
			Rotation:  rot,
			Placement: pl,
		},
		Category: category,
		AnchorID: anchorID,
	}
	p.g.Mark(r)
	p.room.Furniture = append(p.room.Furniture, f)
	return f
}

type scoredSpot struct {
	rect  geom.Rect
	score int
}

// anchorScore rates an anchor spot by its free seats and its placement
// class.
func anchorScore(r, interior geom.Rect, pl catalog.Placement, seats int) int {
	score := seats * 10
	switch pl {
	case catalog.Center:
		score += max(0, 20-centerDistance(r, interior))
	case catalog.Wall, catalog.Corner:
		if len(touching(r, interior)) > 0 {
			score += 15
		}
	}
	return score
}

func (p *placer) anchor(spec catalog.FurnitureSpec) {
	interior := p.g.Bounds()
	var cands []scoredSpot
	best := -1
	for _, r := range spots(p.g, spec.Size, spec.Placement) {
		seats := 0
		if spec.Table != catalog.NotTable {
			seats = len(p.freeSeats(r))
			if seats == 0 {
				continue
			}
		}
		s := anchorScore(r, interior, spec.Placement, seats)
		cands = append(cands, scoredSpot{r, s})
		best = max(best, s)
	}
	var near []geom.Rect
	for _, c := range cands {
		if c.score >= best-anchorSlack {
			near = append(near, c.rect)
		}
	}
	if len(near) == 0 {
		logger.Debug("anchor skipped", "room", p.room.ID, "asset", spec.Asset)
		return
	}
	r := near[p.st.Intn(p.next(), len(near))]
	a := p.add(spec.Asset, spec.Category, r, 0, spec.Placement, "")

	switch {
	case spec.Table != catalog.NotTable:
		p.seat(a, spec.Table)
	case spec.Satellite != "":
		p.bedside(a, spec.Satellite)
	}
}

// seat is a free chair position beside a table and the rotation that faces
// the chair back at it.
type seat struct {
	at       geom.Point
	rotation int
}

// seats lists the tiles around r, north row first, then south, west and
// east.
func seats(r geom.Rect) []seat {
	var out []seat
	for x := r.X; x < r.MaxX(); x++ {
		out = append(out, seat{geom.Pt(x, r.Y-1), geom.South.Degrees()})
	}
	for x := r.X; x < r.MaxX(); x++ {
		out = append(out, seat{geom.Pt(x, r.MaxY()), geom.North.Degrees()})
	}
	for y := r.Y; y < r.MaxY(); y++ {
		out = append(out, seat{geom.Pt(r.X-1, y), geom.East.Degrees()})
	}
	for y := r.Y; y < r.MaxY(); y++ {
		out = append(out, seat{geom.Pt(r.MaxX(), y), geom.West.Degrees()})
	}
	return out
}

func (p *placer) freeSeats(r geom.Rect) []seat {
	var out []seat
	for _, s := range seats(r) {
		if p.g.Free(s.at) {
			out = append(out, s)
		}
	}
	return out
}

// seat places chairs around a table. Desks get one chair, round tables up
// to four and other tables half to three quarters of their free seats.
func (p *placer) seat(table plan.Furniture, kind catalog.TableKind) {
	free := p.freeSeats(table.Bounds())
	if len(free) == 0 {
		return
	}
	var chosen []seat
	switch kind {
	case catalog.Desk:
		chosen = free[:1]
		for _, s := range free {
			if s.at.Y == table.Y+table.Height {
				chosen = []seat{s}
				break
			}
		}
	case catalog.RoundTable:
		chosen = free[:min(maxRoundSeats, len(free))]
	default:
		share := 0.5 + 0.25*p.st.Float(p.next())
		n := max(1, int(float64(len(free))*share+0.5))
		d := p.next()
		p.draw += len(free)
		chosen = rng.Shuffle(p.st, d, free)[:min(n, len(free))]
	}
	for _, s := range chosen {
		if !p.g.Free(s.at) {
			continue
		}
		p.add(p.chair, "seating", geom.R(s.at.X, s.at.Y, 1, 1), s.rotation, catalog.Anywhere, table.ID)
	}
}

// bedside puts a satellite next to the head of a bed.
func (p *placer) bedside(bed plan.Furniture, asset string) {
	b := bed.Bounds()
	for y := b.Y; y < b.MaxY(); y++ {
		for _, x := range []int{b.X - 1, b.MaxX()} {
			if pt := geom.Pt(x, y); p.g.Free(pt) {
				p.add(asset, "storage", geom.R(x, y, 1, 1), 0, catalog.Anywhere, bed.ID)
				return
			}
		}
	}
}

// independentScore prefers spots against walls and more so in corners.
func independentScore(r, interior geom.Rect) int {
	score := 50
	if len(touching(r, interior)) > 0 {
		score += 30
	}
	if inCorner(r, interior) {
		score += 35
	}
	return score
}

func (p *placer) independent(spec catalog.FurnitureSpec) {
	interior := p.g.Bounds()
	var cands []scoredSpot
	for _, r := range spots(p.g, spec.Size, spec.Placement) {
		cands = append(cands, scoredSpot{r, independentScore(r, interior)})
	}
	if len(cands) == 0 {
		logger.Debug("furniture skipped", "room", p.room.ID, "asset", spec.Asset)
		return
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	c := cands[p.st.Intn(p.next(), min(independentChoices, len(cands)))]
	p.add(spec.Asset, spec.Category, c.rect, 0, spec.Placement, "")
}
