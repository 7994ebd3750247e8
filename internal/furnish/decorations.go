package furnish

import (
	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// MaxDecorations bounds the budgeted decorations of one room.
const MaxDecorations = 5

// minLightPerTile is the summed decoration light a room needs per tile of
// its bounds before an extra candle is added.
const minLightPerTile = 2

// Decorations lights the room with its class's essential light, buys
// decorations by value within the room's budget and adds a candle to rooms
// left too dark.
func Decorations(r plan.Room, in Input) plan.Room {
	out := r.Clone()
	g := occupancy(out, in)
	st := in.stream(decorationStream)
	draw := 0
	place := func(d catalog.DecorationTemplate, p catalog.Placement) bool {
		draw++
		rect, ok := pick(g, d.Size, p, st, draw)
		if !ok {
			return false
		}
		g.Mark(rect)
		out.Decorations = append(out.Decorations, plan.Decoration{
			Item: plan.Item{
				ID:        itemID(out.ID, d.ID, len(out.Decorations)),
				Asset:     d.ID,
				X:         rect.X,
				Y:         rect.Y,
				Width:     rect.W,
				Height:    rect.H,
				Placement: p,
			},
			Cost:       d.Cost,
			Comfort:    d.Comfort,
			LightLevel: d.LightLevel,
			Ceiling:    d.Ceiling,
		})
		return true
	}

	if len(out.Decorations) == 0 {
		l := catalog.EssentialLight(in.Class)
		place(l, l.Placement)
	}
	budget := catalog.DecorationBudget(in.Class, out.Function)
	for _, d := range catalog.Decorations(in.filter(out)) {
		if len(out.Decorations) >= MaxDecorations {
			break
		}
		if d.Cost > budget {
			continue
		}
		if place(d, d.Placement) {
			budget -= d.Cost
		}
	}

	total := 0
	for _, d := range out.Decorations {
		total += d.LightLevel
	}
	if total < out.Bounds.Area()*minLightPerTile {
		if candle, ok := catalog.GetDecoration("simple_candle"); ok {
			place(candle, catalog.Anywhere)
		}
	}
	return out
}
