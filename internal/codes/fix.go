package codes

import (
	"fmt"

	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// FixResult describes what AutoFix changed.
type FixResult struct {
	Fixed int      `yaml:"fixed"`
	Notes []string `yaml:"notes"`
}

// AutoFix applies the automatic fixes for the report's mandatory
// violations and returns a new plan. A kitchen without ventilation gets a
// north window and a workshop with fewer than two ventilation sources gets
// an east door; each room is fixed at most once per rule. Every other
// mandatory violation is listed as needing a manual fix.
func AutoFix(p plan.BuildingPlan, rep Report) (plan.BuildingPlan, FixResult) {
	out := p.Clone()
	var res FixResult
	done := make(map[string]bool)

	for _, v := range rep.Mandatory() {
		room := findRoom(&out, v.RoomID)
		if room == nil {
			res.Notes = append(res.Notes, fmt.Sprintf("Manual fix required for the building: %s", v.Recommendation))
			continue
		}
		key := v.Code + "/" + room.ID
		if done[key] {
			continue
		}
		done[key] = true

		b := room.Bounds
		switch v.Code {
		case "KITCHEN_VENTILATION":
			if len(room.Windows) > 0 {
				continue
			}
			w := plan.Opening{X: b.X + 1, Y: b.Y, Facing: geom.North}
			if room.HasDoorNear(w.Point(), 0) {
				res.Notes = append(res.Notes, fmt.Sprintf("Manual fix required for %s: %s", room.Name, v.Recommendation))
				continue
			}
			room.Windows = append(room.Windows, w)
			res.Fixed++
			res.Notes = append(res.Notes, fmt.Sprintf("Added window to %s for ventilation", room.Name))
		case "WORKSHOP_VENTILATION":
			if len(room.Doors) >= 2 {
				continue
			}
			d := plan.Opening{X: b.MaxX() - 1, Y: b.Y + b.H/2, Facing: geom.East}
			if room.HasDoorNear(d.Point(), 0) || room.HasWindowAt(d.Point()) {
				res.Notes = append(res.Notes, fmt.Sprintf("Manual fix required for %s: %s", room.Name, v.Recommendation))
				continue
			}
			room.Doors = append(room.Doors, d)
			res.Fixed++
			res.Notes = append(res.Notes, fmt.Sprintf("Added door to %s for ventilation", room.Name))
		default:
			res.Notes = append(res.Notes, fmt.Sprintf("Manual fix required for %s: %s", room.Name, v.Recommendation))
		}
	}
	return out, res
}

func findRoom(p *plan.BuildingPlan, id string) *plan.Room {
	if id == "" {
		return nil
	}
	for i := range p.Floors {
		if r, ok := p.Floors[i].Room(id); ok {
			return r
		}
	}
	return nil
}
