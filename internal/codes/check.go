package codes

import (
	"fmt"
	"math"

	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// Violation is one failed rule.
type Violation struct {
	Code           string   `yaml:"code"`
	RoomID         string   `yaml:"room_id,omitempty"`
	Severity       Severity `yaml:"severity"`
	Description    string   `yaml:"description"`
	Recommendation string   `yaml:"recommendation"`
	Current        float64  `yaml:"current_value"`
	Required       float64  `yaml:"required_value"`
}

// Compliance holds rounded pass percentages.
type Compliance struct {
	Mandatory   int `yaml:"mandatory"`
	Recommended int `yaml:"recommended"`
	Overall     int `yaml:"overall"`
}

// Summary counts evaluated and passed checks.
type Summary struct {
	TotalCodes        int `yaml:"total_codes"`
	Checks            int `yaml:"checks"`
	MandatoryPassed   int `yaml:"mandatory_passed"`
	RecommendedPassed int `yaml:"recommended_passed"`
	OptionalPassed    int `yaml:"optional_passed"`
}

// Report is the outcome of a compliance check.
type Report struct {
	Violations []Violation `yaml:"violations"`
	Compliance Compliance  `yaml:"compliance"`
	Summary    Summary     `yaml:"summary"`
}

// Mandatory returns the mandatory violations.
func (r Report) Mandatory() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == Mandatory {
			out = append(out, v)
		}
	}
	return out
}

type tally struct{ total, passed int }

func (t tally) percent() int {
	if t.total == 0 {
		return 100
	}
	return int(math.Round(float64(t.passed) / float64(t.total) * 100))
}

// Check evaluates every applicable rule against the plan. Room rules run
// per room in floor order, building rules once afterwards. The plan is not
// modified.
func Check(p plan.BuildingPlan) Report {
	applicable := RulesFor(p.Metadata.BuildingType, p.Metadata.SocialClass)
	tallies := map[Severity]*tally{Mandatory: {}, Recommended: {}, Optional: {}}
	var rep Report

	record := func(rule Rule, room *plan.Room, current float64) {
		t := tallies[rule.Severity]
		t.total++
		if current >= rule.Min {
			t.passed++
			return
		}
		v := Violation{
			Code:     rule.ID,
			Severity: rule.Severity,
			Current:  current,
			Required: rule.Min,
		}
		if room != nil {
			v.RoomID = room.ID
			v.Description = fmt.Sprintf("%s: %s", room.Name, rule.Description)
		} else {
			v.Description = "Building: " + rule.Description
		}
		v.Recommendation = recommend(rule, current)
		rep.Violations = append(rep.Violations, v)
	}

	for _, room := range p.Rooms() {
		for _, rule := range applicable {
			if rule.BuildingWide || (rule.applies != nil && !rule.applies(room)) {
				continue
			}
			record(rule, &room, rule.measure(room, &p))
		}
	}
	for _, rule := range applicable {
		if rule.BuildingWide {
			record(rule, nil, rule.measure(plan.Room{}, &p))
		}
	}

	m, r, o := tallies[Mandatory], tallies[Recommended], tallies[Optional]
	all := tally{m.total + r.total + o.total, m.passed + r.passed + o.passed}
	rep.Compliance = Compliance{Mandatory: m.percent(), Recommended: r.percent(), Overall: all.percent()}
	rep.Summary = Summary{
		TotalCodes:        len(applicable),
		Checks:            all.total,
		MandatoryPassed:   m.passed,
		RecommendedPassed: r.passed,
		OptionalPassed:    o.passed,
	}
	return rep
}

func recommend(rule Rule, current float64) string {
	missing := int(math.Ceil(rule.Min - current))
	switch rule.ID {
	case "MIN_BEDROOM_SIZE":
		return fmt.Sprintf("Expand bedroom to at least %g tiles. Current: %g tiles. Consider %d tiles in each direction.",
			rule.Min, current, int(math.Ceil((rule.Min-current)/2)))
	case "MIN_LIVING_AREA_SIZE":
		return fmt.Sprintf("Expand living area to at least %g tiles. Current: %g tiles. Consider combining adjacent rooms or extending the building.",
			rule.Min, current)
	case "MIN_KITCHEN_SIZE":
		return fmt.Sprintf("Expand kitchen to at least %g tiles. Current: %g tiles. Leave space for cooking, food preparation and storage.",
			rule.Min, current)
	case "KITCHEN_VENTILATION":
		return fmt.Sprintf("Add %d ventilation source(s). Install a window or chimney for proper airflow.", missing)
	case "BEDROOM_VENTILATION":
		return "Add at least one window for natural light and fresh air."
	case "WORKSHOP_VENTILATION":
		return fmt.Sprintf("Add %d more ventilation source(s). Critical for workshop safety and comfort.", missing)
	case "FIRE_SAFETY_EXITS":
		return fmt.Sprintf("Add %d more exit(s) for fire safety in this large room.", missing)
	case "STAIR_SAFETY":
		return fmt.Sprintf("Widen the staircase to at least %g tiles. Current width: %g tiles.", rule.Min, current)
	case "SANITATION_ACCESS":
		return fmt.Sprintf("Add %d sanitation facility (privy or garderobe) to the building.", missing)
	case "LOAD_BEARING_SUPPORT":
		return "Ensure load-bearing walls or supports carry every floor above ground."
	}
	return "Improve to meet code requirement: " + rule.Requirement
}
