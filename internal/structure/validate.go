package structure

import (
	"fmt"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
)

// Validate checks stacked footprints, lowest level first. Every check runs;
// issues are aggregated rather than returned at the first failure.
func Validate(b catalog.BuildingType, fps []plan.Footprint) []plan.Issue {
	var issues []plan.Issue
	arch, _ := catalog.GetArchetype(b)

	for i, fp := range fps {
		if arch != nil {
			m := arch.Structure.MinUsable
			if fp.Usable.W < m.W || fp.Usable.H < m.H {
				issues = append(issues, plan.Warn("FOOTPRINT_BELOW_MINIMUM",
					fmt.Sprintf("floor %d usable area %dx%d is below the %dx%d minimum", fp.Level, fp.Usable.W, fp.Usable.H, m.W, m.H)))
			}
		}
		if i == 0 {
			continue
		}
		below := fps[i-1]
		if fp.Level > 0 && (fp.Usable.W > below.Usable.W || fp.Usable.H > below.Usable.H) {
			issues = append(issues, plan.Warn("FOOTPRINT_NOT_MONOTONIC",
				fmt.Sprintf("floor %d (%dx%d) is larger than floor %d (%dx%d)",
					fp.Level, fp.Usable.W, fp.Usable.H, below.Level, below.Usable.W, below.Usable.H)))
		}
	}

	if len(fps) > 1 {
		served := make(map[int]bool)
		for _, fp := range fps {
			for _, f := range fp.FeaturesOf(plan.FeatureStaircase) {
				for _, l := range f.Serves {
					served[l] = true
				}
			}
		}
		if len(served) == 0 {
			issues = append(issues, plan.Warn("STAIRCASE_MISSING",
				fmt.Sprintf("%d floors but no staircase", len(fps))))
		} else {
			for _, fp := range fps {
				if !served[fp.Level] {
					issues = append(issues, plan.Warn("STAIRCASE_OMITTED",
						fmt.Sprintf("staircase shaft does not fit inside floor %d", fp.Level)))
				}
			}
		}
	}

	issues = append(issues, checkAlignment(fps)...)
	return issues
}

// checkAlignment confirms every stair and chimney feature has a congruent
// counterpart on every level it claims to serve.
func checkAlignment(fps []plan.Footprint) []plan.Issue {
	byLevel := make(map[int]plan.Footprint, len(fps))
	for _, fp := range fps {
		byLevel[fp.Level] = fp
	}
	var issues []plan.Issue
	for _, fp := range fps {
		for _, f := range fp.Features {
			if f.Kind != plan.FeatureStaircase && f.Kind != plan.FeatureChimney {
				continue
			}
			for _, l := range f.Serves {
				if l == fp.Level {
					continue
				}
				other, ok := byLevel[l]
				if !ok || !hasCongruent(other, f) {
					issues = append(issues, plan.Warn("FEATURE_MISALIGNED",
						fmt.Sprintf("%s on floor %d has no match on floor %d", f.ID, fp.Level, l)))
				}
			}
		}
	}
	return issues
}

func hasCongruent(fp plan.Footprint, f plan.StructuralFeature) bool {
	for _, o := range fp.Features {
		if o.ID == f.ID && o.Kind == f.Kind && o.Bounds == f.Bounds {
			return true
		}
	}
	return false
}
