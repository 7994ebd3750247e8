package building

import (
	"fmt"
	"math"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/geom"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
)

const (
	// MaxBuildingSide caps either side of the outer building footprint.
	MaxBuildingSide = 40
	// MinBuildingSide keeps a 3x3 usable area inside the outer wall ring.
	MinBuildingSide = 5
	// lotMargin is the free yard kept on each side of the building.
	lotMargin = 1
)

// settings are the resolved optional inputs.
type settings struct {
	lot       geom.Size
	stories   int
	basement  bool
	climate   catalog.Climate
	age       int
	condition catalog.Condition
	season    catalog.Season
}

// resolve fills every omitted option from the defaults stream. Each option
// has its own draw index so supplying one never shifts another.
func resolve(o Options, a *catalog.Archetype) (settings, []plan.Issue) {
	s := rng.New(o.Seed).Sub(defaultsStream)
	var issues []plan.Issue
	var st settings

	if o.LotSize != nil {
		st.lot = geom.Size{W: o.LotSize.Width, H: o.LotSize.Height}
	} else {
		st.lot = LotFor(a, o.SocialClass, rng.New(o.Seed).Sub(lotStream))
	}

	if o.Stories != nil {
		st.stories = *o.Stories
	} else {
		st.stories = a.BaseStories
		if s.Chance(0, a.ExtraStoryChance) {
			st.stories++
		}
	}
	if st.stories > a.MaxStories {
		issues = append(issues, plan.Warn("STORIES_CLAMPED",
			fmt.Sprintf("%s allows at most %d stories, %d requested", a.DisplayName, a.MaxStories, st.stories)))
		st.stories = a.MaxStories
	}
	st.stories = max(1, st.stories)

	if o.Basement != nil {
		st.basement = *o.Basement
	} else {
		st.basement = s.Chance(1, a.BasementChance)
	}

	if o.Climate != nil {
		st.climate = *o.Climate
	} else {
		all := catalog.Climates()
		st.climate = all[s.Intn(2, len(all))]
	}

	if o.Age != nil {
		st.age = *o.Age
	} else {
		st.age = s.Range(3, 0, 120)
	}
	if o.Condition != nil {
		st.condition = *o.Condition
	} else {
		st.condition = catalog.ConditionForAge(st.age)
	}

	if o.Season != nil {
		st.season = *o.Season
	} else {
		all := catalog.Seasons()
		st.season = all[s.Intn(4, len(all))]
	}
	return st, issues
}

// LotFor draws lot sides from the archetype's lot range scaled by class.
// Each side is at least the archetype's smallest building plus the yard
// margin on both sides.
func LotFor(a *catalog.Archetype, c catalog.SocialClass, s rng.Stream) geom.Size {
	m := catalog.LotMultiplier(c)
	lo := int(math.Round(float64(a.Lot.Min) * m))
	hi := int(math.Round(float64(a.Lot.Max) * m))
	minW, minH := a.Width.Min+2*lotMargin, a.Height.Min+2*lotMargin
	return geom.Size{
		W: s.Range(0, max(lo, minW), max(hi, minW)),
		H: s.Range(1, max(lo, minH), max(hi, minH)),
	}
}

// FootprintFor places the outer building rectangle on the lot. The building
// covers 60 to 80 percent of each lot side, kept inside the archetype's
// range where the lot allows it.
func FootprintFor(a *catalog.Archetype, lot geom.Size, s rng.Stream) (geom.Rect, []plan.Issue) {
	cov := 0.6 + 0.2*s.Float(0)
	w := side(int(float64(lot.W)*cov), a.Width, lot.W)
	h := side(int(float64(lot.H)*cov), a.Height, lot.H)

	var issues []plan.Issue
	if w < a.Width.Min || h < a.Height.Min {
		issues = append(issues, plan.Warn("BUILDING_BELOW_MINIMUM",
			fmt.Sprintf("lot %dx%d only fits a %dx%d building, %s needs %dx%d",
				lot.W, lot.H, w, h, a.DisplayName, a.Width.Min, a.Height.Min)))
	}
	if w > lot.W-2*lotMargin || h > lot.H-2*lotMargin {
		issues = append(issues, plan.Warn("BUILDING_EXCEEDS_LOT",
			fmt.Sprintf("%dx%d building leaves no yard on a %dx%d lot", w, h, lot.W, lot.H)))
	}
	return geom.R(offset(s, 1, lot.W, w), offset(s, 2, lot.H, h), w, h), issues
}

func side(v int, r catalog.Range, lot int) int {
	v = min(r.Clamp(v), lot-2*lotMargin, MaxBuildingSide)
	return max(v, MinBuildingSide)
}

func offset(s rng.Stream, draw, lot, size int) int {
	if lot-size-lotMargin < lotMargin {
		return max(0, (lot-size)/2)
	}
	return s.Range(draw, lotMargin, lot-size-lotMargin)
}

// chooseMaterials draws the wall, roof and foundation materials from the
// class's weighted lists.
func chooseMaterials(c catalog.SocialClass, s rng.Stream) plan.Materials {
	set, ok := catalog.Materials(c)
	if !ok {
		return plan.Materials{Wall: catalog.Wood, Roof: catalog.Thatch, Foundation: catalog.Stone}
	}
	return plan.Materials{
		Wall:       set.Wall[s.Intn(0, len(set.Wall))],
		Roof:       set.Roof[s.Intn(1, len(set.Roof))],
		Foundation: set.Foundation[s.Intn(2, len(set.Foundation))],
	}
}
