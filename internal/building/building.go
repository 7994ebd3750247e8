// Package building composes the generation pipeline: it validates the
// options, sizes the lot and footprint, stacks the floors, packs and
// connects the rooms, resolves stairs and walls, furnishes every room and
// lays out the yard.
package building

import (
	"fmt"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/furnish"
	"github.com/lawnchairsociety/hearthplan/internal/hallway"
	"github.com/lawnchairsociety/hearthplan/internal/layout"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/rng"
	"github.com/lawnchairsociety/hearthplan/internal/stairs"
	"github.com/lawnchairsociety/hearthplan/internal/structure"
	"github.com/lawnchairsociety/hearthplan/internal/walls"
)

// Stream offsets from the plan seed. Floors and rooms add their level or
// building-wide room index to their base.
const (
	lotStream       = 0
	footprintStream = 1
	materialStream  = 2
	structureStream = 3
	exteriorStream  = 4
	defaultsStream  = 5
	floorStream     = 200
	roomStream      = 1000
)

// Generate builds the plan for o. Invalid options are the only error; every
// other problem is reported as an issue on the returned plan.
func Generate(o Options) (plan.BuildingPlan, error) {
	if err := o.Validate(); err != nil {
		return plan.BuildingPlan{}, err
	}
	arch, ok := catalog.GetArchetype(o.BuildingType)
	if !ok {
		return plan.BuildingPlan{}, fmt.Errorf("%w: no archetype for %s", ErrInvalidOptions, o.BuildingType)
	}

	st, issues := resolve(o, arch)
	root := rng.New(o.Seed)
	bounds, more := FootprintFor(arch, st.lot, root.Sub(footprintStream))
	issues = append(issues, more...)
	mats := chooseMaterials(o.SocialClass, root.Sub(materialStream))

	p := plan.BuildingPlan{
		ID: fmt.Sprintf("building_%d", o.Seed),
		Metadata: plan.Metadata{
			BuildingType:      o.BuildingType,
			SocialClass:       o.SocialClass,
			Seed:              o.Seed,
			Climate:           st.climate,
			Season:            st.season,
			Age:               st.age,
			Condition:         st.condition,
			Stories:           st.stories,
			Basement:          st.basement,
			CulturalInfluence: o.CulturalInfluence,
		},
		Lot:       st.lot,
		Building:  bounds,
		Materials: mats,
	}

	// Floors are built in building-local coordinates with the ground floor's
	// outer wall at the origin.
	sr := structure.Calculate(structure.Input{
		Building: o.BuildingType,
		Ground:   bounds.Translate(-bounds.X, -bounds.Y),
		Stories:  st.stories,
		Basement: st.basement,
		Seed:     root.Sub(structureStream).Seed(),
	})
	issues = append(issues, sr.Issues...)

	floors := make([]plan.Floor, 0, len(sr.Footprints))
	for _, fp := range sr.Footprints {
		f, fi := buildFloor(o, fp, mats.Wall, root.Sub(floorStream+int64(fp.Level)).Seed())
		issues = append(issues, fi...)
		floors = append(floors, f)
	}

	stair := stairs.Place(stairs.Input{Building: o.BuildingType, Class: o.SocialClass, Floors: floors})
	issues = append(issues, stair.Issues...)
	wall := walls.Generate(walls.Input{Building: o.BuildingType, Class: o.SocialClass, Floors: stair.Floors})
	issues = append(issues, wall.Issues...)

	p.Floors = furnishFloors(wall.Floors, o, st.season)
	p.Walls = wall.Walls
	p.Staircases = stair.Staircases
	p.Exterior = exterior(p, root.Sub(exteriorStream))
	p.Issues = issues

	logger.Debug("building generated",
		"id", p.ID,
		"type", o.BuildingType.String(),
		"class", o.SocialClass.String(),
		"floors", len(p.Floors),
		"rooms", len(p.Rooms()),
		"issues", len(p.Issues))
	return p, nil
}

// buildFloor packs one footprint and joins its rooms with hallways.
func buildFloor(o Options, fp plan.Footprint, wall catalog.Material, seed int64) (plan.Floor, []plan.Issue) {
	lr := layout.Pack(layout.Input{
		Building:     o.BuildingType,
		Class:        o.SocialClass,
		Footprint:    fp,
		WallMaterial: wall,
		Seed:         seed,
	})
	hr := hallway.Connect(hallway.Input{
		Building:  o.BuildingType,
		Class:     o.SocialClass,
		Footprint: fp,
		Rooms:     lr.Rooms,
		Seed:      seed,
	})
	return plan.Floor{
		Level:         fp.Level,
		Footprint:     fp,
		CeilingHeight: catalog.CeilingHeight(fp.Level),
		Rooms:         hr.Rooms,
		Hallways:      hr.Hallways,
	}, lr.Issues
}

// furnishFloors furnishes every room. Each room draws from its own stream,
// keyed by its position in the building, so rooms never depend on each
// other's draws.
func furnishFloors(floors []plan.Floor, o Options, season catalog.Season) []plan.Floor {
	root := rng.New(o.Seed)
	out := make([]plan.Floor, len(floors))
	n := int64(0)
	for i, f := range floors {
		out[i] = f
		out[i].Rooms = make([]plan.Room, len(f.Rooms))
		for j, r := range f.Rooms {
			out[i].Rooms[j] = furnish.Room(r, furnish.Input{
				Class:    o.SocialClass,
				Season:   season,
				Features: f.Footprint.Features,
				Seed:     root.Sub(roomStream + n).Seed(),
			})
			n++
		}
	}
	return out
}
