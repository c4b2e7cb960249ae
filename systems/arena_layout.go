package systems

import (
	"github.com/automoto/caged/assets"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems/factory"
	"github.com/automoto/caged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyLayout tears down the current hazard platforms, disarms the spike
// floor and spawns the platforms the layout places.
func ApplyLayout(ecs *ecs.ECS, layout cfg.ArenaLayout) {
	clearPlatforms(ecs)
	setHazardsArmed(ecs, false)

	level := levelOf(ecs)
	if level == nil {
		return
	}
	for _, r := range level.PlatformsFor(layout) {
		factory.CreatePlatform(ecs, r.X, r.Y, r.W, r.H)
	}
}

// ArmHazards enables the hazards of a layout. Only spikes have any.
func ArmHazards(ecs *ecs.ECS, layout cfg.ArenaLayout) {
	setHazardsArmed(ecs, layout.Hazardous())
}

// ResetArena returns the arena to the bare cage.
func ResetArena(ecs *ecs.ECS) {
	setHazardsArmed(ecs, false)
	clearPlatforms(ecs)
}

func clearPlatforms(ecs *ecs.ECS) {
	var platforms []*donburi.Entry
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platforms = append(platforms, e)
	})
	for _, e := range platforms {
		factory.Destroy(ecs, e)
	}
}

func setHazardsArmed(ecs *ecs.ECS, armed bool) {
	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		components.Hazard.Get(e).Armed = armed
	})
}

func levelOf(ecs *ecs.ECS) *assets.Arena {
	if entry, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(entry).Arena
	}
	return nil
}
