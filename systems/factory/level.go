package factory

import (
	"github.com/automoto/caged/archetypes"
	"github.com/automoto/caged/assets"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the static arena: space, solids and the spike floor.
func CreateLevel(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Arena: arena})

	cell := cfg.Physics.SpaceCellSize
	CreateSpace(ecs, arena.Width, arena.Height, cell, cell)

	for _, s := range arena.Solids {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}
	for _, s := range arena.SpikeFloors {
		CreateSpikeFloor(ecs, s.X, s.Y, s.W, s.H)
	}

	return level
}
