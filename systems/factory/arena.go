package factory

import (
	"math/rand/v2"

	"github.com/automoto/caged/archetypes"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena creates the director singleton in its first state.
func CreateArena(ecs *ecs.ECS, table *cfg.WaveTable, rng *rand.Rand) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)

	state := cfg.SessionTutorial
	if cfg.Debug.SkipTutorial {
		state = cfg.SessionCountdown
	}
	components.Arena.SetValue(arena, components.ArenaData{
		State: state,
		Table: table,
		Rng:   rng,
	})

	return arena
}
