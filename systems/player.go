package systems

import (
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func playerMotion(e *donburi.Entry) motion {
	return motion{
		player: components.Player.Get(e),
		body:   components.Body.Get(e),
		ground: components.Ground.Get(e),
		jump:   components.Jump.Get(e),
		wall:   components.Wall.Get(e),
		dash:   components.Dash.Get(e),
	}
}

// playerIntent is the snapshot the player's controller may act on this tick.
func playerIntent(e *donburi.Entry) components.InputSnapshot {
	in := components.PlayerInput.Get(e).Snapshot
	if !components.Player.Get(e).ControlsEnabled || components.Health.Get(e).Dead {
		return in.Neutral()
	}
	return in
}

// UpdatePlayer runs the per-frame half of the controller.
func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Body.Get(e).Frozen {
			return
		}
		playerMotion(e).frameStep(playerIntent(e), cfg.Physics.FixedDelta)
	})
}

// UpdatePlayerMotion runs the fixed-step half of the controller. It must run
// after the enemies think and before UpdatePhysics.
func UpdatePlayerMotion(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Body.Get(e).Frozen {
			return
		}
		obj := components.Object.Get(e).Object
		playerMotion(e).physicsStep(obj, playerIntent(e), cfg.Physics.FixedDelta)
	})
}
