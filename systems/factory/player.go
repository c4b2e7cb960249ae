package factory

import (
	"github.com/automoto/caged/archetypes"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y) centred on x.
// anchorX/anchorY is where hazard respawns put it back.
func CreatePlayer(ecs *ecs.ECS, x, y, anchorX, anchorY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing:          cfg.DirectionRight,
		Mode:            cfg.Airborne,
		ControlsEnabled: true,
		AnchorX:         anchorX,
		AnchorY:         anchorY,
	})
	components.Body.SetValue(player, components.BodyData{
		GravityScale: cfg.Player.GravityScale,
	})
	components.Dash.SetValue(player, components.DashData{
		CanDashGrounded: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})

	return player
}
