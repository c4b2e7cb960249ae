package systems

import (
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies senses the world for every enemy, asks its brain what to do
// and applies the answer to the body.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedDelta
	space := spaceOf(ecs)

	var player components.EnemySenses
	if e, ok := tags.Player.First(ecs.World); ok && !components.Health.Get(e).Dead {
		obj := components.Object.Get(e)
		player.PlayerKnown = true
		player.PlayerX = obj.CenterX()
		player.PlayerY = obj.CenterY()
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object
		ground := components.Ground.Get(e)

		tickEnemyTimers(enemy, dt)
		ground.Grounded = senseGround(obj, body.VelY)

		if enemy.Brain == nil {
			return
		}

		senses := player
		senses.X, senses.Y, senses.W, senses.H = obj.X, obj.Y, obj.W, obj.H
		senses.VelX, senses.VelY = body.VelX, body.VelY
		senses.Grounded = ground.Grounded
		senses.Facing = enemy.Facing
		senses.Hit = enemy.JustHit
		senses.HitDir = enemy.HitDir
		senses.Probe = spaceProber{space: space}

		intent := enemy.Brain.Think(senses, dt)
		enemy.JustHit = false
		applyIntent(enemy, body, intent)
	})
}

func tickEnemyTimers(enemy *components.EnemyData, dt float64) {
	if enemy.DamageTimer > 0 {
		enemy.DamageTimer -= dt
	}
	if enemy.HitCooldown > 0 {
		enemy.HitCooldown -= dt
	}
}

func applyIntent(enemy *components.EnemyData, body *components.BodyData, intent components.EnemyIntent) {
	if intent.SetVX {
		body.VelX = intent.VelX
	}
	if intent.SetVY {
		body.VelY = intent.VelY
	}
	if intent.Facing != 0 {
		enemy.Facing = intent.Facing
	}
	enemy.Harmless = intent.Harmless
}

func spaceOf(ecs *ecs.ECS) *resolv.Space {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry)
	}
	return nil
}
