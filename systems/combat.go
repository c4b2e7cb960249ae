package systems

import (
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems/factory"
	"github.com/automoto/caged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// selectZone picks the attack zone from vertical input.
func selectZone(moveY float64) cfg.AttackZone {
	switch {
	case moveY > cfg.Combat.ZoneThreshold:
		return cfg.ZoneUp
	case moveY < -cfg.Combat.ZoneThreshold:
		return cfg.ZoneDown
	}
	return cfg.ZoneNeutral
}

// UpdateCombat runs the melee cycle of each player and resolves hits.
func UpdateCombat(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedDelta
	components.Attack.Each(ecs.World, func(e *donburi.Entry) {
		stepAttack(ecs, e, playerIntent(e), dt)
	})

	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		factory.PlaceAttackZone(e)
		resolveAttackHits(ecs, e)
	})
}

func stepAttack(ecs *ecs.ECS, e *donburi.Entry, in components.InputSnapshot, dt float64) {
	atk := components.Attack.Get(e)

	switch atk.Phase {
	case cfg.AttackIdle:
		if !in.Attack.JustPressed {
			return
		}
		atk.Zone = selectZone(in.MoveY)
		atk.Phase = cfg.AttackActive
		atk.Timer = cfg.Combat.AttackDuration
		atk.Hitbox = factory.CreateAttackZone(ecs, e, atk.Zone)

	case cfg.AttackActive:
		atk.Timer -= dt
		if atk.Timer > timeEpsilon {
			return
		}
		factory.Destroy(ecs, atk.Hitbox)
		atk.Hitbox = nil
		atk.Phase = cfg.AttackCooldown
		atk.Timer = cfg.Combat.AttackCooldown

	case cfg.AttackCooldown:
		atk.Timer -= dt
		if atk.Timer <= timeEpsilon {
			atk.Phase = cfg.AttackIdle
			atk.Timer = 0
		}
	}
}

func resolveAttackHits(ecs *ecs.ECS, hitboxEntry *donburi.Entry) {
	hb := components.Hitbox.Get(hitboxEntry)
	zone := components.Object.Get(hitboxEntry)

	for _, o := range OverlapsTag(zone.Object, tags.ResolvEnemy) {
		enemyEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() || hb.HitEntities[enemyEntry] {
			continue
		}
		enemy := components.Enemy.Get(enemyEntry)
		if enemy.HitCooldown > 0 {
			continue
		}
		hb.HitEntities[enemyEntry] = true

		health := components.Health.Get(enemyEntry)
		_, died := TakeDamage(health, hb.Damage, 0)
		if died {
			factory.Destroy(ecs, enemyEntry)
			continue
		}

		enemy.HitCooldown = cfg.Combat.EnemyHitCooldown
		components.Flash.Get(enemyEntry).Timer = cfg.Combat.EnemyFlashTime

		eObj := components.Object.Get(enemyEntry)
		dir := int(sign(eObj.CenterX() - zone.CenterX()))
		if dir == 0 && hb.Owner != nil && hb.Owner.Valid() {
			dir = components.Player.Get(hb.Owner).Facing
		}
		enemy.JustHit = true
		enemy.HitDir = dir

		kb := cfg.Combat.EnemyHitKnockback
		components.Body.Get(enemyEntry).ApplyImpulse(float64(dir)*kb, -kb*0.5)
	}
}
