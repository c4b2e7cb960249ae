package systems

import (
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts applies armed hazards and enemy contact damage to the
// player. It runs after the integrator.
func UpdateContacts(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.Dead || components.Respawn.Get(e).Active {
			return
		}
		obj := components.Object.Get(e).Object

		for _, o := range OverlapsTag(obj, tags.ResolvHazard) {
			hazard, ok := o.Data.(*donburi.Entry)
			if !ok || !hazard.Valid() || !components.Hazard.Get(hazard).Armed {
				continue
			}
			StartHazardRespawn(ecs, e)
			return
		}

		// Invincible players pass through enemies.
		if health.Invincible {
			return
		}
		for _, o := range OverlapsTag(obj, tags.ResolvEnemy) {
			enemyEntry, ok := o.Data.(*donburi.Entry)
			if !ok || !enemyEntry.Valid() {
				continue
			}
			if applyContactDamage(e, enemyEntry) {
				return
			}
		}
	})
}

// applyContactDamage hurts and knocks back the player if the enemy can hurt
// right now. It reports whether damage was applied.
func applyContactDamage(playerEntry, enemyEntry *donburi.Entry) bool {
	enemy := components.Enemy.Get(enemyEntry)
	kind := enemy.TypeConfig
	if enemy.Harmless || enemy.DamageTimer > 0 || kind == nil {
		return false
	}

	health := components.Health.Get(playerEntry)
	applied, died := TakeDamage(health, kind.ContactDamage, cfg.Player.IFrameDuration)
	if !applied {
		return false
	}
	enemy.DamageTimer = kind.DamageCooldown
	if died {
		return true
	}

	pObj := components.Object.Get(playerEntry)
	eObj := components.Object.Get(enemyEntry)
	dir := sign(pObj.CenterX() - eObj.CenterX())
	if dir == 0 {
		dir = float64(-components.Player.Get(playerEntry).Facing)
	}
	body := components.Body.Get(playerEntry)
	body.VelX = dir * kind.KnockbackForce
	body.VelY = -kind.KnockbackForce * 0.5
	return true
}
