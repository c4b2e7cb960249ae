package systems

import (
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeDamage lowers health by amount unless the target is invincible or
// already dead. A hit that leaves health above zero starts a fresh
// invincibility window of iframes seconds, replacing any running one.
func TakeDamage(h *components.HealthData, amount int, iframes float64) (applied, died bool) {
	if h == nil || h.Dead || h.Invincible || amount <= 0 {
		return false, false
	}

	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.Changed = true

	if h.Current == 0 {
		h.Dead = true
		h.Invincible = false
		h.InvincibleTimer = 0
		return true, true
	}

	if iframes > 0 {
		h.Invincible = true
		h.InvincibleTimer = iframes
	}
	return true, false
}

// HealFull restores health to its maximum.
func HealFull(h *components.HealthData) {
	if h.Current != h.Max {
		h.Changed = true
	}
	h.Current = h.Max
	h.Dead = false
}

// UpdateHealth runs invincibility windows and hit flashes.
func UpdateHealth(ecs *ecs.ECS) {
	dt := cfg.Physics.FixedDelta

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		tickInvincibility(components.Health.Get(e), dt)
	})
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Timer > 0 {
			flash.Timer -= dt
			if flash.Timer < 0 {
				flash.Timer = 0
			}
		}
	})
}

func tickInvincibility(h *components.HealthData, dt float64) {
	if !h.Invincible {
		return
	}
	h.InvincibleTimer -= dt
	if h.InvincibleTimer <= timeEpsilon {
		h.Invincible = false
		h.InvincibleTimer = 0
	}
}
