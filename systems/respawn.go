package systems

import (
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartHazardRespawn begins the hazard respawn sequence for a player. It
// returns false when one is already running.
func StartHazardRespawn(ecs *ecs.ECS, e *donburi.Entry) bool {
	r := components.Respawn.Get(e)
	if r.Active {
		return false
	}
	r.Active = true
	r.Seq = newRespawnSequence(fadeOf(ecs), e)
	return true
}

// newRespawnSequence locks the player, fades out, applies hazard damage,
// moves the player to its anchor, pauses, fades back in and unlocks. A
// lethal hit stops the sequence right after the damage.
func newRespawnSequence(fade *components.FadeData, e *donburi.Entry) components.Sequence {
	player := components.Player.Get(e)
	body := components.Body.Get(e)
	health := components.Health.Get(e)
	obj := components.Object.Get(e).Object
	setAlpha := func(v float64) { fade.Alpha = v }

	return NewChain(
		Do(func() {
			player.ControlsEnabled = false
			body.Stop()
			body.Frozen = true
		}),
		NewTween(0, 1, cfg.Respawn.FadeOutDuration, setAlpha),
		Do(func() {
			TakeDamage(health, cfg.Respawn.HazardDamage, cfg.Player.IFrameDuration)
		}),
		&Guarded{
			Alive: func() bool { return !health.Dead },
			Inner: NewChain(
				Do(func() {
					obj.X = player.AnchorX - obj.W/2
					obj.Y = player.AnchorY - obj.H
					obj.Update()
					body.Stop()
					resetMotion(e)
				}),
				&Wait{Remaining: cfg.Respawn.PauseDuration},
				NewTween(1, 0, cfg.Respawn.FadeInDuration, setAlpha),
				Do(func() {
					body.Frozen = false
					player.ControlsEnabled = true
				}),
			),
		},
	)
}

// resetMotion clears dash and wall state after a teleport.
func resetMotion(e *donburi.Entry) {
	dash := components.Dash.Get(e)
	dash.Active = false
	dash.Requested = false
	dash.HasAirDashed = false
	*components.Wall.Get(e) = components.WallData{}
	components.Body.Get(e).GravityScale = cfg.Player.GravityScale
}

// UpdateRespawn advances running respawn sequences.
func UpdateRespawn(ecs *ecs.ECS) {
	components.Respawn.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Respawn.Get(e)
		if !r.Active || r.Seq == nil {
			return
		}
		if r.Seq.Tick(cfg.Physics.FixedDelta) == components.Continue {
			return
		}
		r.Active = false
		r.Seq = nil

		if components.Health.Get(e).Dead {
			// Aborted by a lethal hit: leave controls off, clear the screen.
			components.Body.Get(e).Frozen = false
			if fade := fadeOf(ecs); fade != nil {
				fade.Alpha = 0
			}
		}
	})
}

// fadeOf returns the screen fade, or a detached one when the world has no
// arena entity.
func fadeOf(ecs *ecs.ECS) *components.FadeData {
	if entry, ok := components.Fade.First(ecs.World); ok {
		return components.Fade.Get(entry)
	}
	return &components.FadeData{}
}
