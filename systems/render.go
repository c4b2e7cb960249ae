package systems

import (
	"image/color"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func fillObject(screen *ebiten.Image, o *components.ObjectData, clr color.Color) {
	vector.FillRect(screen,
		float32(o.X), float32(o.Y),
		float32(o.W), float32(o.H),
		clr, false)
}

// DrawArena renders the background, walls, platforms and the spike floor.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), cfg.Colors.Solid)
	})
	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		clr := cfg.Colors.SpikesOff
		if components.Hazard.Get(e).Armed {
			clr = cfg.Colors.SpikesOn
		}
		fillObject(screen, components.Object.Get(e), clr)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), cfg.Colors.Platform)
	})
}

// DrawBodies renders enemies in their tint and the player on top.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		clr := color.Color(cfg.Colors.Solid)
		if enemy.TypeConfig != nil {
			clr = enemy.TypeConfig.TintColor
		}
		if components.Flash.Get(e).Timer > 0 {
			clr = cfg.Colors.EnemyHit
		}
		fillObject(screen, components.Object.Get(e), clr)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		fillObject(screen, obj, cfg.Colors.Player)
		if components.Health.Get(e).Invincible {
			fillObject(screen, obj, cfg.Colors.PlayerHurt)
		}
	})
}

// DrawAttackZones renders active melee zones.
func DrawAttackZones(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), cfg.Colors.Zone)
	})
}

// DrawFade covers the screen with the respawn fade.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	alpha := clamp(components.Fade.Get(entry).Alpha, 0, 1)
	if alpha <= 0 {
		return
	}
	clr := cfg.Colors.Fade
	clr.A = uint8(alpha * 255)
	// vector expects premultiplied alpha.
	clr.R = uint8(float64(clr.R) * alpha)
	clr.G = uint8(float64(clr.G) * alpha)
	clr.B = uint8(float64(clr.B) * alpha)
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), clr, false)
}
