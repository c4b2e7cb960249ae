package systems

import (
	"fmt"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/fonts"
	"github.com/automoto/caged/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD starts the heart pulse when health changed this tick.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	if hud.PulseTimer > 0 {
		hud.PulseTimer -= cfg.Physics.FixedDelta
	}

	if p, ok := tags.Player.First(ecs.World); ok {
		health := components.Health.Get(p)
		if health.Changed {
			health.Changed = false
			hud.PulseTimer = cfg.HUD.PulseDuration
		}
	}
}

// DrawHUD renders hearts in the top-left corner and the wave counter in the
// top-right one.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	pulse := 0.0
	if entry, ok := components.HUD.First(ecs.World); ok {
		if t := components.HUD.Get(entry).PulseTimer; t > 0 {
			pulse = t / cfg.HUD.PulseDuration
		}
	}

	size := cfg.HUD.HeartSize * (1 + 0.3*pulse)
	step := cfg.HUD.HeartSize + cfg.HUD.HeartGap
	for i := 0; i < hp.Max; i++ {
		clr := cfg.HUD.EmptyColor
		if i < hp.Current {
			clr = cfg.HUD.HeartColor
		}
		cx := cfg.HUD.Margin + float64(i)*step + cfg.HUD.HeartSize/2
		cy := cfg.HUD.Margin + cfg.HUD.HeartSize/2
		vector.FillRect(screen,
			float32(cx-size/2), float32(cy-size/2),
			float32(size), float32(size),
			clr, false)
	}

	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	label := WaveLabel(components.Arena.Get(arenaEntry))
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
	x := screen.Bounds().Dx() - int(cfg.HUD.Margin) - bounds.Dx()
	y := int(cfg.HUD.Margin) - bounds.Min.Y
	text.Draw(screen, label, face, x, y, cfg.HUD.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// WaveLabel is the "Wave i/n" counter, clamped to the last wave once the
// session has run past it.
func WaveLabel(a *components.ArenaData) string {
	n := a.WaveCount()
	i := a.WaveIndex + 1
	if i > n {
		i = n
	}
	return fmt.Sprintf("Wave %d/%d", i, n)
}
