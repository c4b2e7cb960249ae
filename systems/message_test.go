package systems

import (
	"testing"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestResolvePlaceholders(t *testing.T) {
	bindings := cfg.DefaultBindings()
	const hint = "{move} to Move, {dash} to Dash, {attack} to Attack, {jump} to Jump, {unknown}"

	tests := []struct {
		name   string
		device components.InputDevice
		want   string
	}{
		{
			name:   "keyboard",
			device: components.DeviceKeyboard,
			want:   "WASD to Move, Right Click to Dash, Left Click to Attack, SPACE to Jump, {unknown}",
		},
		{
			name:   "xbox",
			device: components.DeviceXbox,
			want:   "Left Stick to Move, B to Dash, X to Attack, A to Jump, {unknown}",
		},
		{
			name:   "playstation",
			device: components.DevicePlayStation,
			want:   "Left Stick to Move, Circle to Dash, Square to Attack, Cross to Jump, {unknown}",
		},
		{
			name:   "other pad",
			device: components.DeviceOther,
			want:   "Left Stick to Move, East Button to Dash, West Button to Attack, South Button to Jump, {unknown}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePlaceholders(hint, tt.device, bindings))
		})
	}
}

func TestResolvePlaceholdersFollowsRebinds(t *testing.T) {
	bindings := cfg.DefaultBindings()
	b := bindings[cfg.ActionDash]
	b.Primary = cfg.KeyInput(ebiten.KeyShiftLeft)
	bindings[cfg.ActionDash] = b

	assert.Equal(t, "SHIFTLEFT to Dash", ResolvePlaceholders("{dash} to Dash", components.DeviceKeyboard, bindings))
}

func TestUpdateHUDPulsesOnHealthChange(t *testing.T) {
	e, player, _ := newTestSession(t, &cfg.WaveTable{})
	hudEntry, _ := components.HUD.First(e.World)
	hud := components.HUD.Get(hudEntry)

	UpdateHUD(e)
	assert.Zero(t, hud.PulseTimer)

	TakeDamage(components.Health.Get(player), 1, 1)
	UpdateHUD(e)
	assert.Equal(t, cfg.HUD.PulseDuration, hud.PulseTimer)
	assert.False(t, components.Health.Get(player).Changed)

	UpdateHUD(e)
	assert.Less(t, hud.PulseTimer, cfg.HUD.PulseDuration)
}

func TestWaveLabel(t *testing.T) {
	table := &cfg.WaveTable{Waves: make([]cfg.Wave, 5)}
	assert.Equal(t, "Wave 1/5", WaveLabel(&components.ArenaData{Table: table}))
	assert.Equal(t, "Wave 3/5", WaveLabel(&components.ArenaData{Table: table, WaveIndex: 2}))
	assert.Equal(t, "Wave 5/5", WaveLabel(&components.ArenaData{Table: table, WaveIndex: 5}))
}
