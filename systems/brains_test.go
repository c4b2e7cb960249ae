package systems

import (
	"math"
	"testing"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber answers rays by direction.
type fakeProber struct {
	horizontal bool // rays with dy == 0
	down       bool // rays pointing down
	other      bool
}

func (f fakeProber) Ray(ox, oy, dx, dy, maxDist float64) bool {
	switch {
	case dy == 0:
		return f.horizontal
	case dx == 0 && dy > 0:
		return f.down
	}
	return f.other
}

func groundedSenses(probe components.RayProber) components.EnemySenses {
	return components.EnemySenses{
		X: 300, Y: 316, W: 24, H: 12,
		Grounded: true,
		Facing:   cfg.DirectionLeft,
		Probe:    probe,
	}
}

func TestNewBrainByKind(t *testing.T) {
	assert.IsType(t, &crawlerBrain{}, NewBrain(cfg.Enemy.Kinds["caterpillar"]))
	assert.IsType(t, &leaperBrain{}, NewBrain(cfg.Enemy.Kinds["frog"]))
	assert.IsType(t, &flyerBrain{}, NewBrain(cfg.Enemy.Kinds["moth"]))
	assert.IsType(t, &slammerBrain{}, NewBrain(cfg.Enemy.Kinds["toad_mother"]))
}

func TestCrawlerWalksAndTurns(t *testing.T) {
	tests := []struct {
		name  string
		probe fakeProber
		want  int
	}{
		{name: "open floor", probe: fakeProber{down: true}, want: cfg.DirectionLeft},
		{name: "wall ahead", probe: fakeProber{horizontal: true, down: true}, want: cfg.DirectionRight},
		{name: "ledge ahead", probe: fakeProber{}, want: cfg.DirectionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrain(cfg.Enemy.Kinds["caterpillar"])
			intent := b.Think(groundedSenses(tt.probe), tick)
			assert.True(t, intent.SetVX)
			assert.Equal(t, tt.want, intent.Facing)
			assert.Equal(t, float64(tt.want)*cfg.Enemy.Crawler.MoveSpeed, intent.VelX)
		})
	}
}

func TestCrawlerTurnsTowardPlayer(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["caterpillar"])
	s := groundedSenses(fakeProber{down: true})
	s.PlayerKnown = true
	s.PlayerX, s.PlayerY = s.CenterX()+60, s.CenterY()

	intent := b.Think(s, tick)
	assert.Equal(t, cfg.DirectionRight, intent.Facing)
}

func TestCrawlerStaggersWhenHit(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["caterpillar"])
	s := groundedSenses(fakeProber{down: true})
	s.Hit = true

	intent := b.Think(s, tick)
	assert.False(t, intent.SetVX, "knockback is left alone")
}

func TestLeapVelocityLandsOnTarget(t *testing.T) {
	p := cfg.Enemy.Leaper
	g := cfg.Physics.Gravity * cfg.Enemy.Kinds["frog"].GravityScale
	tests := []struct{ dx, dy float64 }{
		{dx: 60, dy: 0},
		{dx: 300, dy: -40},
		{dx: 10, dy: 0},
		{dx: -120, dy: 20},
	}
	for _, tt := range tests {
		vx, vy := leapVelocity(tt.dx, tt.dy, g, p)
		flight := clamp(math.Abs(tt.dx)/p.JumpTimeScale, p.MinJumpTime, p.MaxJumpTime)
		assert.InDelta(t, tt.dx, vx*flight, 1e-9)
		assert.InDelta(t, tt.dy, vy*flight+0.5*g*flight*flight, 1e-9)
	}
}

func TestLeaperLeapsAtPlayerThenRests(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["frog"])
	s := groundedSenses(fakeProber{down: true})
	s.PlayerKnown = true
	s.PlayerX, s.PlayerY = s.CenterX()+60, s.CenterY()

	intent := b.Think(s, tick)
	require.True(t, intent.SetVX)
	require.True(t, intent.SetVY)
	assert.Greater(t, intent.VelX, 0.0)
	assert.Less(t, intent.VelY, 0.0)
	assert.Equal(t, cfg.DirectionRight, intent.Facing)

	s.Grounded = false
	intent = b.Think(s, tick)
	assert.False(t, intent.SetVX, "arc is ballistic")
	assert.False(t, intent.SetVY)

	s.Grounded = true
	intent = b.Think(s, tick)
	assert.True(t, intent.SetVX)
	assert.Zero(t, intent.VelX, "cooling down after landing")
	assert.False(t, intent.SetVY)
}

func TestLeaperHopsAwayFromWall(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["frog"])
	s := groundedSenses(fakeProber{horizontal: true, down: true})
	s.PlayerKnown = true
	s.PlayerX, s.PlayerY = s.CenterX()+60, s.CenterY()

	intent := b.Think(s, tick)
	assert.Equal(t, -cfg.Enemy.Leaper.RoamHopX, intent.VelX)
	assert.Equal(t, cfg.DirectionLeft, intent.Facing)
}

func flyerSenses(probe components.RayProber) components.EnemySenses {
	return components.EnemySenses{
		X: 300, Y: 150, W: 18, H: 14,
		Facing:      cfg.DirectionLeft,
		PlayerKnown: true,
		Probe:       probe,
	}
}

func TestFlyerDashesWhenClose(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["moth"])
	s := flyerSenses(fakeProber{})
	s.PlayerX, s.PlayerY = s.CenterX()+60, s.CenterY()

	intent := b.Think(s, tick)
	assert.InDelta(t, cfg.Enemy.Flyer.DashSpeed, intent.VelX, 1e-9)
	assert.InDelta(t, 0, intent.VelY, 1e-9)
}

func TestFlyerDashBlockedByWall(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["moth"])
	s := flyerSenses(fakeProber{horizontal: true})
	s.PlayerX, s.PlayerY = s.CenterX()+60, s.CenterY()

	intent := b.Think(s, tick)
	assert.Less(t, math.Abs(intent.VelX), cfg.Enemy.Flyer.DashSpeed)
}

func TestFlyerHoldsInsideStoppingDistance(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["moth"]).(*flyerBrain)
	b.dashCooldown = 10
	s := flyerSenses(fakeProber{})
	s.PlayerX, s.PlayerY = s.CenterX()+10, s.CenterY()

	intent := b.Think(s, tick)
	assert.Zero(t, intent.VelX)
	assert.Equal(t, cfg.DirectionRight, intent.Facing)
}

func TestFlyerRisesNearGround(t *testing.T) {
	free := NewBrain(cfg.Enemy.Kinds["moth"]).(*flyerBrain)
	low := NewBrain(cfg.Enemy.Kinds["moth"]).(*flyerBrain)
	free.dashCooldown, low.dashCooldown = 10, 10

	var a, b components.EnemyIntent
	for i := 0; i < 30; i++ {
		s := flyerSenses(fakeProber{})
		s.PlayerKnown = false
		s.VelX = 10 // moving, so never treated as stuck
		a = free.Think(s, tick)
		s.Probe = fakeProber{down: true}
		b = low.Think(s, tick)
	}
	assert.Less(t, b.VelY, a.VelY)
}

func TestFlyerStunnedWhenHit(t *testing.T) {
	b := NewBrain(cfg.Enemy.Kinds["moth"])
	s := flyerSenses(fakeProber{})
	s.PlayerX, s.PlayerY = s.CenterX()+200, s.CenterY()
	s.Hit = true

	intent := b.Think(s, tick)
	assert.False(t, intent.SetVX)
	assert.False(t, intent.SetVY)
}

func TestSlammerCycle(t *testing.T) {
	kind := cfg.Enemy.Kinds["toad_mother"]
	p := cfg.Enemy.Slammer
	b := NewBrain(kind)
	s := components.EnemySenses{X: 300, Y: 298, W: 40, H: 30, Grounded: true, Facing: cfg.DirectionLeft}

	intent := b.Think(s, tick)
	assert.True(t, intent.Harmless, "idle without a player")
	assert.False(t, intent.SetVY)

	s.PlayerKnown = true
	s.PlayerX, s.PlayerY = s.CenterX()+50, s.CenterY()
	intent = b.Think(s, tick)
	require.True(t, intent.SetVY)
	assert.InDelta(t, -cfg.Physics.Gravity*kind.GravityScale*p.ArcTime/2, intent.VelY, 1e-9)
	assert.True(t, intent.Harmless)

	s.Grounded = false
	s.VelY = -100
	intent = b.Think(s, tick)
	assert.True(t, intent.Harmless)
	assert.Greater(t, intent.VelX, 0.0, "tracks the player")

	s.VelY = 0
	intent = b.Think(s, tick)
	assert.False(t, intent.Harmless)
	assert.Equal(t, p.SlamSpeed, intent.VelY)

	intent = b.Think(s, tick)
	assert.False(t, intent.Harmless, "still slamming in the air")

	s.Grounded = true
	intent = b.Think(s, tick)
	assert.True(t, intent.Harmless)
	assert.False(t, intent.SetVY, "cooldown after landing")
}

type scriptedBrain struct {
	intent components.EnemyIntent
	seen   components.EnemySenses
}

func (b *scriptedBrain) Think(s components.EnemySenses, dt float64) components.EnemyIntent {
	b.seen = s
	return b.intent
}

func TestUpdateEnemiesAppliesIntent(t *testing.T) {
	e, _, _ := newTestSession(t, &cfg.WaveTable{})
	brain := &scriptedBrain{intent: components.EnemyIntent{
		VelX: 50, SetVX: true, Facing: cfg.DirectionRight, Harmless: true,
	}}
	enemy := factory.CreateEnemy(e, 100, floorY, cfg.Enemy.Kinds["caterpillar"], brain)
	data := components.Enemy.Get(enemy)
	data.JustHit = true
	data.HitDir = cfg.DirectionLeft
	components.Body.Get(enemy).VelY = 30

	UpdateEnemies(e)

	assert.True(t, brain.seen.PlayerKnown)
	assert.Equal(t, 320.0, brain.seen.PlayerX)
	assert.True(t, brain.seen.Grounded)
	assert.True(t, brain.seen.Hit)
	assert.Equal(t, cfg.DirectionLeft, brain.seen.HitDir)

	body := components.Body.Get(enemy)
	assert.Equal(t, 50.0, body.VelX)
	assert.Equal(t, 30.0, body.VelY, "unset axis untouched")
	assert.Equal(t, cfg.DirectionRight, data.Facing)
	assert.True(t, data.Harmless)
	assert.False(t, data.JustHit)
}
