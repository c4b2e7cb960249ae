package systems

import (
	"fmt"
	"log"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems/factory"
	"github.com/automoto/caged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// director runs one tick of the wave session.
type director struct {
	ecs    *ecs.ECS
	arena  *components.ArenaData
	msg    *components.MessageData
	player *donburi.Entry
}

// UpdateArena advances the wave director.
func UpdateArena(ecs *ecs.ECS) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	d := &director{
		ecs:   ecs,
		arena: components.Arena.Get(entry),
		msg:   components.Message.Get(entry),
	}
	if p, ok := tags.Player.First(ecs.World); ok {
		d.player = p
	}
	d.update(cfg.Physics.FixedDelta)
}

func (d *director) update(dt float64) {
	a := d.arena

	// Death wins over everything else, including a wave cleared this tick.
	if !a.State.Terminal() && d.playerDead() {
		d.defeat()
	}

	switch a.State {
	case cfg.SessionTutorial:
		d.tutorial()
	case cfg.SessionCountdown:
		if a.Step == nil {
			a.Step = d.firstCountdown()
		}
		d.run(dt)
	case cfg.SessionSpawning:
		if a.Step == nil {
			a.Step = d.waveStart()
		}
		d.run(dt)
	case cfg.SessionAwaitingClear:
		if d.enemyCount() == 0 {
			d.waveCleared()
		}
	case cfg.SessionRest:
		if a.Step == nil {
			a.Step = d.rest()
		}
		d.run(dt)
	case cfg.SessionVictory:
		if d.freshConfirm() {
			a.ReloadRequested = true
		}
	case cfg.SessionDefeat:
		d.run(dt)
	}

	d.cullEscaped()
}

// run ticks the pending step and drops it once done, unless the step itself
// already moved the director on.
func (d *director) run(dt float64) {
	step := d.arena.Step
	if step == nil {
		return
	}
	if step.Tick(dt) == components.Done && d.arena.Step == step {
		d.arena.Step = nil
	}
}

func (d *director) enter(state cfg.SessionState) {
	d.arena.State = state
	d.arena.Step = nil
}

func (d *director) tutorial() {
	d.setControls(false)
	d.show(cfg.Arena.TutorialText)
	if d.freshConfirm() {
		d.hide()
		d.setControls(true)
		d.enter(cfg.SessionCountdown)
	}
}

// freshConfirm reports a confirm press that followed a release seen by the
// director, so a press held over from a previous screen does not count.
func (d *director) freshConfirm() bool {
	c := d.confirm()
	if !c.Pressed {
		d.arena.ConfirmReleased = true
		return false
	}
	if d.arena.ConfirmReleased && c.JustPressed {
		d.arena.ConfirmReleased = false
		return true
	}
	return false
}

func (d *director) confirm() components.ActionState {
	if d.player == nil {
		return components.ActionState{}
	}
	return components.PlayerInput.Get(d.player).Snapshot.Confirm
}

func (d *director) firstCountdown() components.Sequence {
	return NewChain(
		NewCountdown(float64(cfg.Arena.FirstCountdown), d.showf(cfg.Arena.FirstCountdownText)),
		Do(func() { d.show(cfg.Arena.FightText) }),
		&Wait{Remaining: cfg.Arena.FightDuration},
		Do(func() {
			d.hide()
			d.enter(cfg.SessionSpawning)
		}),
	)
}

// waveStart heals, lays out the arena, counts down, arms hazards and spawns
// the wave. Every resumption is guarded by the player being alive.
func (d *director) waveStart() components.Sequence {
	a := d.arena
	if a.WaveIndex >= a.WaveCount() {
		d.victory()
		return nil
	}
	wave := a.Table.Waves[a.WaveIndex]

	steps := []components.Sequence{
		Do(func() {
			d.healPlayer()
			a.Layout = wave.Layout
			a.Spawned = 0
			ApplyLayout(d.ecs, wave.Layout)
		}),
	}
	if a.WaveIndex > 0 {
		seconds, text := cfg.Arena.SetupCountdown, cfg.Arena.NextWaveText
		if wave.Layout.Hazardous() {
			seconds, text = cfg.Arena.HazardSetupCountdown, cfg.Arena.NextWaveHazardText
		}
		steps = append(steps, NewCountdown(seconds, d.showf(text)))
	}
	steps = append(steps,
		Do(func() {
			d.hide()
			ArmHazards(d.ecs, wave.Layout)
		}),
		&Wait{Remaining: wave.PreWaveDelay},
		&Repeat{
			Count:    wave.EnemyCount,
			Interval: wave.SpawnInterval,
			Action:   func() { d.spawnEnemy(wave) },
		},
		Do(func() { d.enter(cfg.SessionAwaitingClear) }),
	)

	return &Guarded{
		Alive: func() bool { return !d.playerDead() },
		Inner: NewChain(steps...),
	}
}

func (d *director) spawnEnemy(wave cfg.Wave) {
	a := d.arena
	level := levelOf(d.ecs)
	pool := a.Table.PoolFor(wave)
	if level == nil || len(level.EnemySpawns) == 0 || len(pool) == 0 {
		return
	}

	point := level.EnemySpawns[a.Rng.IntN(len(level.EnemySpawns))]
	name := pool[a.Rng.IntN(len(pool))]
	kind, ok := cfg.Enemy.Kinds[name]
	if !ok {
		log.Printf("Warning: unknown enemy kind %q", name)
		return
	}
	factory.CreateEnemy(d.ecs, point.X, point.Y, kind, NewBrain(kind))
	a.Spawned++
}

func (d *director) waveCleared() {
	a := d.arena
	a.WaveIndex++
	ResetArena(d.ecs)
	a.Layout = cfg.LayoutDefault

	if a.WaveIndex < a.WaveCount() {
		d.enter(cfg.SessionRest)
		return
	}
	d.victory()
}

func (d *director) rest() components.Sequence {
	return NewChain(
		Do(d.healPlayer),
		NewCountdown(cfg.Arena.RestCountdown, d.showf(cfg.Arena.RestText)),
		Do(func() {
			d.hide()
			d.enter(cfg.SessionSpawning)
		}),
	)
}

func (d *director) victory() {
	d.enter(cfg.SessionVictory)
	d.arena.ConfirmReleased = false
	ResetArena(d.ecs)
	d.show(cfg.Arena.VictoryText)
}

// defeat drops whatever was pending, so a cancelled spawn loop never resumes.
func (d *director) defeat() {
	d.enter(cfg.SessionDefeat)
	ResetArena(d.ecs)
	d.show(cfg.Arena.DefeatText)
	d.arena.Step = NewChain(
		&Wait{Remaining: cfg.Arena.DefeatReloadDelay},
		Do(func() { d.arena.ReloadRequested = true }),
	)
}

func (d *director) playerDead() bool {
	return d.player != nil && components.Health.Get(d.player).Dead
}

func (d *director) healPlayer() {
	if d.player != nil {
		HealFull(components.Health.Get(d.player))
	}
}

func (d *director) setControls(enabled bool) {
	if d.player != nil {
		components.Player.Get(d.player).ControlsEnabled = enabled
	}
}

func (d *director) enemyCount() int {
	return EnemyCount(d.ecs)
}

// EnemyCount is the number of live enemies.
func EnemyCount(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// cullEscaped removes enemies that left the arena bounds.
func (d *director) cullEscaped() {
	level := levelOf(d.ecs)
	if level == nil {
		return
	}
	var escaped []*donburi.Entry
	tags.Enemy.Each(d.ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !level.Contains(obj.CenterX(), obj.CenterY()) {
			escaped = append(escaped, e)
		}
	})
	for _, e := range escaped {
		factory.Destroy(d.ecs, e)
	}
}

func (d *director) show(text string) {
	d.msg.Text = text
	d.msg.Visible = true
}

func (d *director) showf(format string) func(n int) {
	return func(n int) { d.show(fmt.Sprintf(format, n)) }
}

func (d *director) hide() {
	d.msg.Visible = false
}
