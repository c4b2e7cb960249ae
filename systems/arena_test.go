package systems

import (
	"testing"

	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems/factory"
	"github.com/automoto/caged/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func runArena(e *ecs.ECS, ticks int) {
	for i := 0; i < ticks; i++ {
		UpdateArena(e)
	}
}

func message(e *ecs.ECS) *components.MessageData {
	entry, _ := components.Message.First(e.World)
	return components.Message.Get(entry)
}

func hazardArmed(e *ecs.ECS) bool {
	armed := false
	components.Hazard.Each(e.World, func(entry *donburi.Entry) {
		armed = armed || components.Hazard.Get(entry).Armed
	})
	return armed
}

func twoWaves() *cfg.WaveTable {
	return &cfg.WaveTable{
		DefaultPool: []string{"caterpillar"},
		Waves: []cfg.Wave{
			{EnemyCount: 3, SpawnInterval: 0.5},
			{EnemyCount: 1, Layout: cfg.LayoutSpikes},
		},
	}
}

func TestTutorialWaitsForFreshConfirm(t *testing.T) {
	e, player, arena := newTestSession(t, twoWaves())
	require.Equal(t, cfg.SessionTutorial, arena.State)
	input := components.PlayerInput.Get(player)

	// Held over from before the tutorial appeared.
	input.Snapshot.Confirm = pressed(true)
	UpdateArena(e)
	assert.Equal(t, cfg.SessionTutorial, arena.State)
	assert.False(t, components.Player.Get(player).ControlsEnabled)
	assert.True(t, message(e).Visible)
	assert.Equal(t, cfg.Arena.TutorialText, message(e).Text)

	input.Snapshot.Confirm = components.ActionState{}
	UpdateArena(e)
	assert.Equal(t, cfg.SessionTutorial, arena.State)

	input.Snapshot.Confirm = pressed(true)
	UpdateArena(e)
	assert.Equal(t, cfg.SessionCountdown, arena.State)
	assert.True(t, components.Player.Get(player).ControlsEnabled)
	assert.False(t, message(e).Visible)
}

func TestFirstCountdownThenFight(t *testing.T) {
	e, _, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionCountdown

	UpdateArena(e)
	assert.Equal(t, "First wave begins in 5...", message(e).Text)

	runArena(e, 270)
	assert.Equal(t, "First wave begins in 1...", message(e).Text)

	runArena(e, 60)
	assert.Equal(t, cfg.Arena.FightText, message(e).Text)
	assert.Equal(t, cfg.SessionCountdown, arena.State)

	runArena(e, 60)
	assert.Equal(t, cfg.SessionSpawning, arena.State)
	assert.False(t, message(e).Visible)
}

func TestWaveSpawnsAtInterval(t *testing.T) {
	e, player, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionSpawning
	components.Health.Get(player).Current = 2

	UpdateArena(e)
	assert.Equal(t, 1, EnemyCount(e), "first wave has no setup countdown")
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(player).Current)

	runArena(e, 29)
	assert.Equal(t, 1, EnemyCount(e))
	runArena(e, 1)
	assert.Equal(t, 2, EnemyCount(e))
	runArena(e, 29)
	assert.Equal(t, 2, EnemyCount(e))
	runArena(e, 1)
	assert.Equal(t, 3, EnemyCount(e))
	assert.Equal(t, 3, arena.Spawned)
	assert.Equal(t, cfg.SessionAwaitingClear, arena.State)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		assert.Equal(t, cfg.EnemyCrawler, components.Enemy.Get(entry).Kind)
	})
}

func TestZeroIntervalSpawnsTogether(t *testing.T) {
	table := &cfg.WaveTable{
		DefaultPool: []string{"frog"},
		Waves:       []cfg.Wave{{EnemyCount: 4}},
	}
	e, _, arena := newTestSession(t, table)
	arena.State = cfg.SessionSpawning

	UpdateArena(e)
	assert.Equal(t, 4, EnemyCount(e))
	assert.Equal(t, cfg.SessionAwaitingClear, arena.State)
}

func TestNoAdvanceWhileEnemiesAlive(t *testing.T) {
	e, _, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionAwaitingClear
	enemy := factory.CreateEnemy(e, 100, floorY, cfg.Enemy.Kinds["caterpillar"], nil)

	runArena(e, 120)
	assert.Equal(t, 0, arena.WaveIndex)
	assert.Equal(t, cfg.SessionAwaitingClear, arena.State)

	factory.Destroy(e, enemy)
	UpdateArena(e)
	assert.Equal(t, 1, arena.WaveIndex)
	assert.Equal(t, cfg.SessionRest, arena.State)

	UpdateArena(e)
	assert.Equal(t, "Rest countdown 5...", message(e).Text)
}

func TestDefeatBeatsClear(t *testing.T) {
	e, player, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionAwaitingClear
	components.Health.Get(player).Dead = true

	UpdateArena(e)
	assert.Equal(t, cfg.SessionDefeat, arena.State)
	assert.Equal(t, 0, arena.WaveIndex)
	assert.Equal(t, cfg.Arena.DefeatText, message(e).Text)
	assert.False(t, arena.ReloadRequested)

	runArena(e, 180)
	assert.True(t, arena.ReloadRequested)
}

func TestDeathCancelsSpawnLoop(t *testing.T) {
	e, player, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionSpawning

	UpdateArena(e)
	require.Equal(t, 1, EnemyCount(e))

	components.Health.Get(player).Dead = true
	runArena(e, 120)
	assert.Equal(t, 1, EnemyCount(e))
	assert.Equal(t, cfg.SessionDefeat, arena.State)
}

func TestLastWaveClearedIsVictory(t *testing.T) {
	table := &cfg.WaveTable{DefaultPool: []string{"moth"}, Waves: []cfg.Wave{{EnemyCount: 1}}}
	e, player, arena := newTestSession(t, table)
	arena.State = cfg.SessionAwaitingClear
	input := components.PlayerInput.Get(player)

	UpdateArena(e)
	require.Equal(t, cfg.SessionVictory, arena.State)
	assert.Equal(t, cfg.Arena.VictoryText, message(e).Text)
	assert.Equal(t, "Wave 1/1", WaveLabel(arena))

	input.Snapshot.Confirm = pressed(true)
	UpdateArena(e)
	assert.False(t, arena.ReloadRequested, "press held through the last kill")

	input.Snapshot.Confirm = components.ActionState{}
	UpdateArena(e)
	input.Snapshot.Confirm = pressed(true)
	UpdateArena(e)
	assert.True(t, arena.ReloadRequested)
}

func TestHazardWaveCountsDownBeforeArming(t *testing.T) {
	e, _, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionSpawning
	arena.WaveIndex = 1

	UpdateArena(e)
	assert.Equal(t, 2, platformCount(e))
	assert.False(t, hazardArmed(e), "spikes stay off during setup")
	assert.Equal(t, "Next wave in 5...\nGet to the Platforms!", message(e).Text)
	assert.Zero(t, EnemyCount(e))

	runArena(e, 300)
	assert.True(t, hazardArmed(e))
	assert.Equal(t, 1, EnemyCount(e))
	assert.Equal(t, cfg.SessionAwaitingClear, arena.State)
	assert.Equal(t, cfg.LayoutSpikes, arena.Layout)

	// Clearing the last wave tears the layout down.
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		components.Object.Get(entry).X = -1000
	})
	runArena(e, 2)
	assert.Equal(t, cfg.SessionVictory, arena.State)
	assert.Zero(t, platformCount(e))
	assert.False(t, hazardArmed(e))
}

func TestEscapedEnemiesAreRemoved(t *testing.T) {
	e, _, arena := newTestSession(t, twoWaves())
	arena.State = cfg.SessionAwaitingClear
	inside := factory.CreateEnemy(e, 100, floorY, cfg.Enemy.Kinds["moth"], nil)
	outside := factory.CreateEnemy(e, 540, floorY, cfg.Enemy.Kinds["moth"], nil)
	components.Object.Get(outside).Y = 2000

	UpdateArena(e)
	assert.True(t, inside.Valid())
	assert.False(t, outside.Valid())
}
