package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"path/filepath"
	"sync"

	"github.com/automoto/caged/assets"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems"
	"github.com/automoto/caged/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Content is what an arena session is built from.
type Content struct {
	Arena *assets.Arena
	Waves *cfg.WaveTable

	// WavesPath and Watcher are set when the wave table is read from disk
	// and reloaded on change.
	WavesPath string
	Watcher   *assets.Watcher

	Seed uint64
}

// ArenaScene runs the wave session and rebuilds it on every reset.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	content      Content
	rng          *rand.Rand
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, content Content) *ArenaScene {
	seed := content.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &ArenaScene{
		sceneChanger: sc,
		content:      content,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.drainWatcher()
	as.ecs.Update()

	if entry, ok := components.Arena.First(as.ecs.World); ok && components.Arena.Get(entry).ReloadRequested {
		as.ReloadLevel()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ReloadLevel()
}

// ReloadLevel throws the current world away and builds a fresh session from
// the arena map and the latest wave table.
func (as *ArenaScene) ReloadLevel() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame phase
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateRespawn)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateArena)

	// Physics phase
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePlayerMotion)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateContacts)
	ecs.AddSystem(systems.UpdateHealth)
	ecs.AddSystem(systems.UpdateHUD)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawAttackZones)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)

	arena := as.content.Arena
	factory.CreateLevel(ecs, arena)
	factory.CreatePlayer(ecs,
		arena.PlayerSpawn.X, arena.PlayerSpawn.Y,
		arena.RespawnAnchor.X, arena.RespawnAnchor.Y,
	)
	factory.CreateArena(ecs, as.content.Waves, as.rng)

	as.ecs = ecs
}

// drainWatcher picks up wave table edits. A table that fails to parse is
// logged and the previous one kept; a good one applies from the next reset.
func (as *ArenaScene) drainWatcher() {
	w := as.content.Watcher
	if w == nil {
		return
	}
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				as.content.Watcher = nil
				return
			}
			if filepath.Clean(name) != filepath.Clean(as.content.WavesPath) {
				continue
			}
			table, err := assets.LoadWavesFile(as.content.WavesPath)
			if err != nil {
				log.Printf("Warning: Keeping previous wave table: %v", err)
				continue
			}
			log.Printf("Reloaded wave table from %s (%d waves)", as.content.WavesPath, len(table.Waves))
			as.content.Waves = table
		case err, ok := <-w.Errors:
			if !ok {
				as.content.Watcher = nil
				return
			}
			log.Printf("Warning: Wave table watcher: %v", err)
		default:
			return
		}
	}
}
