package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/caged/assets"
	"github.com/automoto/caged/components"
	cfg "github.com/automoto/caged/config"
	"github.com/automoto/caged/systems/factory"
	"github.com/automoto/caged/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	floorY     = 328.0
	leftWallX  = 16.0  // inner edge
	rightWallX = 624.0 // inner edge
)

// newTestWorld builds a closed box like the arena: floor, two walls, ceiling.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 368, 8, 8)
	factory.CreateWall(e, 0, floorY, 640, 40)
	factory.CreateWall(e, 0, 0, leftWallX, floorY)
	factory.CreateWall(e, rightWallX, 0, 16, floorY)
	factory.CreateWall(e, leftWallX, 0, rightWallX-leftWallX, 16)
	return e
}

func testSpace(e *ecs.ECS) *resolv.Space {
	entry, _ := components.Space.First(e.World)
	return components.Space.Get(entry)
}

// placeFeet moves an object so its feet are centred on (x, y).
func placeFeet(obj *resolv.Object, x, y float64) {
	obj.X = x - obj.W/2
	obj.Y = y - obj.H
	obj.Update()
}

func pressed(a bool) components.ActionState {
	return components.ActionState{Pressed: a, JustPressed: a}
}

// stepPlayer runs one full controller tick followed by the integrator.
func stepPlayer(p *donburi.Entry, in components.InputSnapshot) {
	m := playerMotion(p)
	obj := components.Object.Get(p).Object
	m.frameStep(in, tick)
	m.physicsStep(obj, in, tick)
	integrateBody(m.body, obj, tick)
}

// testArena mirrors the embedded map at a smaller scale.
func testArena() *assets.Arena {
	return &assets.Arena{
		Name:   "test",
		Width:  640,
		Height: 368,
		Solids: []assets.Rect{
			{X: 0, Y: floorY, W: 640, H: 40},
			{X: 0, Y: 0, W: leftWallX, H: floorY},
			{X: rightWallX, Y: 0, W: 16, H: floorY},
			{X: leftWallX, Y: 0, W: rightWallX - leftWallX, H: 16},
		},
		PlayerSpawn:   assets.Point{X: 320, Y: floorY},
		RespawnAnchor: assets.Point{X: 320, Y: 200},
		EnemySpawns:   []assets.Point{{X: 100, Y: floorY}, {X: 540, Y: floorY}},
		Platforms: []assets.PlatformSpawn{
			{Rect: assets.Rect{X: 100, Y: 260, W: 80, H: 8}, Layout: cfg.LayoutSpikes},
			{Rect: assets.Rect{X: 460, Y: 260, W: 80, H: 8}, Layout: cfg.LayoutSpikes},
			{Rect: assets.Rect{X: 200, Y: 240, W: 40, H: 8}, Layout: cfg.LayoutThin},
			{Rect: assets.Rect{X: 250, Y: 280, W: 140, H: 8}, Layout: cfg.LayoutWide},
		},
		SpikeFloors: []assets.Rect{{X: leftWallX, Y: floorY - 16, W: rightWallX - leftWallX, H: 16}},
		Bounds:      assets.Rect{X: -64, Y: -64, W: 768, H: 496},
	}
}

// newTestSession builds a full session: level, player and director.
func newTestSession(t *testing.T, table *cfg.WaveTable) (*ecs.ECS, *donburi.Entry, *components.ArenaData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	level := testArena()
	factory.CreateLevel(e, level)
	player := factory.CreatePlayer(e,
		level.PlayerSpawn.X, level.PlayerSpawn.Y,
		level.RespawnAnchor.X, level.RespawnAnchor.Y,
	)
	arena := factory.CreateArena(e, table, rand.New(rand.NewPCG(1, 2)))
	return e, player, components.Arena.Get(arena)
}

func platformCount(e *ecs.ECS) int {
	n := 0
	tags.Platform.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
